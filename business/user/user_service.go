package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"eventRadar/domain"
	"eventRadar/pkg/logger"
	"eventRadar/pkg/utils"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	UpdatePreferences(ctx context.Context, id uint, prefs datatypes.JSONMap) error
	UpdateLocation(ctx context.Context, id uint, lat, lon float64) error
}

// PreferenceRepository stores the per-category preference rows.
type PreferenceRepository interface {
	ReplaceCategories(ctx context.Context, userID uint, categories []string) error
	GetPreferences(ctx context.Context, userID uint) (domain.Preferences, error)
}

// TokenRepository is the Redis-backed session store.
type TokenRepository interface {
	StoreToken(ctx context.Context, userID, token string, ttl time.Duration) error
	ValidateToken(ctx context.Context, token string) (string, error)
	DeleteToken(ctx context.Context, userID, token string) error
}

type userService struct {
	userRepo  UserRepository
	prefRepo  PreferenceRepository
	tokenRepo TokenRepository
	validate  *validator.Validate
}

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"

	sessionTTL = 24 * time.Hour
)

func NewUserService(
	userRepo UserRepository,
	prefRepo PreferenceRepository,
	tokenRepo TokenRepository,
	validate *validator.Validate,
) *userService {
	return &userService{
		userRepo:  userRepo,
		prefRepo:  prefRepo,
		tokenRepo: tokenRepo,
		validate:  validate,
	}
}

func (s *userService) Register(ctx context.Context, user *domain.User) (domain.User, error) {
	if err := s.validate.Var(user.Email, "required,email"); err != nil {
		logger.Error("Invalid email format", err)
		return domain.User{}, errors.New("invalid email format")
	}

	if err := s.validate.Var(user.Password, "required,min=6"); err != nil {
		logger.Error("Invalid user password", err)
		return domain.User{}, errors.New("password must be at least 6 characters")
	}

	// Check if email already exists
	existingUser, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err == nil && existingUser.ID > 0 {
		logger.Error("Email already exists")
		return domain.User{}, errors.New("email already exists")
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.User{}, errors.New("failed to hash password")
	}

	newUser := domain.User{
		FullName: user.FullName,
		Email:    user.Email,
		Password: string(passwordHash),
		Role:     RoleCustomer,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", err)
		return domain.User{}, err
	}

	newUser.Password = ""
	return newUser, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		logger.Error("Login failed, user not found", err)
		return "", domain.User{}, errors.New("invalid email or password")
	}

	if err := utils.CheckPassword(user.Password, password); err != nil {
		logger.Error("Login failed, wrong password")
		return "", domain.User{}, errors.New("invalid email or password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Role, sessionTTL)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	if s.tokenRepo != nil {
		userIDStr := strconv.FormatUint(uint64(user.ID), 10)
		if err := s.tokenRepo.StoreToken(ctx, userIDStr, token, sessionTTL); err != nil {
			logger.Error("Failed to store session token", err)
			return "", domain.User{}, errors.New("failed to store session")
		}
	}

	logger.Info("user logged in", "user_id", user.ID)

	user.Password = ""
	return token, user, nil
}

func (s *userService) Logout(ctx context.Context, userID uint, token string) error {
	if s.tokenRepo == nil {
		return nil
	}

	userIDStr := strconv.FormatUint(uint64(userID), 10)
	if err := s.tokenRepo.DeleteToken(ctx, userIDStr, token); err != nil {
		logger.Error("Failed to delete session token", err)
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (s *userService) ValidateTokenFromRedis(ctx context.Context, token string) (string, error) {
	if s.tokenRepo == nil {
		return "", errors.New("session store not configured")
	}
	return s.tokenRepo.ValidateToken(ctx, token)
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	user.Password = ""
	return user, nil
}

// GetPreferences returns the merged preference record: category rows plus
// the JSONB fields on the user.
func (s *userService) GetPreferences(ctx context.Context, userID uint) (domain.Preferences, error) {
	if err := ctx.Err(); err != nil {
		return domain.Preferences{}, fmt.Errorf("context error: %w", err)
	}

	prefs, err := s.prefRepo.GetPreferences(ctx, userID)
	if err != nil {
		logger.Error("Failed to load preferences", err)
		return domain.Preferences{}, err
	}

	return prefs, nil
}

// SavePreferences replaces the category rows and the JSONB record in one go,
// matching the preference form submit.
func (s *userService) SavePreferences(ctx context.Context, userID uint, prefs domain.Preferences) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.prefRepo.ReplaceCategories(ctx, userID, prefs.Categories); err != nil {
		logger.Error("Failed to replace preference categories", err)
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	record := datatypes.JSONMap{
		"preferredTime":     prefs.PreferredTime,
		"preferredDistance": prefs.PreferredDistance,
		"timeMatters":       prefs.TimeMatters,
		"distanceMatters":   prefs.DistanceMatters,
	}

	if err := s.userRepo.UpdatePreferences(ctx, userID, record); err != nil {
		logger.Error("Failed to update preference record", err)
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	logger.Info("preferences saved", "user_id", userID)

	return nil
}

func (s *userService) UpdateLocation(ctx context.Context, userID uint, lat, lon float64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return errors.New("invalid coordinates")
	}

	if err := s.userRepo.UpdateLocation(ctx, userID, lat, lon); err != nil {
		logger.Error("Failed to update user location", err)
		return fmt.Errorf("failed to update location: %w", err)
	}

	return nil
}
