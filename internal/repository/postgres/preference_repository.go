package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventRadar/domain"

	"gorm.io/gorm"
)

// preferenceRow is one preferred category for a user.
type preferenceRow struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint      `gorm:"column:user_id;not null"`
	EventType string    `gorm:"column:event_type;not null"`
	Weight    float64   `gorm:"column:weight;default:1"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (preferenceRow) TableName() string {
	return "user_preferences"
}

type PreferenceRepository struct {
	DB *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{DB: db}
}

// GetPreferences merges the category rows with the JSONB record on the user.
// Missing user or missing record both yield neutral preferences; the engine
// must not distinguish "no user" from "no stated preferences".
func (r *PreferenceRepository) GetPreferences(ctx context.Context, userID uint) (domain.Preferences, error) {
	if err := ctx.Err(); err != nil {
		return domain.Preferences{}, fmt.Errorf("context error: %w", err)
	}

	prefs := domain.NeutralPreferences()

	var rows []preferenceRow
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("event_type ASC").
		Find(&rows).Error; err != nil {
		return domain.Preferences{}, fmt.Errorf("failed to query user_preferences: %w", err)
	}
	for _, row := range rows {
		prefs.Categories = append(prefs.Categories, row.EventType)
	}

	var user domain.User
	err := r.DB.WithContext(ctx).Select("preferences").First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return prefs, nil
	}
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("failed to query user preferences record: %w", err)
	}

	if user.Preferences == nil {
		return prefs, nil
	}

	if v, ok := user.Preferences["preferredTime"].(string); ok {
		prefs.PreferredTime = v
	}
	if v, ok := user.Preferences["preferredDistance"].(string); ok {
		prefs.PreferredDistance = v
	}
	if v, ok := user.Preferences["timeMatters"].(bool); ok {
		prefs.TimeMatters = v
	}
	if v, ok := user.Preferences["distanceMatters"].(bool); ok {
		prefs.DistanceMatters = v
	}

	return prefs, nil
}

// ReplaceCategories clears and rewrites the category rows in one transaction,
// mirroring the preference form submit.
func (r *PreferenceRepository) ReplaceCategories(ctx context.Context, userID uint, categories []string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&preferenceRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear user_preferences: %w", err)
		}

		for _, cat := range categories {
			row := preferenceRow{
				UserID:    userID,
				EventType: cat,
				Weight:    1.0,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to insert user_preference: %w", err)
			}
		}

		return nil
	})
}
