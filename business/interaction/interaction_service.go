package interaction

import (
	"context"
	"errors"
	"fmt"

	"eventRadar/domain"
	"eventRadar/pkg/logger"
)

// InteractionRepository contract interface
type InteractionRepository interface {
	Save(ctx context.Context, interaction *domain.Interaction) error
	CountDistinct(ctx context.Context) (users int64, events int64, err error)
}

type EventRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Event, error)
}

type interactionService struct {
	interactionRepo InteractionRepository
	eventRepo       EventRepository
}

func NewInteractionService(interactionRepo InteractionRepository, eventRepo EventRepository) *interactionService {
	return &interactionService{
		interactionRepo: interactionRepo,
		eventRepo:       eventRepo,
	}
}

// RecordInteraction appends one interested/not_interested action. The store
// is append-only: the engine resolves the latest rating per (user, event)
// pair itself, so re-rating is just another row.
func (s *interactionService) RecordInteraction(ctx context.Context, userID uint, eventID uint64, actionType string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if actionType != domain.ActionInterested && actionType != domain.ActionNotInterested {
		return fmt.Errorf("unknown action type: %s", actionType)
	}

	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		logger.Error("Interaction references unknown event", err)
		return errors.New("event not found")
	}

	in := domain.Interaction{
		UserID:     userID,
		EventID:    eventID,
		ActionType: actionType,
	}

	if err := s.interactionRepo.Save(ctx, &in); err != nil {
		logger.Error("Failed to save interaction", err)
		return fmt.Errorf("failed to save interaction: %w", err)
	}

	logger.Debug("interaction recorded",
		"user_id", userID,
		"event_id", eventID,
		"action_type", actionType,
	)

	return nil
}

// HealthCounts reports how many distinct users and events the interaction
// store knows about, for the health endpoint.
func (s *interactionService) HealthCounts(ctx context.Context) (int64, int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, fmt.Errorf("context error: %w", err)
	}

	users, events, err := s.interactionRepo.CountDistinct(ctx)
	if err != nil {
		logger.Error("Failed to count interactions", err)
		return 0, 0, err
	}

	return users, events, nil
}
