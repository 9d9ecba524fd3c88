package postgres

import (
	"context"
	"fmt"

	"eventRadar/domain"

	"gorm.io/gorm"
)

type InteractionRepository struct {
	DB *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{DB: db}
}

// FindAll returns every interaction ordered by creation time then id, so the
// engine's supersede-by-time deduplication is deterministic.
func (r *InteractionRepository) FindAll(ctx context.Context) ([]domain.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var interactions []domain.Interaction
	if err := r.DB.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&interactions).Error; err != nil {
		return nil, fmt.Errorf("failed to query user_event_interactions: %w", err)
	}

	return interactions, nil
}

func (r *InteractionRepository) Save(ctx context.Context, interaction *domain.Interaction) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(interaction).Error; err != nil {
		return fmt.Errorf("failed to save interaction: %w", err)
	}

	return nil
}

// CountDistinct reports distinct user and event counts for the health check.
func (r *InteractionRepository) CountDistinct(ctx context.Context) (int64, int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, fmt.Errorf("context error: %w", err)
	}

	var users, events int64

	if err := r.DB.WithContext(ctx).
		Model(&domain.Interaction{}).
		Distinct("user_id").
		Count(&users).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count distinct users: %w", err)
	}

	if err := r.DB.WithContext(ctx).
		Model(&domain.Interaction{}).
		Distinct("event_id").
		Count(&events).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count distinct events: %w", err)
	}

	return users, events, nil
}
