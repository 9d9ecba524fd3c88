package postgres

import (
	"context"
	"errors"
	"fmt"

	"eventRadar/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EngineConfigRepository struct {
	DB *gorm.DB
}

func NewEngineConfigRepository(db *gorm.DB) *EngineConfigRepository {
	return &EngineConfigRepository{DB: db}
}

// GetConfig loads the single override row, reporting false when none exists.
func (r *EngineConfigRepository) GetConfig(ctx context.Context) (domain.EngineConfig, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.EngineConfig{}, false, fmt.Errorf("context error: %w", err)
	}

	var cfg domain.EngineConfig
	err := r.DB.WithContext(ctx).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.EngineConfig{}, false, nil
	}
	if err != nil {
		return domain.EngineConfig{}, false, fmt.Errorf("failed to query recommendation_config: %w", err)
	}

	return cfg, true, nil
}

func (r *EngineConfigRepository) UpsertConfig(ctx context.Context, cfg domain.EngineConfig) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if cfg.ID == 0 {
		cfg.ID = 1
	}

	if err := r.DB.WithContext(ctx).Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		},
	).Create(&cfg).Error; err != nil {
		return fmt.Errorf("failed to upsert recommendation_config: %w", err)
	}

	return nil
}
