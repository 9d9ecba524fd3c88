package recommend

import (
	"context"
	"time"

	"eventRadar/domain"
)

type Config struct {
	// blend weights; they should sum to 1.0
	WCollaborative float64
	WContent       float64
	WPopularity    float64

	// geographic penalty: min(distance/bandMax, DistanceCap) * DistanceWeight
	DistanceWeight float64
	DistanceCap    float64

	// how recently a liked event stays suppressed
	RecencyWindow time.Duration

	// when true, every previously rated event is dropped from the ranking.
	// Disliked-ever and liked-within-window stay excluded regardless.
	ExcludeSeen bool

	// score assigned to backfilled popular events
	BackfillScore float64

	DefaultTopN int
}

const (
	defaultWCollaborative = 0.4
	defaultWContent       = 0.5
	defaultWPopularity    = 0.1
	defaultDistanceWeight = 0.3
	defaultDistanceCap    = 2.0
	defaultRecencyWindow  = 2 * time.Minute
	defaultBackfillScore  = 0.5
	defaultTopN           = 10
)

func DefaultConfig() Config {
	return Config{
		WCollaborative: defaultWCollaborative,
		WContent:       defaultWContent,
		WPopularity:    defaultWPopularity,
		DistanceWeight: defaultDistanceWeight,
		DistanceCap:    defaultDistanceCap,
		RecencyWindow:  defaultRecencyWindow,
		ExcludeSeen:    true,
		BackfillScore:  defaultBackfillScore,
		DefaultTopN:    defaultTopN,
	}
}

// read the engine config override from DB.
type ConfigRepository interface {
	GetConfig(ctx context.Context) (domain.EngineConfig, bool, error)
	UpsertConfig(ctx context.Context, cfg domain.EngineConfig) error
}

// loadConfig merges the optional DB row over the service defaults. Zero-valued
// weight triplets in the row are ignored so a partial row cannot zero out the
// blend entirely.
func (s *RecommendationService) loadConfig(ctx context.Context) Config {
	if s.cfgRepo == nil {
		return s.defaultCfg
	}

	dbCfg, ok, err := s.cfgRepo.GetConfig(ctx)
	if err != nil || !ok {
		return s.defaultCfg
	}

	cfg := s.defaultCfg

	if dbCfg.WCollaborative != 0 || dbCfg.WContent != 0 || dbCfg.WPopularity != 0 {
		cfg.WCollaborative = dbCfg.WCollaborative
		cfg.WContent = dbCfg.WContent
		cfg.WPopularity = dbCfg.WPopularity
	}

	if dbCfg.DistanceWeight > 0 {
		cfg.DistanceWeight = dbCfg.DistanceWeight
	}
	if dbCfg.DistanceCap > 0 {
		cfg.DistanceCap = dbCfg.DistanceCap
	}
	if dbCfg.RecencyWindowSeconds > 0 {
		cfg.RecencyWindow = time.Duration(dbCfg.RecencyWindowSeconds) * time.Second
	}
	if dbCfg.DefaultTopN > 0 {
		cfg.DefaultTopN = dbCfg.DefaultTopN
	}
	cfg.ExcludeSeen = dbCfg.ExcludeSeen

	return cfg
}
