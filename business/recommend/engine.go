package recommend

import (
	"context"
	"fmt"
	"time"

	"eventRadar/domain"
	"eventRadar/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// ranking sources, reported via logs and metrics
const (
	sourceCollaborative = "collaborative"
	sourceColdStart     = "cold_start_content"
	sourcePopularity    = "popularity"
)

// ---- Repository interfaces ----

type InteractionRepository interface {
	FindAll(ctx context.Context) ([]domain.Interaction, error)
}

type EventRepository interface {
	FindAll(ctx context.Context) ([]domain.Event, error)
}

type PreferenceRepository interface {
	GetPreferences(ctx context.Context, userID uint) (domain.Preferences, error)
}

type LocationRepository interface {
	GetUserLocation(ctx context.Context, userID uint) (*domain.GeoPoint, error)
}

// ---- Usecase / Service ----

// RecommendationService is the hybrid ranking engine. It is read-only and
// stateless between requests: every call fetches fresh data and builds its
// own matrix and score maps.
type RecommendationService struct {
	interactionRepo InteractionRepository
	eventRepo       EventRepository
	prefRepo        PreferenceRepository
	locationRepo    LocationRepository
	cfgRepo         ConfigRepository
	defaultCfg      Config

	now func() time.Time
}

func NewRecommendationService(
	interactionRepo InteractionRepository,
	eventRepo EventRepository,
	prefRepo PreferenceRepository,
	locationRepo LocationRepository,
	cfgRepo ConfigRepository,
	defaultCfg Config,
) *RecommendationService {
	return &RecommendationService{
		interactionRepo: interactionRepo,
		eventRepo:       eventRepo,
		prefRepo:        prefRepo,
		locationRepo:    locationRepo,
		cfgRepo:         cfgRepo,
		defaultCfg:      defaultCfg,
		now:             time.Now,
	}
}

type rankInputs struct {
	interactions []domain.Interaction
	events       []domain.Event
	prefs        domain.Preferences
	location     *domain.GeoPoint
	eventsOK     bool
}

// fetchInputs runs the three independent fetches concurrently and joins the
// results. Interaction failure is fatal to the whole request (there is
// nothing left to rank from); the other fetches degrade: a failed catalog
// fetch triggers the popularity fallback, failed preferences/location become
// neutral.
func (s *RecommendationService) fetchInputs(ctx context.Context, userID uint) (rankInputs, error) {
	var in rankInputs
	in.prefs = domain.NeutralPreferences()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		interactions, err := s.interactionRepo.FindAll(gctx)
		if err != nil {
			return fmt.Errorf("load interactions: %w", err)
		}
		in.interactions = interactions
		return nil
	})

	g.Go(func() error {
		events, err := s.eventRepo.FindAll(gctx)
		if err != nil {
			logger.Warn("event catalog unavailable, degrading to popularity",
				"user_id", userID, "error", err.Error())
			return nil
		}
		in.events = events
		in.eventsOK = true
		return nil
	})

	g.Go(func() error {
		if s.prefRepo != nil {
			if prefs, err := s.prefRepo.GetPreferences(gctx, userID); err == nil {
				in.prefs = prefs
			} else {
				logger.Warn("preferences unavailable, using neutral",
					"user_id", userID, "error", err.Error())
			}
		}
		if s.locationRepo != nil {
			if loc, err := s.locationRepo.GetUserLocation(gctx, userID); err == nil {
				in.location = loc
			} else {
				logger.Warn("user location unavailable, distance penalty disabled",
					"user_id", userID, "error", err.Error())
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return rankInputs{}, err
	}
	return in, nil
}

// Rank produces the ordered top-N event ids for a user. It never fails the
// caller on degraded data: every layer falls back to the next one
// (collaborative -> cold start -> popularity -> empty list), and each
// degradation is logged and counted.
func (s *RecommendationService) Rank(ctx context.Context, userID uint, topN int) ([]uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	cfg := s.loadConfig(ctx)
	if topN <= 0 {
		topN = cfg.DefaultTopN
	}

	tid := TraceIDFromContext(ctx)

	inputs, err := s.fetchInputs(ctx, userID)
	if err != nil {
		logger.Error("interaction store unavailable, returning empty ranking",
			"trace_id", tid, "user_id", userID, "error", err.Error())
		RecommendFallbackTotal.WithLabelValues("empty").Inc()
		return []uint64{}, nil
	}

	excluded := exclusions(inputs.interactions, userID, s.now(), cfg)
	popularity := popularityScores(inputs.interactions)

	if !inputs.eventsOK {
		RecommendFallbackTotal.WithLabelValues(sourcePopularity).Inc()
		ranked := popularityOnly(popularity, excluded, topN)
		RecommendServedTotal.WithLabelValues(sourcePopularity).Inc()
		return ranked, nil
	}

	catalog := catalogOrder(inputs.events)

	combined, source := s.score(inputs, userID, cfg, popularity)
	applyExclusions(combined, excluded)

	ranked := rankTop(combined, catalog, topN)
	ranked = backfillPopular(ranked, topN, popularity, catalog, excluded)

	logger.Debug("ranking served",
		"trace_id", tid,
		"user_id", userID,
		"source", source,
		"top_n", topN,
		"returned", len(ranked),
		"excluded", len(excluded),
	)
	RecommendServedTotal.WithLabelValues(source).Inc()

	return ranked, nil
}

// score runs the warm path when possible and reports which signal drove the
// ranking. Cold start covers an empty store, an unknown user, and the
// degenerate single-user matrix.
func (s *RecommendationService) score(in rankInputs, userID uint, cfg Config, popularity map[uint64]float64) (map[uint64]float64, string) {
	matrix, err := buildRatingMatrix(in.interactions)
	if err != nil {
		RecommendFallbackTotal.WithLabelValues(sourceColdStart).Inc()
		return coldStart(in.events, in.prefs, popularity)
	}

	collab, ok := collaborativeScores(matrix, userID)
	if !ok {
		RecommendFallbackTotal.WithLabelValues(sourceColdStart).Inc()
		return coldStart(in.events, in.prefs, popularity)
	}

	combined := combine(
		signal{weight: cfg.WCollaborative, scores: collab},
		signal{weight: cfg.WContent, scores: contentScores(in.events, in.prefs)},
		signal{weight: cfg.WPopularity, scores: popularity},
	)
	applyDistancePenalty(combined, in.events, in.location, in.prefs, cfg)

	return combined, sourceCollaborative
}

// popularityOnly ranks without a catalog: positive-interaction counts
// descending, event id ascending on ties.
func popularityOnly(popularity map[uint64]float64, excluded map[uint64]struct{}, topN int) []uint64 {
	ids := make([]uint64, 0, len(popularity))
	for id := range popularity {
		if _, ok := excluded[id]; ok {
			continue
		}
		ids = append(ids, id)
	}

	sortByScoreDesc(ids, popularity)

	if len(ids) > topN {
		ids = ids[:topN]
	}
	return ids
}

// catalogOrder is the tie-break order for the ranker: the events exactly as
// the catalog repository returned them.
func catalogOrder(events []domain.Event) []uint64 {
	order := make([]uint64, 0, len(events))
	for _, ev := range events {
		order = append(order, ev.ID)
	}
	return order
}
