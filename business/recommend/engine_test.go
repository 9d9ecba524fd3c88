package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventRadar/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInteractionRepo struct {
	interactions []domain.Interaction
	err          error
}

func (f *fakeInteractionRepo) FindAll(ctx context.Context) ([]domain.Interaction, error) {
	return f.interactions, f.err
}

type fakeEventRepo struct {
	events []domain.Event
	err    error
}

func (f *fakeEventRepo) FindAll(ctx context.Context) ([]domain.Event, error) {
	return f.events, f.err
}

type fakePrefRepo struct {
	prefs domain.Preferences
	err   error
}

func (f *fakePrefRepo) GetPreferences(ctx context.Context, userID uint) (domain.Preferences, error) {
	return f.prefs, f.err
}

type fakeLocationRepo struct {
	loc *domain.GeoPoint
	err error
}

func (f *fakeLocationRepo) GetUserLocation(ctx context.Context, userID uint) (*domain.GeoPoint, error) {
	return f.loc, f.err
}

type fakeConfigRepo struct {
	cfg domain.EngineConfig
	ok  bool
	err error
}

func (f *fakeConfigRepo) GetConfig(ctx context.Context) (domain.EngineConfig, bool, error) {
	return f.cfg, f.ok, f.err
}

func (f *fakeConfigRepo) UpsertConfig(ctx context.Context, cfg domain.EngineConfig) error {
	f.cfg = cfg
	f.ok = true
	return nil
}

var engineTestNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(interactions []domain.Interaction, events []domain.Event, opts ...func(*RecommendationService)) *RecommendationService {
	svc := NewRecommendationService(
		&fakeInteractionRepo{interactions: interactions},
		&fakeEventRepo{events: events},
		&fakePrefRepo{prefs: domain.NeutralPreferences()},
		&fakeLocationRepo{},
		nil,
		DefaultConfig(),
	)
	svc.now = func() time.Time { return engineTestNow }
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func testCatalog() []domain.Event {
	return []domain.Event{
		{ID: 1, EventType: "Koncert"},
		{ID: 2, EventType: "Divadlo"},
		{ID: 3, EventType: "Koncert"},
		{ID: 4, EventType: "Festival"},
	}
}

// Warm path: the target shares a liked event with two other users, so their
// other liked event must rank above anything unrated, and both the disliked
// and the seen event stay out.
func TestRank_CollaborativeOrdering(t *testing.T) {
	old := engineTestNow.Add(-24 * time.Hour)
	interactions := []domain.Interaction{
		interactionAt(1, 1, domain.ActionInterested, old),
		interactionAt(1, 2, domain.ActionNotInterested, old),
		interactionAt(2, 1, domain.ActionInterested, old),
		interactionAt(2, 3, domain.ActionInterested, old),
		interactionAt(3, 1, domain.ActionInterested, old),
		interactionAt(3, 3, domain.ActionInterested, old),
	}

	svc := newTestService(interactions, testCatalog())

	ranked, err := svc.Rank(context.Background(), 1, 4)
	require.NoError(t, err)

	// e1 seen, e2 disliked; e3 carries the collaborative signal, e4 backfills
	assert.Equal(t, []uint64{3, 4}, ranked)
}

func TestRank_SeenEventsReturnWhenAllowed(t *testing.T) {
	old := engineTestNow.Add(-24 * time.Hour)
	interactions := []domain.Interaction{
		interactionAt(1, 1, domain.ActionInterested, old),
		interactionAt(2, 1, domain.ActionInterested, old),
		interactionAt(2, 3, domain.ActionInterested, old),
	}

	svc := newTestService(interactions, testCatalog(), func(s *RecommendationService) {
		s.defaultCfg.ExcludeSeen = false
	})

	ranked, err := svc.Rank(context.Background(), 1, 4)
	require.NoError(t, err)

	assert.Contains(t, ranked, uint64(1), "an old like is rankable when seen events are allowed")
}

func TestRank_RecentLikeSuppressed(t *testing.T) {
	old := engineTestNow.Add(-24 * time.Hour)
	interactions := []domain.Interaction{
		interactionAt(1, 1, domain.ActionInterested, engineTestNow.Add(-30*time.Second)),
		interactionAt(2, 1, domain.ActionInterested, old),
		interactionAt(2, 3, domain.ActionInterested, old),
	}

	svc := newTestService(interactions, testCatalog(), func(s *RecommendationService) {
		s.defaultCfg.ExcludeSeen = false
	})

	ranked, err := svc.Rank(context.Background(), 1, 4)
	require.NoError(t, err)

	assert.NotContains(t, ranked, uint64(1), "a like inside the recency window must stay out")
}

func TestRank_ColdStartNewUser(t *testing.T) {
	old := engineTestNow.Add(-24 * time.Hour)
	interactions := []domain.Interaction{
		interactionAt(2, 2, domain.ActionInterested, old),
	}

	svc := NewRecommendationService(
		&fakeInteractionRepo{interactions: interactions},
		&fakeEventRepo{events: testCatalog()},
		&fakePrefRepo{prefs: domain.Preferences{Categories: []string{"Koncert"}}},
		&fakeLocationRepo{},
		nil,
		DefaultConfig(),
	)
	svc.now = func() time.Time { return engineTestNow }

	ranked, err := svc.Rank(context.Background(), 99, 2)
	require.NoError(t, err)

	// content picks the two Koncert events, catalog order breaks their tie
	assert.Equal(t, []uint64{1, 3}, ranked)
}

func TestRank_ColdStartNoPreferencesUsesPopularity(t *testing.T) {
	old := engineTestNow.Add(-24 * time.Hour)
	interactions := []domain.Interaction{
		interactionAt(2, 2, domain.ActionInterested, old),
		interactionAt(3, 2, domain.ActionInterested, old),
		interactionAt(3, 4, domain.ActionInterested, old),
	}

	svc := newTestService(interactions, testCatalog())

	ranked, err := svc.Rank(context.Background(), 99, 2)
	require.NoError(t, err)

	require.Len(t, ranked, 2)
	assert.Equal(t, uint64(2), ranked[0], "most liked event first")
}

func TestRank_EmptyStoreBackfillsFromCatalog(t *testing.T) {
	svc := newTestService(nil, testCatalog())

	ranked, err := svc.Rank(context.Background(), 1, 3)
	require.NoError(t, err)

	// nothing is scored or popular, backfill walks catalog order
	assert.Equal(t, []uint64{1, 2, 3}, ranked)
}

func TestRank_InteractionFetchFailureReturnsEmpty(t *testing.T) {
	svc := newTestService(nil, testCatalog(), func(s *RecommendationService) {
		s.interactionRepo = &fakeInteractionRepo{err: errors.New("connection refused")}
	})

	ranked, err := svc.Rank(context.Background(), 1, 3)
	require.NoError(t, err)

	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestRank_EventFetchFailureFallsToPopularity(t *testing.T) {
	old := engineTestNow.Add(-24 * time.Hour)
	interactions := []domain.Interaction{
		interactionAt(2, 2, domain.ActionInterested, old),
		interactionAt(2, 4, domain.ActionInterested, old),
		interactionAt(3, 2, domain.ActionInterested, old),
	}

	svc := newTestService(interactions, nil, func(s *RecommendationService) {
		s.eventRepo = &fakeEventRepo{err: errors.New("catalog down")}
	})

	ranked, err := svc.Rank(context.Background(), 1, 3)
	require.NoError(t, err)

	assert.Equal(t, []uint64{2, 4}, ranked)
}

func TestRank_PreferenceFailureDegradesToNeutral(t *testing.T) {
	svc := newTestService(nil, testCatalog(), func(s *RecommendationService) {
		s.prefRepo = &fakePrefRepo{err: errors.New("prefs down")}
		s.locationRepo = &fakeLocationRepo{err: errors.New("no location")}
	})

	ranked, err := svc.Rank(context.Background(), 1, 2)
	require.NoError(t, err)

	assert.Len(t, ranked, 2)
}

func TestRank_TopNDefaultsFromConfig(t *testing.T) {
	svc := newTestService(nil, testCatalog(), func(s *RecommendationService) {
		s.defaultCfg.DefaultTopN = 2
	})

	ranked, err := svc.Rank(context.Background(), 1, 0)
	require.NoError(t, err)

	assert.Len(t, ranked, 2)
}

func TestRank_Deterministic(t *testing.T) {
	old := engineTestNow.Add(-24 * time.Hour)
	interactions := []domain.Interaction{
		interactionAt(1, 1, domain.ActionInterested, old),
		interactionAt(2, 1, domain.ActionInterested, old),
		interactionAt(2, 3, domain.ActionInterested, old),
		interactionAt(3, 4, domain.ActionInterested, old),
	}

	svc := newTestService(interactions, testCatalog())

	first, err := svc.Rank(context.Background(), 1, 4)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := svc.Rank(context.Background(), 1, 4)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRank_CancelledContext(t *testing.T) {
	svc := newTestService(nil, testCatalog())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Rank(ctx, 1, 3)
	assert.Error(t, err)
}

func TestRank_DBConfigOverridesDefaults(t *testing.T) {
	old := engineTestNow.Add(-24 * time.Hour)
	interactions := []domain.Interaction{
		interactionAt(1, 1, domain.ActionInterested, old),
	}

	cfgRepo := &fakeConfigRepo{
		cfg: domain.EngineConfig{DefaultTopN: 1, ExcludeSeen: true},
		ok:  true,
	}
	svc := newTestService(interactions, testCatalog(), func(s *RecommendationService) {
		s.cfgRepo = cfgRepo
	})

	ranked, err := svc.Rank(context.Background(), 1, 0)
	require.NoError(t, err)

	assert.Len(t, ranked, 1)
}

func TestLoadConfig_ZeroWeightRowKeepsDefaults(t *testing.T) {
	svc := newTestService(nil, nil, func(s *RecommendationService) {
		s.cfgRepo = &fakeConfigRepo{
			cfg: domain.EngineConfig{RecencyWindowSeconds: 300},
			ok:  true,
		}
	})

	cfg := svc.loadConfig(context.Background())

	assert.Equal(t, DefaultConfig().WCollaborative, cfg.WCollaborative)
	assert.Equal(t, 5*time.Minute, cfg.RecencyWindow)
}

func TestDebugRank_ReportsSignals(t *testing.T) {
	old := engineTestNow.Add(-24 * time.Hour)
	interactions := []domain.Interaction{
		interactionAt(1, 1, domain.ActionInterested, old),
		interactionAt(1, 2, domain.ActionNotInterested, old),
		interactionAt(2, 1, domain.ActionInterested, old),
		interactionAt(2, 3, domain.ActionInterested, old),
		interactionAt(3, 1, domain.ActionInterested, old),
		interactionAt(3, 3, domain.ActionInterested, old),
	}

	svc := newTestService(interactions, testCatalog())

	recs, err := svc.DebugRank(context.Background(), 1, 4)
	require.NoError(t, err)
	require.NotEmpty(t, recs)

	assert.Equal(t, uint64(3), recs[0].EventID)
	assert.Equal(t, "collaborative", recs[0].Source)
	assert.Greater(t, recs[0].Collaborative, 0.0)

	for i := 1; i < len(recs); i++ {
		assert.LessOrEqual(t, recs[i].Score, recs[0].Score, "scores must descend")
	}
}

func TestDebugRank_PopularityFallbackOnCatalogFailure(t *testing.T) {
	old := engineTestNow.Add(-24 * time.Hour)
	interactions := []domain.Interaction{
		interactionAt(2, 2, domain.ActionInterested, old),
		interactionAt(3, 2, domain.ActionInterested, old),
		interactionAt(3, 4, domain.ActionInterested, old),
	}

	svc := newTestService(interactions, nil, func(s *RecommendationService) {
		s.eventRepo = &fakeEventRepo{err: errors.New("catalog down")}
	})

	recs, err := svc.DebugRank(context.Background(), 1, 3)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, uint64(2), recs[0].EventID)
	assert.Equal(t, "popularity", recs[0].Source)
	assert.Equal(t, 2.0, recs[0].Popularity)
}
