package recommend

import (
	"context"
	"fmt"

	"eventRadar/domain"
)

// DebugRank mirrors Rank but keeps the per-signal breakdown for each returned
// event, so admins can see why something ranked where it did. Backfilled
// events carry the fixed backfill score and zeroed signals.
func (s *RecommendationService) DebugRank(ctx context.Context, userID uint, topN int) ([]domain.DebugRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	cfg := s.loadConfig(ctx)
	if topN <= 0 {
		topN = cfg.DefaultTopN
	}

	inputs, err := s.fetchInputs(ctx, userID)
	if err != nil {
		return []domain.DebugRecommendation{}, nil
	}

	excluded := exclusions(inputs.interactions, userID, s.now(), cfg)
	popularity := popularityScores(inputs.interactions)

	if !inputs.eventsOK {
		out := make([]domain.DebugRecommendation, 0, topN)
		for _, id := range popularityOnly(popularity, excluded, topN) {
			out = append(out, domain.DebugRecommendation{
				EventID:    id,
				Score:      popularity[id],
				Popularity: popularity[id],
				Source:     sourcePopularity,
			})
		}
		return out, nil
	}

	catalog := catalogOrder(inputs.events)

	var collabN map[uint64]float64
	matrix, merr := buildRatingMatrix(inputs.interactions)
	if merr == nil {
		if collab, ok := collaborativeScores(matrix, userID); ok {
			collabN = normalize(collab)
		}
	}
	contentN := normalize(contentScores(inputs.events, inputs.prefs))
	popularityN := normalize(popularity)

	combined, source := s.score(inputs, userID, cfg, popularity)
	applyExclusions(combined, excluded)

	ranked := rankTop(combined, catalog, topN)
	ranked = backfillPopular(ranked, topN, popularity, catalog, excluded)

	penalties := make(map[uint64]float64, len(inputs.events))
	eventByID := make(map[uint64]domain.Event, len(inputs.events))
	for _, ev := range inputs.events {
		eventByID[ev.ID] = ev
		penalties[ev.ID] = distancePenalty(inputs.location, ev, inputs.prefs, cfg)
	}

	out := make([]domain.DebugRecommendation, 0, len(ranked))
	for _, id := range ranked {
		score, scored := combined[id]
		rec := domain.DebugRecommendation{
			EventID: id,
			Source:  source,
		}
		if scored {
			rec.Score = score
			rec.Collaborative = collabN[id]
			rec.Content = contentN[id]
			rec.Popularity = popularityN[id]
			rec.DistancePenalty = penalties[id]
		} else {
			// backfilled
			rec.Score = cfg.BackfillScore
			rec.Popularity = popularityN[id]
			rec.Source = sourcePopularity
		}
		out = append(out, rec)
	}

	return out, nil
}
