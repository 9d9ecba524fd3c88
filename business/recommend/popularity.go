package recommend

import "eventRadar/domain"

// popularityScores counts, per event, how many users currently rate it +1.
// Counting runs over deduplicated interactions so a user who re-rated an
// event contributes at most once. Used both as the blended third signal and
// as the exhaustive fallback ranking for cold start and backfill.
func popularityScores(interactions []domain.Interaction) map[uint64]float64 {
	scores := make(map[uint64]float64)
	for _, in := range dedupeLatest(interactions) {
		if in.Rating() > 0 {
			scores[in.EventID]++
		}
	}
	return scores
}
