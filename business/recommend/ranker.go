package recommend

import "sort"

// rankTop orders the scored catalog events descending by score and truncates
// to topN. Only ids present in catalogOrder are ranked, and ties keep catalog
// order, so results are deterministic across calls.
func rankTop(scores map[uint64]float64, catalogOrder []uint64, topN int) []uint64 {
	ranked := make([]uint64, 0, len(scores))
	for _, id := range catalogOrder {
		if _, ok := scores[id]; ok {
			ranked = append(ranked, id)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// sortByScoreDesc orders ids by score descending, id ascending on ties.
func sortByScoreDesc(ids []uint64, scores map[uint64]float64) {
	sort.Slice(ids, func(i, j int) bool {
		if scores[ids[i]] == scores[ids[j]] {
			return ids[i] < ids[j]
		}
		return scores[ids[i]] > scores[ids[j]]
	})
}

// backfillPopular pads a short result list with the next most-popular events
// that are neither excluded nor already included, walking popularity
// descending with catalog order as the tie-break. Stops at topN or catalog
// exhaustion; never produces duplicates.
func backfillPopular(ids []uint64, topN int, popularity map[uint64]float64, catalogOrder []uint64, excluded map[uint64]struct{}) []uint64 {
	if len(ids) >= topN {
		return ids
	}

	included := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		included[id] = struct{}{}
	}

	candidates := make([]uint64, 0, len(catalogOrder))
	for _, id := range catalogOrder {
		if _, ok := included[id]; ok {
			continue
		}
		if _, ok := excluded[id]; ok {
			continue
		}
		candidates = append(candidates, id)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return popularity[candidates[i]] > popularity[candidates[j]]
	})

	for _, id := range candidates {
		if len(ids) >= topN {
			break
		}
		ids = append(ids, id)
	}

	return ids
}
