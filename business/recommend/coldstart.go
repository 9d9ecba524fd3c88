package recommend

import "eventRadar/domain"

// coldStart ranks for users without a usable interaction history: the full
// catalog scored by content affinity alone, normalized. When every content
// score ties at zero (no stated preferences) the popularity counts take over.
// Reports which signal ended up driving the ranking.
func coldStart(events []domain.Event, prefs domain.Preferences, popularity map[uint64]float64) (map[uint64]float64, string) {
	content := normalize(contentScores(events, prefs))

	for _, v := range content {
		if v != 0 {
			return content, sourceColdStart
		}
	}

	scores := make(map[uint64]float64, len(popularity))
	for id, v := range popularity {
		scores[id] = v
	}
	return scores, sourcePopularity
}
