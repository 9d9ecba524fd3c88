package recommend

import "math"

// cosine similarity between two rating rows. Rows with zero norm have no
// usable signal and get similarity 0 rather than NaN.
func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// collaborativeScores computes, per event column, the user-similarity-weighted
// sum of all ratings, the target's own included. Requires the target to be a
// matrix row and at least two users; otherwise reports false and the caller
// falls back to cold start.
func collaborativeScores(m *ratingMatrix, userID uint) (map[uint64]float64, bool) {
	if m == nil || m.userCount() < 2 {
		return nil, false
	}
	target, ok := m.userIndex[userID]
	if !ok {
		return nil, false
	}

	sims := make([]float64, m.userCount())
	for i := range m.ratings {
		sims[i] = cosine(m.ratings[target], m.ratings[i])
	}

	scores := make(map[uint64]float64, len(m.eventIDs))
	for col, eventID := range m.eventIDs {
		var sum float64
		for row := range m.ratings {
			sum += sims[row] * m.ratings[row][col]
		}
		scores[eventID] = sum
	}

	return scores, true
}
