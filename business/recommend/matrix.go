package recommend

import (
	"errors"
	"sort"

	"eventRadar/domain"
)

// ErrNoInteractions signals an empty interaction store. Callers degrade to
// cold start instead of failing the request.
var ErrNoInteractions = errors.New("no interaction data")

type interactionKey struct {
	userID  uint
	eventID uint64
}

// dedupeLatest keeps, per (user, event) pair, the interaction with the highest
// timestamp. Later records in the input win timestamp ties, so re-rating an
// event supersedes the old rating deterministically.
func dedupeLatest(interactions []domain.Interaction) map[interactionKey]domain.Interaction {
	latest := make(map[interactionKey]domain.Interaction, len(interactions))
	for _, in := range interactions {
		key := interactionKey{userID: in.UserID, eventID: in.EventID}
		prev, ok := latest[key]
		if !ok || !in.CreatedAt.Before(prev.CreatedAt) {
			latest[key] = in
		}
	}
	return latest
}

// ratingMatrix is the dense user x event rating matrix. Rows and columns
// exist only for users/events with at least one interaction; missing cells
// are zero.
type ratingMatrix struct {
	userIDs   []uint
	eventIDs  []uint64
	userIndex map[uint]int
	ratings   [][]float64
}

func buildRatingMatrix(interactions []domain.Interaction) (*ratingMatrix, error) {
	if len(interactions) == 0 {
		return nil, ErrNoInteractions
	}

	latest := dedupeLatest(interactions)

	userSet := make(map[uint]struct{})
	eventSet := make(map[uint64]struct{})
	for key := range latest {
		userSet[key.userID] = struct{}{}
		eventSet[key.eventID] = struct{}{}
	}

	m := &ratingMatrix{
		userIDs:   make([]uint, 0, len(userSet)),
		eventIDs:  make([]uint64, 0, len(eventSet)),
		userIndex: make(map[uint]int, len(userSet)),
	}

	for id := range userSet {
		m.userIDs = append(m.userIDs, id)
	}
	for id := range eventSet {
		m.eventIDs = append(m.eventIDs, id)
	}
	sort.Slice(m.userIDs, func(i, j int) bool { return m.userIDs[i] < m.userIDs[j] })
	sort.Slice(m.eventIDs, func(i, j int) bool { return m.eventIDs[i] < m.eventIDs[j] })

	eventIndex := make(map[uint64]int, len(m.eventIDs))
	for i, id := range m.eventIDs {
		eventIndex[id] = i
	}
	for i, id := range m.userIDs {
		m.userIndex[id] = i
	}

	m.ratings = make([][]float64, len(m.userIDs))
	for i := range m.ratings {
		m.ratings[i] = make([]float64, len(m.eventIDs))
	}

	for key, in := range latest {
		row := m.userIndex[key.userID]
		col := eventIndex[key.eventID]
		m.ratings[row][col] = in.Rating()
	}

	return m, nil
}

func (m *ratingMatrix) userCount() int {
	return len(m.userIDs)
}

func (m *ratingMatrix) hasUser(userID uint) bool {
	_, ok := m.userIndex[userID]
	return ok
}
