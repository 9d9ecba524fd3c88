package recommend

import (
	"errors"
	"testing"
	"time"

	"eventRadar/domain"
)

func interactionAt(userID uint, eventID uint64, action string, at time.Time) domain.Interaction {
	return domain.Interaction{
		UserID:     userID,
		EventID:    eventID,
		ActionType: action,
		CreatedAt:  at,
	}
}

func TestDedupeLatest_LatestWins(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	latest := dedupeLatest([]domain.Interaction{
		interactionAt(1, 10, domain.ActionInterested, base),
		interactionAt(1, 10, domain.ActionNotInterested, base.Add(time.Hour)),
		interactionAt(2, 10, domain.ActionInterested, base),
	})

	if got := latest[interactionKey{userID: 1, eventID: 10}].ActionType; got != domain.ActionNotInterested {
		t.Fatalf("expected re-rating to win, got %q", got)
	}
	if got := latest[interactionKey{userID: 2, eventID: 10}].ActionType; got != domain.ActionInterested {
		t.Fatalf("unrelated user overwritten, got %q", got)
	}
}

func TestDedupeLatest_TimestampTieLaterRecordWins(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	latest := dedupeLatest([]domain.Interaction{
		interactionAt(1, 10, domain.ActionInterested, at),
		interactionAt(1, 10, domain.ActionNotInterested, at),
	})

	if got := latest[interactionKey{userID: 1, eventID: 10}].ActionType; got != domain.ActionNotInterested {
		t.Fatalf("expected later record to win the tie, got %q", got)
	}
}

func TestBuildRatingMatrix_Empty(t *testing.T) {
	if _, err := buildRatingMatrix(nil); !errors.Is(err, ErrNoInteractions) {
		t.Fatalf("expected ErrNoInteractions, got %v", err)
	}
}

func TestBuildRatingMatrix_ShapeAndValues(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	m, err := buildRatingMatrix([]domain.Interaction{
		interactionAt(2, 20, domain.ActionInterested, base),
		interactionAt(1, 10, domain.ActionNotInterested, base),
		interactionAt(1, 20, domain.ActionInterested, base),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.userCount() != 2 {
		t.Fatalf("expected 2 users, got %d", m.userCount())
	}
	if len(m.eventIDs) != 2 {
		t.Fatalf("expected 2 events, got %d", len(m.eventIDs))
	}

	// rows and columns sorted ascending by id
	if m.userIDs[0] != 1 || m.userIDs[1] != 2 {
		t.Fatalf("unexpected user order: %v", m.userIDs)
	}
	if m.eventIDs[0] != 10 || m.eventIDs[1] != 20 {
		t.Fatalf("unexpected event order: %v", m.eventIDs)
	}

	want := [][]float64{
		{-1, 1},
		{0, 1},
	}
	for i := range want {
		for j := range want[i] {
			if m.ratings[i][j] != want[i][j] {
				t.Fatalf("ratings[%d][%d] = %v, want %v", i, j, m.ratings[i][j], want[i][j])
			}
		}
	}

	if !m.hasUser(1) || m.hasUser(99) {
		t.Fatal("hasUser lookup broken")
	}
}
