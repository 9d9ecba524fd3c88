package recommend

import (
	"math"
	"testing"
	"time"

	"eventRadar/domain"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 0, 1}, []float64{1, 0, 1}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"opposite", []float64{1, -1}, []float64{-1, 1}, -1},
		{"zero norm a", []float64{0, 0}, []float64{1, 1}, 0},
		{"zero norm b", []float64{1, 1}, []float64{0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosine(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("cosine = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollaborativeScores_NeedsTwoUsers(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	m, err := buildRatingMatrix([]domain.Interaction{
		interactionAt(1, 10, domain.ActionInterested, base),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := collaborativeScores(m, 1); ok {
		t.Fatal("single-user matrix should not produce collaborative scores")
	}
}

func TestCollaborativeScores_UnknownUser(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	m, err := buildRatingMatrix([]domain.Interaction{
		interactionAt(1, 10, domain.ActionInterested, base),
		interactionAt(2, 10, domain.ActionInterested, base),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := collaborativeScores(m, 99); ok {
		t.Fatal("user without interactions should not produce collaborative scores")
	}
}

// Three users: the target likes e1 and dislikes e2, two similar users like
// e1 and e3. The shared liked event must pull e3 above everything the target
// has not rated, and e2 must score negative.
func TestCollaborativeScores_SimilarUsersPropagate(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	m, err := buildRatingMatrix([]domain.Interaction{
		interactionAt(1, 1, domain.ActionInterested, base),
		interactionAt(1, 2, domain.ActionNotInterested, base),
		interactionAt(2, 1, domain.ActionInterested, base),
		interactionAt(2, 3, domain.ActionInterested, base),
		interactionAt(3, 1, domain.ActionInterested, base),
		interactionAt(3, 3, domain.ActionInterested, base),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	scores, ok := collaborativeScores(m, 1)
	if !ok {
		t.Fatal("expected collaborative scores")
	}

	if scores[3] <= 0 {
		t.Fatalf("e3 should inherit positive signal from similar users, got %v", scores[3])
	}
	if scores[2] >= 0 {
		t.Fatalf("disliked e2 should score negative, got %v", scores[2])
	}
	if scores[1] <= scores[3] {
		t.Fatalf("directly liked e1 (%v) should outscore inherited e3 (%v)", scores[1], scores[3])
	}
}
