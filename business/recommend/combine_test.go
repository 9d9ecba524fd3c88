package recommend

import (
	"math"
	"testing"
	"time"

	"eventRadar/domain"
)

func TestNormalize(t *testing.T) {
	t.Run("scales into unit interval", func(t *testing.T) {
		got := normalize(map[uint64]float64{1: -2, 2: 0, 3: 2})

		if got[1] != 0 || got[3] != 1 {
			t.Fatalf("bounds not mapped to 0 and 1: %v", got)
		}
		if math.Abs(got[2]-0.5) > 1e-9 {
			t.Fatalf("midpoint = %v, want 0.5", got[2])
		}
	})

	t.Run("all equal passes through", func(t *testing.T) {
		got := normalize(map[uint64]float64{1: 3, 2: 3})
		if got[1] != 3 || got[2] != 3 {
			t.Fatalf("equal values should pass through unchanged: %v", got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := normalize(nil); len(got) != 0 {
			t.Fatalf("expected empty map, got %v", got)
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		in := map[uint64]float64{1: 0, 2: 10}
		normalize(in)
		if in[2] != 10 {
			t.Fatalf("input mutated: %v", in)
		}
	})
}

func TestCombine(t *testing.T) {
	got := combine(
		signal{weight: 0.4, scores: map[uint64]float64{1: 0, 2: 10}},
		signal{weight: 0.5, scores: map[uint64]float64{2: 1, 3: 3}},
		signal{weight: 0.1, scores: nil},
	)

	// event 1: 0.4*0 = 0; event 2: 0.4*1 + 0.5*0 = 0.4; event 3: 0.5*1 = 0.5
	want := map[uint64]float64{1: 0, 2: 0.4, 3: 0.5}
	for id, w := range want {
		if math.Abs(got[id]-w) > 1e-9 {
			t.Fatalf("event %d = %v, want %v", id, got[id], w)
		}
	}
}

func TestCombine_ZeroWeightSignalSkipped(t *testing.T) {
	got := combine(
		signal{weight: 0, scores: map[uint64]float64{1: 100}},
		signal{weight: 1, scores: map[uint64]float64{2: 1, 3: 2}},
	)

	if _, ok := got[1]; ok {
		t.Fatal("zero-weight signal should not introduce keys")
	}
	if got[3] != 1 {
		t.Fatalf("event 3 = %v, want 1", got[3])
	}
}

// Blended output stays within [0, sum-of-weights] whatever the raw ranges are.
func TestCombine_BoundedByWeights(t *testing.T) {
	pop := popularityScores([]domain.Interaction{
		interactionAt(1, 1, domain.ActionInterested, time.Now()),
		interactionAt(2, 1, domain.ActionInterested, time.Now()),
		interactionAt(2, 2, domain.ActionInterested, time.Now()),
	})

	got := combine(
		signal{weight: 0.4, scores: map[uint64]float64{1: -50, 2: 120}},
		signal{weight: 0.5, scores: map[uint64]float64{1: 0.2, 2: 0.9}},
		signal{weight: 0.1, scores: pop},
	)

	for id, v := range got {
		if v < 0 || v > 1.0+1e-9 {
			t.Fatalf("event %d blended to %v, outside [0, 1]", id, v)
		}
	}
}
