package recommend

import (
	"testing"

	"eventRadar/domain"
)

func TestContentScores(t *testing.T) {
	events := []domain.Event{
		{ID: 1, EventType: "Koncert", StartTime: "18:00"},
		{ID: 2, EventType: "Divadlo", StartTime: "19:30"},
		{ID: 3, EventType: "koncert", StartTime: "10:00"},
	}

	tests := []struct {
		name  string
		prefs domain.Preferences
		want  map[uint64]float64
	}{
		{
			name:  "no preferences means all zero",
			prefs: domain.NeutralPreferences(),
			want:  map[uint64]float64{1: 0, 2: 0, 3: 0},
		},
		{
			name: "category match is case insensitive",
			prefs: domain.Preferences{
				Categories: []string{"KONCERT"},
			},
			want: map[uint64]float64{1: 1, 2: 0, 3: 1},
		},
		{
			name: "time substring adds half a point",
			prefs: domain.Preferences{
				Categories:    []string{"Koncert"},
				PreferredTime: "18:",
				TimeMatters:   true,
			},
			want: map[uint64]float64{1: 1.5, 2: 0, 3: 1},
		},
		{
			name: "time ignored when it does not matter",
			prefs: domain.Preferences{
				PreferredTime: "18:",
				TimeMatters:   false,
			},
			want: map[uint64]float64{1: 0, 2: 0, 3: 0},
		},
		{
			name: "textual time never matches a label",
			prefs: domain.Preferences{
				PreferredTime: "evening",
				TimeMatters:   true,
			},
			want: map[uint64]float64{1: 0, 2: 0, 3: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contentScores(events, tt.prefs)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d scores, want %d", len(got), len(tt.want))
			}
			for id, want := range tt.want {
				if got[id] != want {
					t.Fatalf("event %d scored %v, want %v", id, got[id], want)
				}
			}
		})
	}
}
