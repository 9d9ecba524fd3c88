package recommend

import (
	"strings"

	"eventRadar/domain"
)

const (
	categoryBoost = 1.0
	timeBoost     = 0.5
)

// contentScores rates every catalog event against the stated preferences.
// Category match adds 1.0 when the preferred set is non-empty; the preferred
// time adds 0.5 when it is a literal substring of the event's start-time text.
// The substring match is intentionally textual, not temporal: "18:" matches
// "18:00" but a preference of "evening" never matches a numeric time. That is
// how the preference form has always behaved and rankings depend on it.
// Distance is handled separately by the penalizer.
func contentScores(events []domain.Event, prefs domain.Preferences) map[uint64]float64 {
	scores := make(map[uint64]float64, len(events))

	for _, ev := range events {
		var score float64

		if len(prefs.Categories) > 0 {
			for _, cat := range prefs.Categories {
				if strings.EqualFold(cat, ev.EventType) {
					score += categoryBoost
					break
				}
			}
		}

		if prefs.TimeMatters && prefs.PreferredTime != "" &&
			strings.Contains(ev.StartTime, prefs.PreferredTime) {
			score += timeBoost
		}

		scores[ev.ID] = score
	}

	return scores
}
