package recommend

import (
	"time"

	"eventRadar/domain"
)

// exclusions collects the event ids the target user must never be shown:
//   - events rated "not interested" at any point, even if re-rated later;
//   - events liked within the recency window, to avoid immediately
//     re-recommending something the user just acted on;
//   - with ExcludeSeen on, every event the user has rated at all.
func exclusions(interactions []domain.Interaction, userID uint, now time.Time, cfg Config) map[uint64]struct{} {
	excluded := make(map[uint64]struct{})

	for _, in := range interactions {
		if in.UserID != userID {
			continue
		}

		switch {
		case in.Rating() < 0:
			excluded[in.EventID] = struct{}{}
		case in.Rating() > 0 && now.Sub(in.CreatedAt) <= cfg.RecencyWindow:
			excluded[in.EventID] = struct{}{}
		case cfg.ExcludeSeen && in.Rating() != 0:
			excluded[in.EventID] = struct{}{}
		}
	}

	return excluded
}

func applyExclusions(scores map[uint64]float64, excluded map[uint64]struct{}) {
	for id := range excluded {
		delete(scores, id)
	}
}
