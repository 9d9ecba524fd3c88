package recommend

import (
	"math"

	"eventRadar/domain"
)

const earthRadiusKm = 6371.0

// haversineKm is the great-circle distance between two points in km.
func haversineKm(a, b domain.GeoPoint) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// distancePenalty computes the raw subtractive penalty for one event, or 0
// when either position is unknown. The penalty is capped at DistanceCap times
// the preferred band threshold so a far-away event cannot be pushed
// arbitrarily low.
func distancePenalty(userLoc *domain.GeoPoint, ev domain.Event, prefs domain.Preferences, cfg Config) float64 {
	if userLoc == nil {
		return 0
	}
	evLoc := ev.Coordinates()
	if evLoc == nil {
		return 0
	}

	maxKm := prefs.MaxDistanceKm()
	if maxKm <= 0 {
		return 0
	}

	ratio := haversineKm(*userLoc, *evLoc) / maxKm
	return math.Min(ratio, cfg.DistanceCap) * cfg.DistanceWeight
}

// applyDistancePenalty subtracts the geographic penalty from every scored
// event with known coordinates. Events lacking coordinates stay unpenalized;
// a missing user location disables the penalizer entirely.
func applyDistancePenalty(scores map[uint64]float64, events []domain.Event, userLoc *domain.GeoPoint, prefs domain.Preferences, cfg Config) {
	if userLoc == nil {
		return
	}
	for _, ev := range events {
		if _, ok := scores[ev.ID]; !ok {
			continue
		}
		scores[ev.ID] -= distancePenalty(userLoc, ev, prefs, cfg)
	}
}
