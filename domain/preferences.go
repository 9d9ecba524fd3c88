package domain

// Distance bands a user can pick in the preference form. Each band maps to
// the maximum distance (km) used to scale the geographic penalty.
const (
	DistanceBandNear    = "0-5"
	DistanceBandCity    = "5-15"
	DistanceBandRegion  = "15-30"
	DistanceBandFar     = "30+"
	defaultDistanceKm   = 100.0
)

// Preferences is the stated preference record for one user. Categories come
// from user_preferences rows; the remaining fields live in the users.preferences
// JSONB column. A zero value means "no stated preferences" and is neutral:
// no boosts, and the widest distance band.
type Preferences struct {
	Categories        []string `json:"eventCategories"`
	PreferredTime     string   `json:"preferredTime"`
	PreferredDistance string   `json:"preferredDistance"`
	TimeMatters       bool     `json:"timeMatters"`
	DistanceMatters   bool     `json:"distanceMatters"`
}

// NeutralPreferences is used when a user has no stored record. The matters
// flags default to true so that stored partial records behave the same as
// the preference form's defaults.
func NeutralPreferences() Preferences {
	return Preferences{
		TimeMatters:     true,
		DistanceMatters: true,
	}
}

// MaxDistanceKm resolves the preferred distance band to a km threshold.
// Unknown or absent bands, and users for whom distance does not matter,
// fall back to the widest threshold rather than disabling the penalty.
func (p Preferences) MaxDistanceKm() float64 {
	if !p.DistanceMatters {
		return defaultDistanceKm
	}
	switch p.PreferredDistance {
	case DistanceBandNear:
		return 5
	case DistanceBandCity:
		return 15
	case DistanceBandRegion:
		return 30
	case DistanceBandFar:
		return defaultDistanceKm
	default:
		return defaultDistanceKm
	}
}
