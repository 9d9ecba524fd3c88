package domain

type Recommendation struct {
	EventID uint64  `json:"event_id"`
	Score   float64 `json:"score"`
}

// DebugRecommendation exposes the per-signal breakdown behind a final score.
type DebugRecommendation struct {
	EventID         uint64  `json:"event_id"`
	Score           float64 `json:"score"`
	Collaborative   float64 `json:"collaborative"`
	Content         float64 `json:"content"`
	Popularity      float64 `json:"popularity"`
	DistancePenalty float64 `json:"distance_penalty"`
	Excluded        bool    `json:"excluded"`
	Source          string  `json:"source"`
}

// EngineConfig is the DB-backed override row for the engine's blend weights.
// Missing row means the env/default config applies unchanged.
type EngineConfig struct {
	ID                   uint    `gorm:"primaryKey" json:"id"`
	WCollaborative       float64 `gorm:"column:w_collaborative" json:"w_collaborative"`
	WContent             float64 `gorm:"column:w_content" json:"w_content"`
	WPopularity          float64 `gorm:"column:w_popularity" json:"w_popularity"`
	DistanceWeight       float64 `gorm:"column:distance_weight" json:"distance_weight"`
	DistanceCap          float64 `gorm:"column:distance_cap" json:"distance_cap"`
	RecencyWindowSeconds int     `gorm:"column:recency_window_seconds" json:"recency_window_seconds"`
	ExcludeSeen          bool    `gorm:"column:exclude_seen" json:"exclude_seen"`
	DefaultTopN          int     `gorm:"column:default_top_n" json:"default_top_n"`
}

func (EngineConfig) TableName() string {
	return "recommendation_config"
}
