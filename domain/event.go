package domain

import (
	"time"
)

// CREATE TABLE public.events (
//     id               BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     title            TEXT NOT NULL,
//     event_type       TEXT,
//     location         TEXT,
//     latitude         DOUBLE PRECISION,
//     longitude        DOUBLE PRECISION,
//     event_start_date TIMESTAMPTZ,
//     start_time       TEXT,
//     description      TEXT,
//     created_at       TIMESTAMPTZ DEFAULT NOW()
// );

type Event struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title          string    `gorm:"column:title;type:text;not null" json:"title"`
	EventType      string    `gorm:"column:event_type;type:text" json:"event_type"`
	Location       string    `gorm:"column:location;type:text" json:"location"`
	Latitude       *float64  `gorm:"column:latitude" json:"latitude,omitempty"`
	Longitude      *float64  `gorm:"column:longitude" json:"longitude,omitempty"`
	EventStartDate time.Time `gorm:"column:event_start_date" json:"event_start_date"`
	StartTime      string    `gorm:"column:start_time;type:text" json:"start_time"`
	Description    string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Event) TableName() string {
	return "events"
}

// Coordinates returns the event position, or nil when either coordinate
// is missing. Scraped events frequently lack geocoding.
func (e Event) Coordinates() *GeoPoint {
	if e.Latitude == nil || e.Longitude == nil {
		return nil
	}
	return &GeoPoint{Latitude: *e.Latitude, Longitude: *e.Longitude}
}

type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// EventFilter mirrors the catalog listing query parameters.
type EventFilter struct {
	Year      int
	Month     int
	EventType string
	Search    string
	Page      int
	Limit     int
}

// CategoryCount is a per-category event tally for the statistics endpoint.
type CategoryCount struct {
	EventType string `json:"event_type"`
	Count     int64  `json:"count"`
}

// MonthCount is a per-month event tally for the statistics endpoint.
type MonthCount struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}
