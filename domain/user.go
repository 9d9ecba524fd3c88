package domain

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	ID          uint              `gorm:"primaryKey"`
	FullName    string            `gorm:"column:full_name;not null"`
	Email       string            `gorm:"column:email;unique;not null"`
	Password    string            `gorm:"column:password;not null"`
	Role        string            `gorm:"column:role;default:customer"`
	Latitude    *float64          `gorm:"column:latitude"`
	Longitude   *float64          `gorm:"column:longitude"`
	Preferences datatypes.JSONMap `gorm:"column:preferences;type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

// Location returns the user's saved position, or nil when it was never set.
func (u User) Location() *GeoPoint {
	if u.Latitude == nil || u.Longitude == nil {
		return nil
	}
	return &GeoPoint{Latitude: *u.Latitude, Longitude: *u.Longitude}
}
