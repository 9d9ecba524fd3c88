package domain

import (
	"time"
)

const (
	ActionInterested    = "interested"
	ActionNotInterested = "not_interested"
)

// CREATE TABLE public.user_event_interactions (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     user_id     BIGINT NOT NULL,
//     event_id    BIGINT NOT NULL,
//     action_type TEXT NOT NULL,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

type Interaction struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint      `gorm:"column:user_id;not null" json:"user_id"`
	EventID    uint64    `gorm:"column:event_id;not null" json:"event_id"`
	ActionType string    `gorm:"column:action_type;not null" json:"action_type"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Interaction) TableName() string {
	return "user_event_interactions"
}

// Rating maps the stored action onto the -1/0/+1 scale the engine works with.
func (i Interaction) Rating() float64 {
	switch i.ActionType {
	case ActionInterested:
		return 1
	case ActionNotInterested:
		return -1
	default:
		return 0
	}
}
