package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.ratings (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     user_id     TEXT NOT NULL,
//     item_id     TEXT NOT NULL,
//     value       NUMERIC NOT NULL,
//     context     JSONB,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

// Rating is one feedback observation. The log is append-only: a user rating
// the same item again adds a new row, and "current rating" means the latest
// row for that (user, item) pair.
type Rating struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	UserID    string            `gorm:"column:user_id;not null;index" json:"user_id"`
	ItemID    string            `gorm:"column:item_id;not null;index" json:"item_id"`
	Value     float64           `gorm:"column:value;not null" json:"value"`
	Context   datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context,omitempty"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Rating) TableName() string {
	return "ratings"
}
