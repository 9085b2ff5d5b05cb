package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckIn is an append-only presence event. A user may check in at the same
// spot any number of times; recency is the signal, not membership.
type CheckIn struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	SpotID    uuid.UUID `json:"spot_id" gorm:"type:uuid;not null;index"`
	User      Profile   `json:"-" gorm:"foreignKey:UserID"`
	Spot      Spot      `json:"-" gorm:"foreignKey:SpotID"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

func (c *CheckIn) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
