package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Clip is one catalog entry: a video with optional trick/location metadata.
type Clip struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProfileID    uuid.UUID `json:"profile_id" gorm:"type:uuid;not null;index"`
	Profile      Profile   `json:"-" gorm:"foreignKey:ProfileID"`
	VideoURL     string    `json:"video_url" gorm:"not null"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	TrickName    *string   `json:"trick_name"`
	Location     *string   `json:"location"`
	SpotName     *string   `json:"spot_name"`
	Daps         []Dap     `json:"daps,omitempty" gorm:"foreignKey:ClipID"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
}

func (c *Clip) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
