package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Dap is a peer endorsement on a clip. One row per user per clip.
type Dap struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_daps_user_clip"`
	ClipID    uuid.UUID `json:"clip_id" gorm:"type:uuid;not null;uniqueIndex:idx_daps_user_clip;index"`
	User      Profile   `json:"-" gorm:"foreignKey:UserID"`
	Clip      Clip      `json:"-" gorm:"foreignKey:ClipID"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

func (d *Dap) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// ProfileDap is a reputation endorsement on an athlete profile. One row per
// voter per athlete.
type ProfileDap struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	VoterID   uuid.UUID `json:"voter_id" gorm:"type:uuid;not null;uniqueIndex:idx_profile_daps_pair"`
	AthleteID uuid.UUID `json:"athlete_id" gorm:"type:uuid;not null;uniqueIndex:idx_profile_daps_pair;index"`
	Voter     Profile   `json:"-" gorm:"foreignKey:VoterID"`
	Athlete   Profile   `json:"-" gorm:"foreignKey:AthleteID"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (d *ProfileDap) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
