package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreativeVouch is an endorsement of a filmer's work. One row per voter per
// creative; self-vouching is rejected at the handler.
type CreativeVouch struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	VoterID    uuid.UUID `json:"voter_id" gorm:"type:uuid;not null;uniqueIndex:idx_creative_vouches_pair"`
	CreativeID uuid.UUID `json:"creative_id" gorm:"type:uuid;not null;uniqueIndex:idx_creative_vouches_pair;index"`
	Voter      Profile   `json:"-" gorm:"foreignKey:VoterID"`
	Creative   Profile   `json:"-" gorm:"foreignKey:CreativeID"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (v *CreativeVouch) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
