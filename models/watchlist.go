package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Watchlist links a brand to an athlete it is tracking. Unique per pair.
type Watchlist struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	BrandID   uuid.UUID `json:"brand_id" gorm:"type:uuid;not null;uniqueIndex:idx_watchlist_pair"`
	AthleteID uuid.UUID `json:"athlete_id" gorm:"type:uuid;not null;uniqueIndex:idx_watchlist_pair;index"`
	Brand     Profile   `json:"-" gorm:"foreignKey:BrandID"`
	Athlete   Profile   `json:"-" gorm:"foreignKey:AthleteID"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (w *Watchlist) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
