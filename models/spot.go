package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Spot is a map location tagged with a sport and riding style. Globally
// visible, not owned by any user.
type Spot struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Sport       string    `json:"sport" gorm:"not null;type:varchar(20)"`
	Type        string    `json:"type" gorm:"not null;type:varchar(20)"` // sport-specific riding style
	Lat         float64   `json:"lat" gorm:"not null;type:decimal(10,8)"`
	Lng         float64   `json:"lng" gorm:"not null;type:decimal(11,8)"`
	Description *string   `json:"description" gorm:"type:text"`
	CheckIns    []CheckIn `json:"check_ins,omitempty" gorm:"foreignKey:SpotID"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s *Spot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
