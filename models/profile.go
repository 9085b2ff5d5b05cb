package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Account types
const (
	AccountTypeAthlete  = "athlete"
	AccountTypeBrand    = "brand"
	AccountTypeCreative = "creative"
)

// Profile mirrors one row in the identity provider's user table. The ID is
// the subject issued by the provider, so there is no autoincrement default.
type Profile struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	AccountType    string         `json:"account_type" gorm:"not null;default:'athlete';type:varchar(20)"`
	DisplayName    *string        `json:"display_name"`
	AvatarURL      *string        `json:"avatar_url"`
	Username       *string        `json:"username" gorm:"uniqueIndex"`
	Bio            *string        `json:"bio" gorm:"type:text"`
	HomeTown       *string        `json:"home_town"`
	SportCategory  *string        `json:"sport_category" gorm:"type:varchar(20)"` // board, bike, motor_other
	SportName      *string        `json:"sport_name" gorm:"type:varchar(30)"`
	Stance         *string        `json:"stance" gorm:"type:varchar(10)"` // regular | goofy
	SnowStyles     pq.StringArray `json:"snow_styles" gorm:"type:text[]"`
	SkateStyles    pq.StringArray `json:"skate_styles" gorm:"type:text[]"`
	FootForward    *string        `json:"foot_forward" gorm:"type:varchar(10)"` // left | right
	Style          *string        `json:"style" gorm:"type:varchar(20)"`
	Disciplines    pq.StringArray `json:"disciplines" gorm:"type:text[]"`
	Verified       bool           `json:"verified" gorm:"default:false"`
	BannerURL      *string        `json:"banner_url"`
	EmailPublic    *string        `json:"email_public"`
	Twitter        *string        `json:"twitter"`
	Youtube        *string        `json:"youtube"`
	ScoutingStatus *string        `json:"scouting_status" gorm:"type:varchar(30)"`

	// Creative (filmer) fields.
	EquipmentList    pq.StringArray `json:"equipment_list" gorm:"type:text[]"`
	Specialties      pq.StringArray `json:"specialties" gorm:"type:text[]"`
	DayRate          *float64       `json:"day_rate" gorm:"type:decimal(10,2)"`
	YoutubePortfolio *string        `json:"youtube_portfolio"`
	VimeoPortfolio   *string        `json:"vimeo_portfolio"`
	BehancePortfolio *string        `json:"behance_portfolio"`

	Clips     []Clip    `json:"clips,omitempty" gorm:"foreignKey:ProfileID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
