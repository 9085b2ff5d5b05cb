package types

import (
	"github.com/google/uuid"

	"github.com/fta-sports/api-go/models"
)

// RecentCheckIn is one entry of a spot's "who's here" strip: a user active in
// the trailing 4 hours, with display fields from their profile.
type RecentCheckIn struct {
	UserID      uuid.UUID `json:"user_id"`
	DisplayName *string   `json:"display_name"`
	AvatarURL   *string   `json:"avatar_url"`
}

// SpotWithStats is a spot enriched with request-scoped activity stats. Never
// persisted; recomputed fresh on every read.
type SpotWithStats struct {
	models.Spot
	ActiveNow      int             `json:"active_now"`
	WeeklyAvg      float64         `json:"weekly_avg"`
	HeatingUp      bool            `json:"heating_up"`
	RecentCheckIns []RecentCheckIn `json:"recent_check_ins"`
}

// ScoutAthlete is one card in the brand-side scouting feed.
type ScoutAthlete struct {
	ID               uuid.UUID   `json:"id"`
	DisplayName      *string     `json:"display_name"`
	Username         *string     `json:"username"`
	AvatarURL        *string     `json:"avatar_url"`
	SportName        *string     `json:"sport_name"`
	HomeTown         *string     `json:"home_town"`
	Stance           *string     `json:"stance"`
	FootForward      *string     `json:"foot_forward"`
	AthleteDapsCount int64       `json:"athlete_daps_count"`
	LatestClip       *LatestClip `json:"latest_clip"`
	OnWatchlist      bool        `json:"on_watchlist"`
}

type LatestClip struct {
	ID           uuid.UUID `json:"id"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL *string   `json:"thumbnail_url"`
}

// CreativeCard is one entry in the filmer directory.
type CreativeCard struct {
	ID            uuid.UUID `json:"id"`
	DisplayName   *string   `json:"display_name"`
	Username      *string   `json:"username"`
	AvatarURL     *string   `json:"avatar_url"`
	HomeTown      *string   `json:"home_town"`
	EquipmentList []string  `json:"equipment_list"`
	Specialties   []string  `json:"specialties"`
	DayRate       *float64  `json:"day_rate"`
	VouchesCount  int64     `json:"vouches_count"`
}

// TrendingAthlete is one row of the 7-day clip-dap leaderboard.
type TrendingAthlete struct {
	ID          uuid.UUID `json:"id"`
	DisplayName *string   `json:"display_name"`
	Username    *string   `json:"username"`
	SportName   *string   `json:"sport_name"`
	ClipDaps7d  int64     `json:"clip_daps_7d" gorm:"column:clip_daps7d"`
}
