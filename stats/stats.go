// Package stats derives per-spot activity statistics from the raw check-in
// event log. Computation is request-scoped: callers pass a snapshot and get
// fresh numbers back, nothing is cached.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fta-sports/api-go/models"
	"github.com/fta-sports/api-go/types"
)

const (
	// ActiveWindow bounds the "active now" count and the recent visitor strip.
	ActiveWindow = 4 * time.Hour
	// TrendWindow bounds the weekly average.
	TrendWindow = 7 * 24 * time.Hour
	// HeatingUpMultiplier: a spot is heating up when active-now activity is at
	// least this factor above its weekly pace.
	HeatingUpMultiplier = 1.2
	// RecentCheckInsCap limits the visitor strip for display.
	RecentCheckInsCap = 8
)

// ProfileInfo carries the display fields joined onto recent check-ins.
type ProfileInfo struct {
	DisplayName *string
	AvatarURL   *string
}

// Compute enriches every spot with activity stats derived from checkIns,
// which must already be restricted to the trailing trend window. Profiles is
// a lookup over the user ids appearing in that window; missing entries yield
// nil display fields rather than dropped check-ins.
//
// The result is ordered by spot name ascending.
func Compute(now time.Time, spots []models.Spot, checkIns []models.CheckIn, profiles map[uuid.UUID]ProfileInfo) []types.SpotWithStats {
	activeCutoff := now.Add(-ActiveWindow)

	bySpot := make(map[uuid.UUID][]models.CheckIn)
	for _, ci := range checkIns {
		bySpot[ci.SpotID] = append(bySpot[ci.SpotID], ci)
	}

	result := make([]types.SpotWithStats, 0, len(spots))
	for _, spot := range spots {
		spotCheckIns := bySpot[spot.ID]

		activeNow := 0
		for _, ci := range spotCheckIns {
			if !ci.CreatedAt.Before(activeCutoff) {
				activeNow++
			}
		}

		// The heating-up comparison uses the unrounded average; rounding is
		// display-only. Zero weekly activity never heats up, even with recent
		// check-ins.
		weeklyAvg := float64(len(spotCheckIns)) / 7
		heatingUp := weeklyAvg > 0 && float64(activeNow) >= weeklyAvg*HeatingUpMultiplier

		result = append(result, types.SpotWithStats{
			Spot:           spot,
			ActiveNow:      activeNow,
			WeeklyAvg:      math.Round(weeklyAvg*10) / 10,
			HeatingUp:      heatingUp,
			RecentCheckIns: recentCheckIns(spotCheckIns, activeCutoff, profiles),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// recentCheckIns returns the visitors active within the 4-hour window,
// deduplicated by user id in first-seen order and capped for display.
func recentCheckIns(spotCheckIns []models.CheckIn, activeCutoff time.Time, profiles map[uuid.UUID]ProfileInfo) []types.RecentCheckIn {
	recent := []types.RecentCheckIn{}
	seen := make(map[uuid.UUID]bool)
	for _, ci := range spotCheckIns {
		if ci.CreatedAt.Before(activeCutoff) || seen[ci.UserID] {
			continue
		}
		seen[ci.UserID] = true
		entry := types.RecentCheckIn{UserID: ci.UserID}
		if info, ok := profiles[ci.UserID]; ok {
			entry.DisplayName = info.DisplayName
			entry.AvatarURL = info.AvatarURL
		}
		recent = append(recent, entry)
		if len(recent) == RecentCheckInsCap {
			break
		}
	}
	return recent
}
