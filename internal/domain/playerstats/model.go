package playerstats

import (
	"context"

	"github.com/riskibarqy/matchday/internal/domain/player"
	"github.com/riskibarqy/matchday/internal/domain/team"
)

const (
	KeyGoals      = "goals"
	KeyTotalShots = "totalShots"
	KeyDribbles   = "successfulDribbles"
	KeyConversion = "goalConversionPercentage"
	KeyRating     = "rating"
)

// Keys lists the statistics the leaderboard can rank by, in display order.
var Keys = []string{KeyGoals, KeyTotalShots, KeyDribbles, KeyConversion, KeyRating}

func IsKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Entry is one player's accumulated season statistics.
type Entry struct {
	Player player.Player
	Team   team.Team
	Stats  map[string]float64
}

// Value returns the named statistic, treating a missing one as zero.
func (e Entry) Value(key string) float64 {
	if e.Stats == nil {
		return 0
	}
	return e.Stats[key]
}

// Source fetches season statistics for one tournament season.
type Source interface {
	ListBySeason(ctx context.Context, tournamentID, seasonID int64) ([]Entry, error)
}
