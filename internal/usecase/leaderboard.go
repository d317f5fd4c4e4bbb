package usecase

import (
	"sort"

	"github.com/riskibarqy/matchday/internal/domain/playerstats"
)

const DefaultLeaderboardLimit = 20

// TopPlayers ranks players by statKey, highest first, treating a missing
// statistic as zero. Ties keep input order. A non-positive limit falls back
// to DefaultLeaderboardLimit.
func TopPlayers(players []playerstats.Entry, statKey string, limit int) []playerstats.Entry {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	out := make([]playerstats.Entry, len(players))
	copy(out, players)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value(statKey) > out[j].Value(statKey)
	})
	return limitSlice(out, limit)
}
