package leaguestanding

import (
	"context"

	"github.com/riskibarqy/matchday/internal/domain/team"
)

// Standing represents a league table row for one team.
type Standing struct {
	ID           int64
	Team         team.Team
	Position     int
	Matches      int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
	Points       int
}

// GoalDifference is derived on read so it never drifts from the goal totals.
func (s Standing) GoalDifference() int {
	return s.GoalsFor - s.GoalsAgainst
}

// Source fetches the total standings table of one tournament season.
type Source interface {
	ListBySeason(ctx context.Context, tournamentID, seasonID int64) ([]Standing, error)
}
