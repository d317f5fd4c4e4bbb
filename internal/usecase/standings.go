package usecase

import (
	"sort"

	"github.com/riskibarqy/matchday/internal/domain/leaguestanding"
)

// Comparison holds the table rows of two teams. A nil slot means the team
// is not in the table.
type Comparison struct {
	TeamA *leaguestanding.Standing
	TeamB *leaguestanding.Standing
}

// TopByGoalsFor orders rows by goals scored, highest first. Ties keep their
// table order and the input is not modified.
func TopByGoalsFor(rows []leaguestanding.Standing) []leaguestanding.Standing {
	out := cloneStandings(rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GoalsFor > out[j].GoalsFor
	})
	return out
}

// TopByGoalsAgainst orders rows by goals conceded, lowest first.
func TopByGoalsAgainst(rows []leaguestanding.Standing) []leaguestanding.Standing {
	out := cloneStandings(rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GoalsAgainst < out[j].GoalsAgainst
	})
	return out
}

// CompareTeams looks up both teams by id.
func CompareTeams(rows []leaguestanding.Standing, teamAID, teamBID int64) Comparison {
	return Comparison{
		TeamA: findStanding(rows, teamAID),
		TeamB: findStanding(rows, teamBID),
	}
}

func findStanding(rows []leaguestanding.Standing, teamID int64) *leaguestanding.Standing {
	for i := range rows {
		if rows[i].Team.ID == teamID {
			row := rows[i]
			return &row
		}
	}
	return nil
}

func cloneStandings(rows []leaguestanding.Standing) []leaguestanding.Standing {
	out := make([]leaguestanding.Standing, len(rows))
	copy(out, rows)
	return out
}

func limitSlice[T any](items []T, limit int) []T {
	if limit <= 0 || limit >= len(items) {
		return items
	}
	return items[:limit]
}
