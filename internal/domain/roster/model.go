package roster

import (
	"context"

	"github.com/riskibarqy/matchday/internal/domain/player"
)

// Entry wraps one squad member.
type Entry struct {
	Player player.Player
}

// Roster is a team's squad. A failed fetch is represented by a roster with
// the team id and no players.
type Roster struct {
	TeamID  int64
	Players []Entry
}

func Empty(teamID int64) Roster {
	return Roster{TeamID: teamID, Players: []Entry{}}
}

// FilterNationality returns the entries whose player country equals
// nationality, in roster order.
func (r Roster) FilterNationality(nationality string) []Entry {
	out := make([]Entry, 0)
	for _, entry := range r.Players {
		if entry.Player.IsNational(nationality) {
			out = append(out, entry)
		}
	}
	return out
}

// Source fetches a team's squad.
type Source interface {
	FetchByTeam(ctx context.Context, teamID int64) (Roster, error)
}
