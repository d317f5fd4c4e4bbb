package usecase

import (
	"sync"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/fixture"
	"github.com/riskibarqy/matchday/internal/domain/player"
	"github.com/riskibarqy/matchday/internal/domain/roster"
	"github.com/riskibarqy/matchday/internal/domain/team"
)

var casablanca = time.FixedZone("Africa/Casablanca", 60*60)

func testDay() time.Time {
	return time.Date(2026, 10, 19, 0, 0, 0, 0, casablanca)
}

func testFixture(id int64, start time.Time, tournamentID int64, home, away team.Team) fixture.Fixture {
	return fixture.Fixture{
		ID:             id,
		StartTimestamp: start.Unix(),
		HomeTeam:       home,
		AwayTeam:       away,
		Status:         fixture.Status{Type: fixture.StatusNotStarted},
		Tournament: fixture.Tournament{
			ID:               tournamentID * 10,
			UniqueTournament: fixture.UniqueTournament{ID: tournamentID, Name: "Tournament"},
		},
		Round: 1,
	}
}

func testTeam(id int64, country string) team.Team {
	return team.Team{ID: id, Name: "Team", Country: country}
}

func testRoster(teamID int64, countries ...string) roster.Roster {
	entries := make([]roster.Entry, 0, len(countries))
	for i, country := range countries {
		entries = append(entries, roster.Entry{Player: player.Player{
			ID:      teamID*100 + int64(i),
			Name:    "Player",
			Country: country,
		}})
	}
	return roster.Roster{TeamID: teamID, Players: entries}
}

type countingRecorder struct {
	mu  sync.Mutex
	ops []string
}

func (r *countingRecorder) RecordDegraded(op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, op)
}
