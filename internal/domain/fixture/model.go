package fixture

import (
	"strings"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/team"
)

const (
	StatusNotStarted = "notstarted"
	StatusInProgress = "inprogress"
	StatusFinished   = "finished"
)

// Status is the provider's match state. Type is one of the Status*
// constants or any other provider value, in which case Description
// carries the human-readable label.
type Status struct {
	Type        string
	Description string
}

// Score holds the display value of one side's score.
type Score struct {
	Display int
}

type UniqueTournament struct {
	ID   int64
	Name string
}

type Tournament struct {
	ID               int64
	Name             string
	UniqueTournament UniqueTournament
}

// Fixture is an immutable snapshot of one scheduled or completed match.
type Fixture struct {
	ID             int64
	StartTimestamp int64
	HomeTeam       team.Team
	AwayTeam       team.Team
	Status         Status
	HomeScore      *Score
	AwayScore      *Score
	Tournament     Tournament
	Round          int
}

func NormalizeStatus(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func IsLiveStatus(status string) bool {
	return NormalizeStatus(status) == StatusInProgress
}

func IsFinishedStatus(status string) bool {
	return NormalizeStatus(status) == StatusFinished
}

// StartTime returns the kickoff instant.
func (f Fixture) StartTime() time.Time {
	return time.Unix(f.StartTimestamp, 0)
}

// UniqueTournamentID is the id of the competition that owns the fixture.
func (f Fixture) UniqueTournamentID() int64 {
	return f.Tournament.UniqueTournament.ID
}

// InvolvesTeam reports whether either side is in ids.
func (f Fixture) InvolvesTeam(ids map[int64]struct{}) bool {
	if _, ok := ids[f.HomeTeam.ID]; ok {
		return true
	}
	_, ok := ids[f.AwayTeam.ID]
	return ok
}

// HasScore reports whether the score is meaningful for the current status.
// Scores are only shown for live or finished matches.
func (f Fixture) HasScore() bool {
	if !IsLiveStatus(f.Status.Type) && !IsFinishedStatus(f.Status.Type) {
		return false
	}
	return f.HomeScore != nil && f.AwayScore != nil
}

// SameLocalDay reports whether instant falls on day's calendar date in day's
// location.
func SameLocalDay(instant, day time.Time) bool {
	local := instant.In(day.Location())
	y1, m1, d1 := local.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StartsOn reports whether the fixture kicks off on day's local calendar date.
func (f Fixture) StartsOn(day time.Time) bool {
	return SameLocalDay(f.StartTime(), day)
}

// FormatDate renders day as YYYY-MM-DD in its own location.
func FormatDate(day time.Time) string {
	return day.Format(time.DateOnly)
}
