package fixture

import (
	"fmt"
	"strings"
	"time"
)

const (
	labelFinished  = "Finished"
	labelLive      = "Live"
	labelScheduled = "Scheduled"
	labelUnknown   = "Unknown"
)

// Card is the display projection of a fixture. Exactly one of Score and
// Kickoff is set.
type Card struct {
	StatusLabel string
	Live        bool
	Score       string
	Kickoff     string
	Competition string
}

// StatusLabel maps the provider status to the label shown to viewers.
func (f Fixture) StatusLabel() string {
	switch NormalizeStatus(f.Status.Type) {
	case StatusFinished:
		return labelFinished
	case StatusInProgress:
		return labelLive
	case StatusNotStarted:
		return labelScheduled
	}
	if desc := strings.TrimSpace(f.Status.Description); desc != "" {
		return desc
	}
	return labelUnknown
}

// Card builds the display state of f with kickoff times rendered in loc.
func (f Fixture) Card(loc *time.Location) Card {
	if loc == nil {
		loc = time.Local
	}
	card := Card{
		StatusLabel: f.StatusLabel(),
		Live:        IsLiveStatus(f.Status.Type),
		Competition: fmt.Sprintf("%s - Round %d", f.Tournament.UniqueTournament.Name, f.Round),
	}
	if f.HasScore() {
		card.Score = fmt.Sprintf("%d - %d", f.HomeScore.Display, f.AwayScore.Display)
		return card
	}
	card.Kickoff = f.StartTime().In(loc).Format("15:04")
	return card
}
