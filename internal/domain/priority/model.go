package priority

import (
	"fmt"
	"sort"
	"strings"
)

// Tournament is a competition worth surfacing, with a display rank where
// lower ranks come first.
type Tournament struct {
	ID   int64
	Name string
	Rank int
}

// Config selects which fixtures, standings and players the dashboard shows.
// It is built once at startup and shared read-only.
type Config struct {
	HighlightTournamentID int64
	TopTeamIDs            []int64
	Tournaments           []Tournament
	Nationality           string
	Language              string
	StandingsTournamentID int64
	StandingsSeasonID     int64
}

func (c Config) Validate() error {
	if c.HighlightTournamentID <= 0 {
		return fmt.Errorf("highlight tournament id is required")
	}
	if strings.TrimSpace(c.Nationality) == "" {
		return fmt.Errorf("nationality is required")
	}
	if len(c.Tournaments) == 0 {
		return fmt.Errorf("at least one priority tournament is required")
	}
	seen := make(map[int64]struct{}, len(c.Tournaments))
	for _, t := range c.Tournaments {
		if t.ID <= 0 {
			return fmt.Errorf("invalid priority tournament id: %d", t.ID)
		}
		if _, ok := seen[t.ID]; ok {
			return fmt.Errorf("duplicate priority tournament id: %d", t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	if c.StandingsTournamentID <= 0 || c.StandingsSeasonID <= 0 {
		return fmt.Errorf("standings tournament and season ids are required")
	}
	return nil
}

// TopTeamSet returns the top team ids as a lookup set.
func (c Config) TopTeamSet() map[int64]struct{} {
	out := make(map[int64]struct{}, len(c.TopTeamIDs))
	for _, id := range c.TopTeamIDs {
		out[id] = struct{}{}
	}
	return out
}

// TournamentSet returns the priority tournament ids as a lookup set.
func (c Config) TournamentSet() map[int64]struct{} {
	out := make(map[int64]struct{}, len(c.Tournaments))
	for _, t := range c.Tournaments {
		out[t.ID] = struct{}{}
	}
	return out
}

// RankedTournaments returns a copy of the tournaments ordered by rank.
func (c Config) RankedTournaments() []Tournament {
	out := make([]Tournament, len(c.Tournaments))
	copy(out, c.Tournaments)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rank < out[j].Rank
	})
	return out
}
