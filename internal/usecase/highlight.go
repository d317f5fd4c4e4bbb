package usecase

import (
	"sort"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/fixture"
)

// SelectHighlighted keeps the fixtures that start on targetDate's calendar
// day (in targetDate's location) and either involve a priority team or
// belong to the priority tournament. The result is stably ordered by unique
// tournament id. The input slice is not modified.
func SelectHighlighted(
	fixtures []fixture.Fixture,
	targetDate time.Time,
	priorityTeamIDs map[int64]struct{},
	priorityTournamentID int64,
) []fixture.Fixture {
	out := make([]fixture.Fixture, 0)
	for _, item := range fixtures {
		if !item.StartsOn(targetDate) {
			continue
		}
		if item.InvolvesTeam(priorityTeamIDs) || item.UniqueTournamentID() == priorityTournamentID {
			out = append(out, item)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UniqueTournamentID() < out[j].UniqueTournamentID()
	})
	return out
}
