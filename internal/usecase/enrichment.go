package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc"

	"github.com/riskibarqy/matchday/internal/domain/fixture"
	"github.com/riskibarqy/matchday/internal/domain/roster"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

const defaultEnrichWorkers = 8

// RosterFetchFunc loads a team's squad. Implementations may fail; the
// enricher substitutes an empty roster for that side.
type RosterFetchFunc func(ctx context.Context, teamID int64) (roster.Roster, error)

// EnrichedFixture pairs a fixture with the squads of both sides.
type EnrichedFixture struct {
	Fixture    fixture.Fixture
	HomeRoster roster.Roster
	AwayRoster roster.Roster
}

// Enricher attaches rosters to candidate fixtures using a bounded worker pool.
type Enricher struct {
	workers int
	logger  *logging.Logger
}

func NewEnricher(workers int, logger *logging.Logger) *Enricher {
	if workers <= 0 {
		workers = defaultEnrichWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Enricher{workers: workers, logger: logger}
}

// Candidates returns the fixtures eligible for enrichment: in a priority
// tournament, on targetDate's local calendar day, and with neither side from
// nationality's country. Input order is preserved.
func Candidates(
	fixtures []fixture.Fixture,
	targetDate time.Time,
	priorityTournamentIDs map[int64]struct{},
	nationality string,
) []fixture.Fixture {
	out := make([]fixture.Fixture, 0)
	for _, item := range fixtures {
		if _, ok := priorityTournamentIDs[item.UniqueTournamentID()]; !ok {
			continue
		}
		if !item.StartsOn(targetDate) {
			continue
		}
		if item.HomeTeam.Country == nationality || item.AwayTeam.Country == nationality {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Enrich fetches home and away rosters for every candidate fixture. Each
// fixture's two fetches run concurrently and fixtures are spread across the
// worker pool. The output follows candidate order. Roster failures never
// propagate.
func (e *Enricher) Enrich(
	ctx context.Context,
	fixtures []fixture.Fixture,
	targetDate time.Time,
	priorityTournamentIDs map[int64]struct{},
	nationality string,
	fetch RosterFetchFunc,
) []EnrichedFixture {
	ctx, span := startUsecaseSpan(ctx, "usecase.Enricher.Enrich")
	defer span.End()

	candidates := Candidates(fixtures, targetDate, priorityTournamentIDs, nationality)
	out := make([]EnrichedFixture, len(candidates))
	if len(candidates) == 0 {
		return out
	}

	workers := e.workers
	if workers > len(candidates) {
		workers = len(candidates)
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		e.logger.WarnContext(ctx, "create enrichment pool failed, enriching sequentially", "error", err)
		for i, item := range candidates {
			out[i] = e.enrichOne(ctx, item, fetch)
		}
		return out
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, item := range candidates {
		i, item := i, item
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			out[i] = e.enrichOne(ctx, item, fetch)
		}); err != nil {
			wg.Done()
			out[i] = e.enrichOne(ctx, item, fetch)
		}
	}
	wg.Wait()

	return out
}

func (e *Enricher) enrichOne(ctx context.Context, item fixture.Fixture, fetch RosterFetchFunc) EnrichedFixture {
	result := EnrichedFixture{Fixture: item}

	var wg conc.WaitGroup
	wg.Go(func() {
		result.HomeRoster = e.fetchRoster(ctx, item.HomeTeam.ID, fetch)
	})
	wg.Go(func() {
		result.AwayRoster = e.fetchRoster(ctx, item.AwayTeam.ID, fetch)
	})
	wg.Wait()

	return result
}

func (e *Enricher) fetchRoster(ctx context.Context, teamID int64, fetch RosterFetchFunc) roster.Roster {
	if fetch == nil {
		return roster.Empty(teamID)
	}
	item, err := fetch(ctx, teamID)
	if err != nil {
		e.logger.WarnContext(ctx, "roster fetch failed during enrichment", "team_id", teamID, "error", err)
		return roster.Empty(teamID)
	}
	if item.Players == nil {
		item.Players = []roster.Entry{}
	}
	return item
}

// ExtractNationalityMatches lists the home players then the away players
// whose country equals nationality.
func ExtractNationalityMatches(item EnrichedFixture, nationality string) []roster.Entry {
	out := item.HomeRoster.FilterNationality(nationality)
	return append(out, item.AwayRoster.FilterNationality(nationality)...)
}
