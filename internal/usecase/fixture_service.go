package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/matchday/internal/domain/fixture"
	"github.com/riskibarqy/matchday/internal/domain/priority"
	"github.com/riskibarqy/matchday/internal/domain/roster"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

// InternationalFixture is a fixture abroad with the nationality's players
// found in either squad.
type InternationalFixture struct {
	Fixture fixture.Fixture
	Players []roster.Entry
}

type FixtureService struct {
	fixtures fixture.Source
	rosters  roster.Source
	priority priority.Config
	enricher *Enricher
	failOpen failOpen
	clock    clockwork.Clock
	location *time.Location
}

func NewFixtureService(
	fixtures fixture.Source,
	rosters roster.Source,
	cfg priority.Config,
	enricher *Enricher,
	clock clockwork.Clock,
	location *time.Location,
	logger *logging.Logger,
	recorder DegradationRecorder,
) *FixtureService {
	if enricher == nil {
		enricher = NewEnricher(0, logger)
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if location == nil {
		location = time.Local
	}

	return &FixtureService{
		fixtures: fixtures,
		rosters:  rosters,
		priority: cfg,
		enricher: enricher,
		failOpen: newFailOpen(logger, recorder),
		clock:    clock,
		location: location,
	}
}

// Location is the default viewer location.
func (s *FixtureService) Location() *time.Location {
	return s.location
}

// ResolveDay turns optional date and tz inputs into local midnight of the
// requested day. Empty date means today on the service clock, empty tz
// means the default location.
func (s *FixtureService) ResolveDay(date, tz string) (time.Time, error) {
	return ResolveDay(s.clock.Now(), date, tz, s.location)
}

func ResolveDay(now time.Time, date, tz string, fallback *time.Location) (time.Time, error) {
	loc := fallback
	if loc == nil {
		loc = time.Local
	}
	if tz = strings.TrimSpace(tz); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, tz)
		}
		loc = parsed
	}

	if date = strings.TrimSpace(date); date == "" {
		local := now.In(loc)
		return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc), nil
	}

	day, err := time.ParseInLocation(time.DateOnly, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return day, nil
}

// Highlighted returns the day's fixtures involving top teams or the
// highlight tournament.
func (s *FixtureService) Highlighted(ctx context.Context, day time.Time) []fixture.Fixture {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Highlighted")
	defer span.End()

	items := s.failOpen.fixtures(ctx, s.fixtures, day)
	return SelectHighlighted(items, day, s.priority.TopTeamSet(), s.priority.HighlightTournamentID)
}

// Internationals returns the day's priority-tournament fixtures abroad that
// field at least one player of nationality. An empty nationality uses the
// configured one.
func (s *FixtureService) Internationals(ctx context.Context, day time.Time, nationality string) []InternationalFixture {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Internationals")
	defer span.End()

	if nationality = strings.TrimSpace(nationality); nationality == "" {
		nationality = s.priority.Nationality
	}

	items := s.failOpen.fixtures(ctx, s.fixtures, day)
	enriched := s.enricher.Enrich(ctx, items, day, s.priority.TournamentSet(), nationality, s.fetchRoster)

	out := make([]InternationalFixture, 0, len(enriched))
	for _, item := range enriched {
		players := ExtractNationalityMatches(item, nationality)
		if len(players) == 0 {
			continue
		}
		out = append(out, InternationalFixture{Fixture: item.Fixture, Players: players})
	}
	return out
}

func (s *FixtureService) fetchRoster(ctx context.Context, teamID int64) (roster.Roster, error) {
	return s.failOpen.roster(ctx, s.rosters, teamID), nil
}
