package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sourcegraph/conc/iter"
	"golang.org/x/sync/errgroup"

	"github.com/riskibarqy/matchday/internal/domain/fixture"
	"github.com/riskibarqy/matchday/internal/domain/leaguestanding"
	"github.com/riskibarqy/matchday/internal/domain/playerstats"
	"github.com/riskibarqy/matchday/internal/domain/priority"
	"github.com/riskibarqy/matchday/internal/domain/roster"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

// WarmupReport counts what one warm-up pass loaded into the caches.
type WarmupReport struct {
	Fixtures     int
	Rosters      int
	RosterErrors int
	Standings    int
	PlayerStats  int
}

// WarmupService prefetches today's data through the cached sources so the
// first dashboard request of a window is served from memory.
type WarmupService struct {
	fixtures    fixture.Source
	rosters     roster.Source
	standings   leaguestanding.Source
	playerStats playerstats.Source
	priority    priority.Config
	clock       clockwork.Clock
	location    *time.Location
	logger      *logging.Logger
}

func NewWarmupService(
	fixtures fixture.Source,
	rosters roster.Source,
	standings leaguestanding.Source,
	playerStats playerstats.Source,
	cfg priority.Config,
	clock clockwork.Clock,
	location *time.Location,
	logger *logging.Logger,
) *WarmupService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &WarmupService{
		fixtures:    fixtures,
		rosters:     rosters,
		standings:   standings,
		playerStats: playerStats,
		priority:    cfg,
		clock:       clock,
		location:    location,
		logger:      logger,
	}
}

// Run loads today's fixtures with the rosters of enrichment candidates, the
// standings table and the season player statistics. Fixture, standings and
// stats failures fail the pass; roster failures are only counted.
func (s *WarmupService) Run(ctx context.Context) (WarmupReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WarmupService.Run")
	defer span.End()

	day, err := ResolveDay(s.clock.Now(), "", "", s.location)
	if err != nil {
		return WarmupReport{}, err
	}

	var report WarmupReport
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := s.fixtures.FetchByDate(gctx, day)
		if err != nil {
			return fmt.Errorf("warm fixtures %s: %w", fixture.FormatDate(day), err)
		}
		report.Fixtures = len(items)

		loaded, failed := s.warmRosters(gctx, candidateTeamIDs(items, day, s.priority))
		report.Rosters = loaded
		report.RosterErrors = failed
		return nil
	})
	g.Go(func() error {
		rows, err := s.standings.ListBySeason(gctx, s.priority.StandingsTournamentID, s.priority.StandingsSeasonID)
		if err != nil {
			return fmt.Errorf("warm standings: %w", err)
		}
		report.Standings = len(rows)
		return nil
	})
	g.Go(func() error {
		entries, err := s.playerStats.ListBySeason(gctx, s.priority.StandingsTournamentID, s.priority.StandingsSeasonID)
		if err != nil {
			return fmt.Errorf("warm player stats: %w", err)
		}
		report.PlayerStats = len(entries)
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return report, ctx.Err()
		}
		s.logger.WarnContext(ctx, "cache warmup incomplete", "date", fixture.FormatDate(day), "error", err)
		return report, fmt.Errorf("%w: %v", ErrDependencyUnavailable, err)
	}

	s.logger.InfoContext(ctx, "cache warmup done",
		"date", fixture.FormatDate(day),
		"fixtures", report.Fixtures,
		"rosters", report.Rosters,
		"roster_errors", report.RosterErrors,
		"standings", report.Standings,
		"player_stats", report.PlayerStats,
	)
	return report, nil
}

func (s *WarmupService) warmRosters(ctx context.Context, teamIDs []int64) (int, int) {
	var failed atomic.Int64
	iter.ForEach(teamIDs, func(teamID *int64) {
		if _, err := s.rosters.FetchByTeam(ctx, *teamID); err != nil {
			failed.Add(1)
			s.logger.DebugContext(ctx, "roster warmup failed", "team_id", *teamID, "error", err)
		}
	})
	n := int(failed.Load())
	return len(teamIDs) - n, n
}

// candidateTeamIDs lists both sides of every enrichment candidate once, in
// fixture order.
func candidateTeamIDs(items []fixture.Fixture, day time.Time, cfg priority.Config) []int64 {
	candidates := Candidates(items, day, cfg.TournamentSet(), cfg.Nationality)
	seen := make(map[int64]struct{}, len(candidates)*2)
	out := make([]int64, 0, len(candidates)*2)
	for _, item := range candidates {
		for _, id := range []int64{item.HomeTeam.ID, item.AwayTeam.ID} {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
