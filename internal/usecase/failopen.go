package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/fixture"
	"github.com/riskibarqy/matchday/internal/domain/leaguestanding"
	"github.com/riskibarqy/matchday/internal/domain/playerstats"
	"github.com/riskibarqy/matchday/internal/domain/roster"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

// DegradationRecorder counts provider failures that were absorbed into an
// empty result.
type DegradationRecorder interface {
	RecordDegraded(operation string)
}

type noopDegradationRecorder struct{}

func (noopDegradationRecorder) RecordDegraded(string) {}

const (
	opFetchFixtures    = "fetch_fixtures"
	opFetchRoster      = "fetch_roster"
	opFetchStandings   = "fetch_standings"
	opFetchPlayerStats = "fetch_player_stats"
)

// failOpen turns provider errors into empty results so a single upstream
// outage never blanks the whole dashboard.
type failOpen struct {
	logger   *logging.Logger
	recorder DegradationRecorder
}

func newFailOpen(logger *logging.Logger, recorder DegradationRecorder) failOpen {
	if logger == nil {
		logger = logging.Default()
	}
	if recorder == nil {
		recorder = noopDegradationRecorder{}
	}
	return failOpen{logger: logger, recorder: recorder}
}

func (f failOpen) degrade(ctx context.Context, op string, err error, args ...any) {
	f.recorder.RecordDegraded(op)
	f.logger.WarnContext(ctx, "provider call failed, serving empty result",
		append([]any{"operation", op, "error", err}, args...)...,
	)
}

func (f failOpen) fixtures(ctx context.Context, src fixture.Source, date time.Time) []fixture.Fixture {
	items, err := src.FetchByDate(ctx, date)
	if err != nil {
		f.degrade(ctx, opFetchFixtures, err, "date", fixture.FormatDate(date))
		return []fixture.Fixture{}
	}
	if items == nil {
		return []fixture.Fixture{}
	}
	return items
}

func (f failOpen) roster(ctx context.Context, src roster.Source, teamID int64) roster.Roster {
	item, err := src.FetchByTeam(ctx, teamID)
	if err != nil {
		f.degrade(ctx, opFetchRoster, err, "team_id", teamID)
		return roster.Empty(teamID)
	}
	if item.Players == nil {
		item.Players = []roster.Entry{}
	}
	item.TeamID = teamID
	return item
}

func (f failOpen) standings(ctx context.Context, src leaguestanding.Source, tournamentID, seasonID int64) []leaguestanding.Standing {
	items, err := src.ListBySeason(ctx, tournamentID, seasonID)
	if err != nil {
		f.degrade(ctx, opFetchStandings, err, "tournament_id", tournamentID, "season_id", seasonID)
		return []leaguestanding.Standing{}
	}
	if items == nil {
		return []leaguestanding.Standing{}
	}
	return items
}

func (f failOpen) playerStats(ctx context.Context, src playerstats.Source, tournamentID, seasonID int64) []playerstats.Entry {
	items, err := src.ListBySeason(ctx, tournamentID, seasonID)
	if err != nil {
		f.degrade(ctx, opFetchPlayerStats, err, "tournament_id", tournamentID, "season_id", seasonID)
		return []playerstats.Entry{}
	}
	if items == nil {
		return []playerstats.Entry{}
	}
	return items
}
