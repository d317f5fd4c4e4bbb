package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchday/internal/domain/leaguestanding"
	"github.com/riskibarqy/matchday/internal/domain/priority"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

const DefaultStandingsViewLimit = 5

type StandingService struct {
	source   leaguestanding.Source
	priority priority.Config
	failOpen failOpen
}

func NewStandingService(
	source leaguestanding.Source,
	cfg priority.Config,
	logger *logging.Logger,
	recorder DegradationRecorder,
) *StandingService {
	return &StandingService{
		source:   source,
		priority: cfg,
		failOpen: newFailOpen(logger, recorder),
	}
}

func (s *StandingService) rows(ctx context.Context) []leaguestanding.Standing {
	return s.failOpen.standings(ctx, s.source, s.priority.StandingsTournamentID, s.priority.StandingsSeasonID)
}

// Table returns the league table in provider order.
func (s *StandingService) Table(ctx context.Context, limit int) []leaguestanding.Standing {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.Table")
	defer span.End()

	return limitSlice(s.rows(ctx), limit)
}

func (s *StandingService) TopAttack(ctx context.Context, limit int) []leaguestanding.Standing {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.TopAttack")
	defer span.End()

	return limitSlice(TopByGoalsFor(s.rows(ctx)), limit)
}

func (s *StandingService) TopDefense(ctx context.Context, limit int) []leaguestanding.Standing {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.TopDefense")
	defer span.End()

	return limitSlice(TopByGoalsAgainst(s.rows(ctx)), limit)
}

func (s *StandingService) Compare(ctx context.Context, teamAID, teamBID int64) (Comparison, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.Compare")
	defer span.End()

	if teamAID <= 0 || teamBID <= 0 {
		return Comparison{}, fmt.Errorf("%w: team_a and team_b must be positive ids", ErrInvalidInput)
	}
	return CompareTeams(s.rows(ctx), teamAID, teamBID), nil
}
