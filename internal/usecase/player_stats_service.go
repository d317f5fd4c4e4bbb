package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/matchday/internal/domain/playerstats"
	"github.com/riskibarqy/matchday/internal/domain/priority"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

type PlayerStatsService struct {
	source   playerstats.Source
	priority priority.Config
	failOpen failOpen
}

func NewPlayerStatsService(
	source playerstats.Source,
	cfg priority.Config,
	logger *logging.Logger,
	recorder DegradationRecorder,
) *PlayerStatsService {
	return &PlayerStatsService{
		source:   source,
		priority: cfg,
		failOpen: newFailOpen(logger, recorder),
	}
}

// Top ranks the configured season's players by statKey. The season set is
// fetched once per cache window, so switching keys does not refetch.
func (s *PlayerStatsService) Top(ctx context.Context, statKey string, limit int) ([]playerstats.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.Top")
	defer span.End()

	statKey = strings.TrimSpace(statKey)
	if statKey == "" {
		statKey = playerstats.KeyGoals
	}
	if !playerstats.IsKnownKey(statKey) {
		return nil, fmt.Errorf("%w: unsupported stat %q", ErrInvalidInput, statKey)
	}

	items := s.failOpen.playerStats(ctx, s.source, s.priority.StandingsTournamentID, s.priority.StandingsSeasonID)
	return TopPlayers(items, statKey, limit), nil
}
