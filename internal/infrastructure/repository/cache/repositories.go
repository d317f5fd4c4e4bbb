package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/fixture"
	"github.com/riskibarqy/matchday/internal/domain/leaguestanding"
	"github.com/riskibarqy/matchday/internal/domain/playerstats"
	"github.com/riskibarqy/matchday/internal/domain/roster"
	basecache "github.com/riskibarqy/matchday/internal/platform/cache"
)

// FixtureSource caches a day's fixtures. The upstream only sees the
// formatted date, so the key does too.
type FixtureSource struct {
	next  fixture.Source
	cache *basecache.Store
}

func NewFixtureSource(next fixture.Source, cache *basecache.Store) *FixtureSource {
	return &FixtureSource{next: next, cache: cache}
}

func (s *FixtureSource) FetchByDate(ctx context.Context, date time.Time) ([]fixture.Fixture, error) {
	key := "fixture:date:" + fixture.FormatDate(date)
	items, err := basecache.Load(ctx, s.cache, key, func(ctx context.Context) ([]fixture.Fixture, error) {
		items, err := s.next.FetchByDate(ctx, date)
		if err != nil {
			return nil, err
		}
		return append([]fixture.Fixture(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]fixture.Fixture(nil), items...), nil
}

type RosterSource struct {
	next  roster.Source
	cache *basecache.Store
}

func NewRosterSource(next roster.Source, cache *basecache.Store) *RosterSource {
	return &RosterSource{next: next, cache: cache}
}

func (s *RosterSource) FetchByTeam(ctx context.Context, teamID int64) (roster.Roster, error) {
	key := "roster:team:" + strconv.FormatInt(teamID, 10)
	item, err := basecache.Load(ctx, s.cache, key, func(ctx context.Context) (roster.Roster, error) {
		return s.next.FetchByTeam(ctx, teamID)
	})
	if err != nil {
		return roster.Roster{}, err
	}
	item.Players = append([]roster.Entry(nil), item.Players...)
	return item, nil
}

type StandingSource struct {
	next  leaguestanding.Source
	cache *basecache.Store
}

func NewStandingSource(next leaguestanding.Source, cache *basecache.Store) *StandingSource {
	return &StandingSource{next: next, cache: cache}
}

func (s *StandingSource) ListBySeason(ctx context.Context, tournamentID, seasonID int64) ([]leaguestanding.Standing, error) {
	key := "standing:season:" + seasonKey(tournamentID, seasonID)
	items, err := basecache.Load(ctx, s.cache, key, func(ctx context.Context) ([]leaguestanding.Standing, error) {
		items, err := s.next.ListBySeason(ctx, tournamentID, seasonID)
		if err != nil {
			return nil, err
		}
		return append([]leaguestanding.Standing(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]leaguestanding.Standing(nil), items...), nil
}

type PlayerStatsSource struct {
	next  playerstats.Source
	cache *basecache.Store
}

func NewPlayerStatsSource(next playerstats.Source, cache *basecache.Store) *PlayerStatsSource {
	return &PlayerStatsSource{next: next, cache: cache}
}

func (s *PlayerStatsSource) ListBySeason(ctx context.Context, tournamentID, seasonID int64) ([]playerstats.Entry, error) {
	key := "playerstats:season:" + seasonKey(tournamentID, seasonID)
	items, err := basecache.Load(ctx, s.cache, key, func(ctx context.Context) ([]playerstats.Entry, error) {
		items, err := s.next.ListBySeason(ctx, tournamentID, seasonID)
		if err != nil {
			return nil, err
		}
		return append([]playerstats.Entry(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]playerstats.Entry(nil), items...), nil
}

func seasonKey(tournamentID, seasonID int64) string {
	return strconv.FormatInt(tournamentID, 10) + ":" + strconv.FormatInt(seasonID, 10)
}
