package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/matchday/external/sofascore"
	"github.com/riskibarqy/matchday/internal/domain/fixture"
	"github.com/riskibarqy/matchday/internal/domain/leaguestanding"
	"github.com/riskibarqy/matchday/internal/domain/player"
	"github.com/riskibarqy/matchday/internal/domain/playerstats"
	"github.com/riskibarqy/matchday/internal/domain/priority"
	"github.com/riskibarqy/matchday/internal/domain/roster"
	"github.com/riskibarqy/matchday/internal/domain/team"
	fixturemock "github.com/riskibarqy/matchday/internal/mocks/domain/fixture"
	leaguestandingmock "github.com/riskibarqy/matchday/internal/mocks/domain/leaguestanding"
	playerstatsmock "github.com/riskibarqy/matchday/internal/mocks/domain/playerstats"
	rostermock "github.com/riskibarqy/matchday/internal/mocks/domain/roster"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/riskibarqy/matchday/internal/usecase"
)

var rabat = time.FixedZone("Africa/Casablanca", 60*60)

type testSources struct {
	fixtures    *fixturemock.Source
	rosters     *rostermock.Source
	standings   *leaguestandingmock.Source
	playerStats *playerstatsmock.Source
}

type stubTransport struct {
	status int
	body   []byte
	err    error
	urls   []string
}

func (s *stubTransport) Get(_ context.Context, rawURL string) (int, []byte, error) {
	s.urls = append(s.urls, rawURL)
	return s.status, s.body, s.err
}

func testPriorityConfig() priority.Config {
	return priority.Config{
		HighlightTournamentID: 937,
		TopTeamIDs:            []int64{2829},
		Tournaments:           []priority.Tournament{{ID: 17, Name: "Premier League", Rank: 1}},
		Nationality:           "Morocco",
		Language:              "fr",
		StandingsTournamentID: 937,
		StandingsSeasonID:     61419,
	}
}

func newTestRouter(t *testing.T, relay *Relay) (http.Handler, testSources) {
	t.Helper()

	src := testSources{
		fixtures:    fixturemock.NewSource(t),
		rosters:     rostermock.NewSource(t),
		standings:   leaguestandingmock.NewSource(t),
		playerStats: playerstatsmock.NewSource(t),
	}
	cfg := testPriorityConfig()
	logger := logging.NewNop()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 10, 19, 12, 0, 0, 0, rabat))

	handler := NewHandler(
		usecase.NewFixtureService(src.fixtures, src.rosters, cfg, usecase.NewEnricher(2, logger), clock, rabat, logger, nil),
		usecase.NewStandingService(src.standings, cfg, logger, nil),
		usecase.NewPlayerStatsService(src.playerStats, cfg, logger, nil),
		cfg,
		sofascore.NewImageURLs("https://img.example.com/api/v1"),
		relay,
		logger,
	)
	return NewRouter(handler, logger, RouterConfig{CORSAllowedOrigins: []string{"*"}}), src
}

func doGet(t *testing.T, router http.Handler, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body %q: %v", rec.Body.String(), err)
	}
	return rec, body
}

func standingRow(id int64, goalsFor, goalsAgainst int) leaguestanding.Standing {
	return leaguestanding.Standing{
		ID:           id,
		Team:         team.Team{ID: id, Name: "Team"},
		Position:     int(id),
		GoalsFor:     goalsFor,
		GoalsAgainst: goalsAgainst,
	}
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec, body := doGet(t, router, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data, _ := body["data"].(map[string]any)
	if data["status"] != "ok" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestHighlightedFixtures_RendersCards(t *testing.T) {
	router, src := newTestRouter(t, nil)

	kickoff := time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC)
	items := []fixture.Fixture{
		{
			ID:             11,
			StartTimestamp: kickoff.Unix(),
			HomeTeam:       team.Team{ID: 2829, Name: "Real Madrid", NameTranslations: map[string]string{"fr": "Réal Madrid"}},
			AwayTeam:       team.Team{ID: 2817, Name: "Barcelona"},
			Status:         fixture.Status{Type: fixture.StatusNotStarted},
			Tournament:     fixture.Tournament{UniqueTournament: fixture.UniqueTournament{ID: 8, Name: "LaLiga"}},
			Round:          9,
		},
		{
			ID:             12,
			StartTimestamp: kickoff.Unix(),
			HomeTeam:       team.Team{ID: 1, Name: "Nobody"},
			AwayTeam:       team.Team{ID: 2, Name: "Else"},
			Tournament:     fixture.Tournament{UniqueTournament: fixture.UniqueTournament{ID: 99}},
		},
	}
	src.fixtures.On("FetchByDate", mock.Anything, mock.Anything).Return(items, nil).Once()

	rec, body := doGet(t, router, "/v1/fixtures/highlighted?date=2026-10-19&tz=UTC")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	data := body["data"].(map[string]any)
	if data["date"] != "2026-10-19" || data["timezone"] != "UTC" {
		t.Fatalf("unexpected day header %v", data)
	}
	cards := data["fixtures"].([]any)
	if len(cards) != 1 {
		t.Fatalf("expected one highlighted fixture, got %d", len(cards))
	}
	card := cards[0].(map[string]any)
	if card["kickoff"] != "20:00" || card["statusLabel"] != "Scheduled" || card["competition"] != "LaLiga - Round 9" {
		t.Fatalf("unexpected card %v", card)
	}
	if _, ok := card["score"]; ok {
		t.Fatalf("did not expect a score on a scheduled fixture")
	}
	home := card["homeTeam"].(map[string]any)
	if home["name"] != "Réal Madrid" || home["logoUrl"] != "https://img.example.com/api/v1/team/2829/image" {
		t.Fatalf("unexpected home team %v", home)
	}
}

func TestHighlightedFixtures_InvalidQuery(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	for _, target := range []string{
		"/v1/fixtures/highlighted?date=19-10-2026",
		"/v1/fixtures/highlighted?tz=Mars/Olympus",
	} {
		rec, body := doGet(t, router, target)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rec.Code)
		}
		errObj := body["error"].(map[string]any)
		if errObj["status"] != "INVALID_ARGUMENT" {
			t.Fatalf("%s: unexpected error %v", target, errObj)
		}
	}
}

func TestHighlightedFixtures_UpstreamFailureIsEmpty(t *testing.T) {
	router, src := newTestRouter(t, nil)
	src.fixtures.On("FetchByDate", mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()

	rec, body := doGet(t, router, "/v1/fixtures/highlighted")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cards := body["data"].(map[string]any)["fixtures"].([]any)
	if len(cards) != 0 {
		t.Fatalf("expected no fixtures, got %v", cards)
	}
}

func TestInternationalFixtures_ListsMatchingPlayers(t *testing.T) {
	router, src := newTestRouter(t, nil)

	kickoff := time.Date(2026, 10, 19, 19, 0, 0, 0, time.UTC)
	items := []fixture.Fixture{{
		ID:             21,
		StartTimestamp: kickoff.Unix(),
		HomeTeam:       team.Team{ID: 42, Name: "Arsenal", Country: "England"},
		AwayTeam:       team.Team{ID: 44, Name: "Chelsea", Country: "England"},
		Status:         fixture.Status{Type: fixture.StatusFinished},
		HomeScore:      &fixture.Score{Display: 2},
		AwayScore:      &fixture.Score{Display: 1},
		Tournament:     fixture.Tournament{UniqueTournament: fixture.UniqueTournament{ID: 17, Name: "Premier League"}},
		Round:          8,
	}}
	jersey := "19"
	src.fixtures.On("FetchByDate", mock.Anything, mock.Anything).Return(items, nil).Once()
	src.rosters.On("FetchByTeam", mock.Anything, int64(42)).Return(roster.Roster{TeamID: 42, Players: []roster.Entry{
		{Player: player.Player{ID: 7, Name: "Hakim", Country: "Morocco", Position: player.PositionMidfielder, JerseyNumber: &jersey}},
		{Player: player.Player{ID: 8, Name: "Bukayo", Country: "England"}},
	}}, nil).Once()
	src.rosters.On("FetchByTeam", mock.Anything, int64(44)).Return(roster.Empty(44), nil).Once()

	rec, body := doGet(t, router, "/v1/fixtures/internationals?date=2026-10-19&tz=UTC")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	data := body["data"].(map[string]any)
	if data["nationality"] != "Morocco" {
		t.Fatalf("expected configured nationality, got %v", data["nationality"])
	}
	fixtures := data["fixtures"].([]any)
	if len(fixtures) != 1 {
		t.Fatalf("expected one fixture, got %d", len(fixtures))
	}
	entry := fixtures[0].(map[string]any)
	match := entry["match"].(map[string]any)
	if match["score"] != "2 - 1" || match["statusLabel"] != "Finished" {
		t.Fatalf("unexpected match card %v", match)
	}
	players := entry["players"].([]any)
	if len(players) != 1 {
		t.Fatalf("expected one player, got %v", players)
	}
	p := players[0].(map[string]any)
	if p["jerseyNumber"] != "19" || p["positionLabel"] != "Midfielder" || p["photoUrl"] != "https://img.example.com/api/v1/player/7/image" {
		t.Fatalf("unexpected player card %v", p)
	}
}

func TestStandings_AttackDefenseAndTable(t *testing.T) {
	router, src := newTestRouter(t, nil)

	rows := []leaguestanding.Standing{
		standingRow(1, 10, 3),
		standingRow(2, 18, 9),
		standingRow(3, 7, 2),
	}
	src.standings.On("ListBySeason", mock.Anything, int64(937), int64(61419)).Return(rows, nil).Times(3)

	_, body := doGet(t, router, "/v1/standings/attack?limit=2")
	attack := body["data"].([]any)
	if len(attack) != 2 || attack[0].(map[string]any)["goalsFor"] != float64(18) {
		t.Fatalf("unexpected attack view %v", attack)
	}

	_, body = doGet(t, router, "/v1/standings/defense")
	defense := body["data"].([]any)
	if len(defense) != 3 || defense[0].(map[string]any)["goalsAgainst"] != float64(2) {
		t.Fatalf("unexpected defense view %v", defense)
	}

	_, body = doGet(t, router, "/v1/standings")
	table := body["data"].([]any)
	if len(table) != 3 || table[1].(map[string]any)["goalDifference"] != float64(9) {
		t.Fatalf("unexpected table %v", table)
	}
}

func TestStandings_InvalidLimit(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	for _, target := range []string{"/v1/standings?limit=abc", "/v1/standings/attack?limit=-1", "/v1/standings/defense?limit=1000"} {
		rec, _ := doGet(t, router, target)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestCompareTeams(t *testing.T) {
	router, src := newTestRouter(t, nil)
	src.standings.On("ListBySeason", mock.Anything, int64(937), int64(61419)).
		Return([]leaguestanding.Standing{standingRow(1, 10, 3), standingRow(2, 18, 9)}, nil).Once()

	rec, body := doGet(t, router, "/v1/standings/compare?team_a=2&team_b=404")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := body["data"].(map[string]any)
	if data["teamA"].(map[string]any)["points"] != float64(0) {
		t.Fatalf("unexpected team A %v", data["teamA"])
	}
	if data["teamB"] != nil {
		t.Fatalf("expected missing team B to be null, got %v", data["teamB"])
	}

	rec, _ = doGet(t, router, "/v1/standings/compare?team_a=2")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without team_b, got %d", rec.Code)
	}
}

func TestListTopPlayers(t *testing.T) {
	router, src := newTestRouter(t, nil)
	entries := []playerstats.Entry{
		{Player: player.Player{ID: 1, Name: "A"}, Stats: map[string]float64{"goals": 3, "rating": 7.9}},
		{Player: player.Player{ID: 2, Name: "B"}, Stats: map[string]float64{"goals": 9}},
		{Player: player.Player{ID: 3, Name: "C"}},
	}
	src.playerStats.On("ListBySeason", mock.Anything, int64(937), int64(61419)).Return(entries, nil).Twice()

	_, body := doGet(t, router, "/v1/players/top")
	data := body["data"].(map[string]any)
	if data["stat"] != "goals" {
		t.Fatalf("expected default goals stat, got %v", data["stat"])
	}
	ranked := data["entries"].([]any)
	first := ranked[0].(map[string]any)
	if first["rank"] != float64(1) || first["value"] != float64(9) {
		t.Fatalf("unexpected first entry %v", first)
	}

	_, body = doGet(t, router, "/v1/players/top?stat=rating&limit=1")
	ranked = body["data"].(map[string]any)["entries"].([]any)
	if len(ranked) != 1 || ranked[0].(map[string]any)["player"].(map[string]any)["id"] != float64(1) {
		t.Fatalf("unexpected rating leaderboard %v", ranked)
	}

	rec, _ := doGet(t, router, "/v1/players/top?stat=assists")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown stat, got %d", rec.Code)
	}
}

func TestGetPriorityConfig(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	_, body := doGet(t, router, "/v1/config/priority")
	data := body["data"].(map[string]any)
	if data["highlightTournamentId"] != float64(937) || data["nationality"] != "Morocco" {
		t.Fatalf("unexpected priority config %v", data)
	}
	if stats := data["stats"].([]any); len(stats) != len(playerstats.Keys) {
		t.Fatalf("unexpected stats %v", stats)
	}
}

func TestProxy(t *testing.T) {
	upstream := &stubTransport{status: http.StatusOK, body: []byte(`{"events":[]}`)}
	router, _ := newTestRouter(t, NewRelay(upstream, []string{"api.sofascore.com"}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/proxy?url=https%3A%2F%2Fapi.sofascore.com%2Fapi%2Fv1%2Fteam%2F1%2Fplayers", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != `{"events":[]}` {
		t.Fatalf("unexpected relay response %d %q", rec.Code, rec.Body.String())
	}
	if len(upstream.urls) != 1 || upstream.urls[0] != "https://api.sofascore.com/api/v1/team/1/players" {
		t.Fatalf("unexpected upstream calls %v", upstream.urls)
	}

	upstream.status = http.StatusForbidden
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/proxy?url=https%3A%2F%2Fapi.sofascore.com%2Fx", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "{}" {
		t.Fatalf("expected empty object on upstream failure, got %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/proxy?url=https%3A%2F%2Fevil.example.com%2F", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign host, got %d", rec.Code)
	}
}

func TestProxy_NotMountedWithoutRelay(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/proxy?url=https%3A%2F%2Fapi.sofascore.com%2F", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestProxy_RechecksAllowListOnRedirect(t *testing.T) {
	var internalHits int
	internal := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		internalHits++
		_, _ = w.Write([]byte(`{"secret":"internal-only"}`))
	}))
	defer internal.Close()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/moved":
			http.Redirect(w, r, "/events", http.StatusFound)
		case "/events":
			_, _ = w.Write([]byte(`{"events":[]}`))
		default:
			target := strings.Replace(internal.URL, "127.0.0.1", "localhost", 1) + "/admin"
			http.Redirect(w, r, target, http.StatusFound)
		}
	}))
	defer upstream.Close()

	router, _ := newTestRouter(t, NewHTTPRelay([]string{"127.0.0.1"}, 5*time.Second))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/proxy?url="+url.QueryEscape(upstream.URL+"/moved"), nil))
	if rec.Code != http.StatusOK || rec.Body.String() != `{"events":[]}` {
		t.Fatalf("expected same-host redirect to be followed, got %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/proxy?url="+url.QueryEscape(upstream.URL+"/leak"), nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for redirect off the allow-list, got %d %q", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "internal-only") || internalHits != 0 {
		t.Fatalf("redirect target was reached: hits=%d body=%q", internalHits, rec.Body.String())
	}
}
