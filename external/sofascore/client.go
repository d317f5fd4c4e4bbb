package sofascore

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"

	"github.com/riskibarqy/matchday/internal/domain/fixture"
	"github.com/riskibarqy/matchday/internal/domain/leaguestanding"
	"github.com/riskibarqy/matchday/internal/domain/playerstats"
	"github.com/riskibarqy/matchday/internal/domain/roster"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/riskibarqy/matchday/internal/platform/resilience"
	"github.com/riskibarqy/matchday/internal/usecase"
)

const (
	defaultBaseURL      = "https://api.sofascore.com/api/v1"
	defaultImageBaseURL = "https://img.sofascore.com/api/v1"
	statisticsPageSize  = 100
	defaultLoadTimeout  = time.Minute

	endpointEvents     = "scheduled_events"
	endpointPlayers    = "team_players"
	endpointStandings  = "standings"
	endpointStatistics = "statistics"
)

var errTransient = crerr.New("sofascore transient failure")

// Recorder observes every upstream call, including retries.
type Recorder interface {
	ObserveProviderCall(endpoint, outcome string, elapsed time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) ObserveProviderCall(string, string, time.Duration) {}

type ClientConfig struct {
	Transport      Transport
	BaseURL        string
	MaxRetries     int
	RetryBackoff   time.Duration
	LoadTimeout    time.Duration
	RateLimit      float64
	RateBurst      int
	Logger         *logging.Logger
	Recorder       Recorder
	Clock          clockwork.Clock
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	transport    Transport
	baseURL      string
	maxRetries   int
	retryBackoff time.Duration
	loadTimeout  time.Duration
	limiter      *rate.Limiter
	logger       *logging.Logger
	recorder     Recorder
	clock        clockwork.Clock
	breaker      *resilience.CircuitBreaker
	flight       resilience.SingleFlight[[]byte]
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	recorder := cfg.Recorder
	if recorder == nil {
		recorder = noopRecorder{}
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	transport := cfg.Transport
	if transport == nil {
		transport = NewHTTPTransport(nil, 0)
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = time.Second
	}

	loadTimeout := cfg.LoadTimeout
	if loadTimeout <= 0 {
		loadTimeout = defaultLoadTimeout
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &Client{
		transport:    transport,
		baseURL:      baseURL,
		maxRetries:   max(cfg.MaxRetries, 0),
		retryBackoff: backoff,
		loadTimeout:  loadTimeout,
		limiter:      limiter,
		logger:       logger,
		recorder:     recorder,
		clock:        clock,
		breaker:      resilience.NewCircuitBreaker(cfg.CircuitBreaker, clock),
	}
}

// FetchByDate returns the football fixtures scheduled on date's calendar day
// in date's location.
func (c *Client) FetchByDate(ctx context.Context, date time.Time) ([]fixture.Fixture, error) {
	path := "/sport/football/scheduled-events/" + fixture.FormatDate(date)

	var payload eventsEnvelope
	if err := c.doJSON(ctx, endpointEvents, path, &payload); err != nil {
		return nil, fmt.Errorf("fetch scheduled events date=%s: %w", fixture.FormatDate(date), err)
	}
	return mapEvents(payload.Events), nil
}

func (c *Client) FetchByTeam(ctx context.Context, teamID int64) (roster.Roster, error) {
	if teamID <= 0 {
		return roster.Roster{}, fmt.Errorf("%w: team id must be greater than zero", usecase.ErrInvalidInput)
	}

	var payload playersEnvelope
	if err := c.doJSON(ctx, endpointPlayers, fmt.Sprintf("/team/%d/players", teamID), &payload); err != nil {
		return roster.Roster{}, fmt.Errorf("fetch team players team_id=%d: %w", teamID, err)
	}
	return mapRoster(teamID, payload.Players), nil
}

func (c *Client) FetchStandings(ctx context.Context, tournamentID, seasonID int64) ([]leaguestanding.Standing, error) {
	if tournamentID <= 0 || seasonID <= 0 {
		return nil, fmt.Errorf("%w: tournament and season ids must be greater than zero", usecase.ErrInvalidInput)
	}

	path := fmt.Sprintf("/unique-tournament/%d/season/%d/standings/total", tournamentID, seasonID)
	var payload standingsEnvelope
	if err := c.doJSON(ctx, endpointStandings, path, &payload); err != nil {
		return nil, fmt.Errorf("fetch standings tournament_id=%d season_id=%d: %w", tournamentID, seasonID, err)
	}
	return mapStandings(payload.Standings), nil
}

func (c *Client) FetchPlayerStatistics(ctx context.Context, tournamentID, seasonID int64) ([]playerstats.Entry, error) {
	if tournamentID <= 0 || seasonID <= 0 {
		return nil, fmt.Errorf("%w: tournament and season ids must be greater than zero", usecase.ErrInvalidInput)
	}

	path := fmt.Sprintf(
		"/unique-tournament/%d/season/%d/statistics?limit=%d&order=-rating&accumulation=total&fields=%s",
		tournamentID, seasonID, statisticsPageSize, strings.Join(playerstats.Keys, "%2C"),
	)
	var payload statisticsEnvelope
	if err := c.doJSON(ctx, endpointStatistics, path, &payload); err != nil {
		return nil, fmt.Errorf("fetch player statistics tournament_id=%d season_id=%d: %w", tournamentID, seasonID, err)
	}
	return mapStatistics(payload.Results), nil
}

// Standings adapts the client to leaguestanding.Source.
func (c *Client) Standings() leaguestanding.Source {
	return standingSource{client: c}
}

// PlayerStats adapts the client to playerstats.Source.
func (c *Client) PlayerStats() playerstats.Source {
	return playerStatsSource{client: c}
}

type standingSource struct {
	client *Client
}

func (s standingSource) ListBySeason(ctx context.Context, tournamentID, seasonID int64) ([]leaguestanding.Standing, error) {
	return s.client.FetchStandings(ctx, tournamentID, seasonID)
}

type playerStatsSource struct {
	client *Client
}

func (s playerStatsSource) ListBySeason(ctx context.Context, tournamentID, seasonID int64) ([]playerstats.Entry, error) {
	return s.client.FetchPlayerStatistics(ctx, tournamentID, seasonID)
}

func (c *Client) doJSON(ctx context.Context, endpoint, path string, target any) error {
	fullURL := c.baseURL + path
	raw, err, _ := c.flight.Do(fullURL, func() ([]byte, error) {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "sofascore circuit breaker rejected request", "endpoint", endpoint, "state", c.breaker.State())
			c.recorder.ObserveProviderCall(endpoint, "rejected", 0)
			return nil, fmt.Errorf("%w: sport data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}

		// Joined callers share this load, so one caller going away must not cancel it.
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.loadTimeout)
		defer cancel()

		body, reqErr := c.executeRequest(loadCtx, endpoint, fullURL)
		c.breaker.Record(reqErr != nil && isCircuitFailure(reqErr))
		return body, reqErr
	})
	if err != nil {
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, endpoint, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("wait for rate limiter: %w", err)
		}

		start := c.clock.Now()
		status, body, err := c.transport.Get(ctx, fullURL)
		elapsed := c.clock.Since(start)

		switch {
		case err != nil:
			lastErr = crerr.Mark(err, errTransient)
			c.recorder.ObserveProviderCall(endpoint, "error", elapsed)
		case status >= http.StatusOK && status < http.StatusMultipleChoices:
			c.recorder.ObserveProviderCall(endpoint, "ok", elapsed)
			return body, nil
		default:
			c.recorder.ObserveProviderCall(endpoint, strconv.Itoa(status), elapsed)
			lastErr = fmt.Errorf("provider status=%d body=%s", status, abbreviateBody(body))
			if !isRetryableStatus(status) {
				return nil, lastErr
			}
			lastErr = crerr.Mark(lastErr, errTransient)
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * c.retryBackoff
		timer := c.clock.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.Chan():
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "sofascore request failed", "endpoint", endpoint, "url", fullURL, "error", lastErr)
	return nil, lastErr
}

// ImageURLs derives crest and portrait addresses from the image host.
type ImageURLs struct {
	base string
}

func NewImageURLs(base string) ImageURLs {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		base = defaultImageBaseURL
	}
	return ImageURLs{base: base}
}

func (u ImageURLs) Team(teamID int64) string {
	return fmt.Sprintf("%s/team/%d/image", u.base, teamID)
}

func (u ImageURLs) Player(playerID int64) string {
	return fmt.Sprintf("%s/player/%d/image", u.base, playerID)
}

func isCircuitFailure(err error) bool {
	return err != nil && crerr.Is(err, errTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
