package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/riskibarqy/matchday/external/sofascore"
	"github.com/riskibarqy/matchday/internal/config"
	"github.com/riskibarqy/matchday/internal/domain/fixture"
	"github.com/riskibarqy/matchday/internal/domain/leaguestanding"
	"github.com/riskibarqy/matchday/internal/domain/playerstats"
	"github.com/riskibarqy/matchday/internal/domain/roster"
	cacherepo "github.com/riskibarqy/matchday/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/matchday/internal/infrastructure/scheduler"
	"github.com/riskibarqy/matchday/internal/interfaces/httpapi"
	"github.com/riskibarqy/matchday/internal/metrics"
	basecache "github.com/riskibarqy/matchday/internal/platform/cache"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/riskibarqy/matchday/internal/platform/resilience"
	"github.com/riskibarqy/matchday/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	warmupTimeout   = 2 * time.Minute
)

// App holds the long-running parts of the service.
type App struct {
	server    *http.Server
	scheduler *scheduler.Scheduler
	logger    *logging.Logger
}

type sources struct {
	fixtures    fixture.Source
	rosters     roster.Source
	standings   leaguestanding.Source
	playerStats playerstats.Source
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	priorityCfg, err := config.LoadPriority(cfg.PriorityConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load priority config: %w", err)
	}

	clock := clockwork.NewRealClock()
	recorder := metrics.NewRecorder()

	baseTransport := newBaseTransport(cfg)
	providerTransport := baseTransport
	if cfg.SofaScoreRelayURL != "" {
		providerTransport = sofascore.NewRelayTransport(baseTransport, cfg.SofaScoreRelayURL)
	}

	client := sofascore.NewClient(sofascore.ClientConfig{
		Transport:    providerTransport,
		BaseURL:      cfg.SofaScoreBaseURL,
		MaxRetries:   cfg.SofaScoreMaxRetries,
		RetryBackoff: cfg.SofaScoreRetryBackoff,
		LoadTimeout:  providerLoadTimeout(cfg),
		RateLimit:    cfg.SofaScoreRateLimit,
		RateBurst:    cfg.SofaScoreRateBurst,
		Logger:       logger,
		Recorder:     recorder,
		Clock:        clock,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.SofaScoreCircuitEnabled,
			FailureThreshold: cfg.SofaScoreCircuitFailureCount,
			OpenTimeout:      cfg.SofaScoreCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SofaScoreCircuitHalfOpenMaxReq,
		},
	})

	src := sources{
		fixtures:    client,
		rosters:     client,
		standings:   client.Standings(),
		playerStats: client.PlayerStats(),
	}
	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL, basecache.WithClock(clock), basecache.WithObserver(recorder))
		src = sources{
			fixtures:    cacherepo.NewFixtureSource(src.fixtures, store),
			rosters:     cacherepo.NewRosterSource(src.rosters, store),
			standings:   cacherepo.NewStandingSource(src.standings, store),
			playerStats: cacherepo.NewPlayerStatsSource(src.playerStats, store),
		}
	}

	fixtureSvc := usecase.NewFixtureService(
		src.fixtures,
		src.rosters,
		priorityCfg,
		usecase.NewEnricher(cfg.EnrichWorkers, logger),
		clock,
		cfg.Timezone,
		logger,
		recorder,
	)
	standingSvc := usecase.NewStandingService(src.standings, priorityCfg, logger, recorder)
	playerStatsSvc := usecase.NewPlayerStatsService(src.playerStats, priorityCfg, logger, recorder)

	var relay *httpapi.Relay
	if cfg.RelayEnabled {
		relay = httpapi.NewHTTPRelay(cfg.RelayAllowedHosts, cfg.SofaScoreTimeout)
		if !relayHostAllowed(cfg.SofaScoreBaseURL, cfg.RelayAllowedHosts) {
			logger.Warn("relay allow-list does not include the provider host", "base_url", redactURL(cfg.SofaScoreBaseURL))
		}
	}

	handler := httpapi.NewHandler(
		fixtureSvc,
		standingSvc,
		playerStatsSvc,
		priorityCfg,
		sofascore.NewImageURLs(cfg.SofaScoreImageBaseURL),
		relay,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		MetricsHandler:     recorder.Handler(),
		Observer:           recorder,
	})

	app := &App{
		server: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           router,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      cfg.WriteTimeout,
		},
		logger: logger,
	}

	if cfg.WarmupEnabled {
		sched, err := scheduler.New(scheduler.Options{Clock: clock, Location: cfg.Timezone, Logger: logger})
		if err != nil {
			return nil, fmt.Errorf("create scheduler: %w", err)
		}
		warmup := usecase.NewWarmupService(
			src.fixtures,
			src.rosters,
			src.standings,
			src.playerStats,
			priorityCfg,
			clock,
			cfg.Timezone,
			logger,
		)
		if err := scheduler.RegisterWarmup(sched, cfg.WarmupCron, warmupTimeout, warmup, recorder); err != nil {
			_ = sched.Stop()
			return nil, fmt.Errorf("register warmup job: %w", err)
		}
		app.scheduler = sched
	}

	logger.Info("app configured",
		"provider_base_url", redactURL(cfg.SofaScoreBaseURL),
		"provider_transport", cfg.SofaScoreTransport,
		"provider_relay_url", redactURL(cfg.SofaScoreRelayURL),
		"cache_enabled", cfg.CacheEnabled,
		"cache_ttl", cfg.CacheTTL.String(),
		"relay_enabled", cfg.RelayEnabled,
		"warmup_enabled", cfg.WarmupEnabled,
		"timezone", cfg.Timezone.String(),
		"highlight_tournament_id", priorityCfg.HighlightTournamentID,
		"nationality", priorityCfg.Nationality,
	)

	return app, nil
}

func newBaseTransport(cfg config.Config) sofascore.Transport {
	if cfg.SofaScoreTransport == config.TransportFastHTTP {
		return sofascore.NewFastHTTPTransport(cfg.SofaScoreTimeout)
	}
	return sofascore.NewHTTPTransport(nil, cfg.SofaScoreTimeout)
}

func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run serves until ctx is cancelled, then drains the server and stops the
// scheduler.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("http server starting", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if a.scheduler != nil {
		a.scheduler.Start()
	}

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		if a.scheduler != nil {
			if err := a.scheduler.Stop(); err != nil {
				errs = append(errs, fmt.Errorf("stop scheduler: %w", err))
			}
		}
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
		}
		a.logger.Info("http server stopped")
		return errors.Join(errs...)
	})

	return g.Wait()
}

// providerLoadTimeout bounds one shared upstream load: every attempt plus the
// linear backoff between attempts.
func providerLoadTimeout(cfg config.Config) time.Duration {
	attempts := max(cfg.SofaScoreMaxRetries, 0) + 1
	backoff := time.Duration(attempts*(attempts-1)/2) * cfg.SofaScoreRetryBackoff
	return time.Duration(attempts)*cfg.SofaScoreTimeout + backoff
}
