package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/matchday/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Timezone.String() != "Africa/Casablanca" {
		t.Fatalf("unexpected default timezone %s", cfg.Timezone)
	}
	if cfg.SofaScoreTransport != TransportHTTP {
		t.Fatalf("unexpected transport %q", cfg.SofaScoreTransport)
	}
	if cfg.EnrichWorkers != 8 || cfg.CacheTTL != 60*time.Second {
		t.Fatalf("unexpected defaults: workers=%d ttl=%s", cfg.EnrichWorkers, cfg.CacheTTL)
	}
	if len(cfg.RelayAllowedHosts) != 2 {
		t.Fatalf("unexpected relay hosts %v", cfg.RelayAllowedHosts)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level %v", cfg.LogLevel)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `x-other=1, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_RejectsUnknownTransportAndTimezone(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SOFASCORE_TRANSPORT", "grpc")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown transport")
	}

	t.Setenv("SOFASCORE_TRANSPORT", TransportFastHTTP)
	t.Setenv("APP_TIMEZONE", "Nowhere/Land")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown timezone")
	}
}

func TestLoad_SofaScoreCircuitValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SOFASCORE_CIRCUIT_FAILURE_COUNT", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero failure count")
	}

	t.Setenv("SOFASCORE_CIRCUIT_ENABLED", "false")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("disabled circuit should skip validation: %v", err)
	}
	if cfg.SofaScoreCircuitEnabled {
		t.Fatalf("expected circuit disabled")
	}
}

func TestLoad_SofaScoreCircuitDefaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SofaScoreCircuitFailureCount != 5 || cfg.SofaScoreCircuitOpenTimeout != 15*time.Second || cfg.SofaScoreCircuitHalfOpenMaxReq != 2 {
		t.Fatalf("unexpected circuit defaults: %+v", cfg)
	}
}

func TestLoadPriority_EmbeddedDefault(t *testing.T) {
	cfg, err := LoadPriority("")
	if err != nil {
		t.Fatalf("load default priority: %v", err)
	}
	if cfg.HighlightTournamentID != 937 || cfg.Nationality != "Morocco" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if _, ok := cfg.TopTeamSet()[2829]; !ok {
		t.Fatalf("expected Real Madrid among top teams")
	}
	if ranked := cfg.RankedTournaments(); ranked[0].ID != 937 {
		t.Fatalf("expected Botola first, got %+v", ranked[0])
	}
}

func TestLoadPriority_FileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "priority.yaml")
	content := []byte(`
highlight_tournament_id: 17
nationality: Senegal
standings:
  season_id: 52186
tournaments:
  - { id: 17, name: Premier League, rank: 1 }
top_teams: [44]
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write priority file: %v", err)
	}

	cfg, err := LoadPriority(path)
	if err != nil {
		t.Fatalf("load priority: %v", err)
	}
	if cfg.Nationality != "Senegal" || cfg.StandingsTournamentID != 17 || cfg.Language != "en" {
		t.Fatalf("unexpected priority config: %+v", cfg)
	}
}

func TestParsePriority_Invalid(t *testing.T) {
	if _, err := ParsePriority([]byte("highlight_tournament_id: 0\n")); err == nil {
		t.Fatalf("expected validation error")
	}
	if _, err := ParsePriority([]byte("tournaments: [")); err == nil {
		t.Fatalf("expected decode error")
	}
}
