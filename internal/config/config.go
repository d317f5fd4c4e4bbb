package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/riskibarqy/matchday/internal/platform/resilience"
)

const (
	TransportHTTP     = "http"
	TransportFastHTTP = "fasthttp"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                         string
	ServiceName                    string
	ServiceVersion                 string
	HTTPAddr                       string
	ReadTimeout                    time.Duration
	WriteTimeout                   time.Duration
	LogLevel                       logging.Level
	Timezone                       *time.Location
	CORSAllowedOrigins             []string
	CacheEnabled                   bool
	CacheTTL                       time.Duration
	SofaScoreBaseURL               string
	SofaScoreImageBaseURL          string
	SofaScoreTransport             string
	SofaScoreRelayURL              string
	SofaScoreTimeout               time.Duration
	SofaScoreMaxRetries            int
	SofaScoreRetryBackoff          time.Duration
	SofaScoreRateLimit             float64
	SofaScoreRateBurst             int
	SofaScoreCircuitEnabled        bool
	SofaScoreCircuitFailureCount   int
	SofaScoreCircuitOpenTimeout    time.Duration
	SofaScoreCircuitHalfOpenMaxReq int
	RelayEnabled                   bool
	RelayAllowedHosts              []string
	EnrichWorkers                  int
	WarmupEnabled                  bool
	WarmupCron                     string
	PriorityConfigPath             string
	PprofEnabled                   bool
	PprofAddr                      string
	UptraceEnabled                 bool
	UptraceDSN                     string
	UptraceLogsEnabled             bool
	PyroscopeEnabled               bool
	PyroscopeServerAddress         string
	PyroscopeAppName               string
	PyroscopeAuthToken             string
	PyroscopeBasicAuthUser         string
	PyroscopeBasicAuthPassword     string
	PyroscopeUploadRate            time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	timezone, err := time.LoadLocation(strings.TrimSpace(getEnv("APP_TIMEZONE", "Africa/Casablanca")))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_TIMEZONE: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	sofaTransport := strings.ToLower(strings.TrimSpace(getEnv("SOFASCORE_TRANSPORT", TransportHTTP)))
	if sofaTransport != TransportHTTP && sofaTransport != TransportFastHTTP {
		return Config{}, fmt.Errorf("invalid SOFASCORE_TRANSPORT %q: valid values are %s, %s", sofaTransport, TransportHTTP, TransportFastHTTP)
	}
	sofaTimeout, err := time.ParseDuration(getEnv("SOFASCORE_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SOFASCORE_TIMEOUT: %w", err)
	}
	if sofaTimeout <= 0 {
		return Config{}, fmt.Errorf("SOFASCORE_TIMEOUT must be > 0")
	}
	sofaMaxRetries, err := getEnvAsInt("SOFASCORE_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOFASCORE_MAX_RETRIES: %w", err)
	}
	if sofaMaxRetries < 0 {
		return Config{}, fmt.Errorf("SOFASCORE_MAX_RETRIES must be >= 0")
	}
	sofaRetryBackoff, err := time.ParseDuration(getEnv("SOFASCORE_RETRY_BACKOFF", "1s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SOFASCORE_RETRY_BACKOFF: %w", err)
	}
	sofaRateLimit, err := strconv.ParseFloat(getEnv("SOFASCORE_RATE_LIMIT", "10"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOFASCORE_RATE_LIMIT: %w", err)
	}
	if sofaRateLimit < 0 {
		return Config{}, fmt.Errorf("SOFASCORE_RATE_LIMIT must be >= 0")
	}
	sofaRateBurst, err := getEnvAsInt("SOFASCORE_RATE_BURST", 20)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOFASCORE_RATE_BURST: %w", err)
	}
	sofaCircuitEnabled, err := strconv.ParseBool(getEnv("SOFASCORE_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SOFASCORE_CIRCUIT_ENABLED: %w", err)
	}
	sofaCircuitFailureCount, err := getEnvAsInt("SOFASCORE_CIRCUIT_FAILURE_COUNT", resilience.DefaultFailureThreshold)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOFASCORE_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	sofaCircuitOpenTimeout, err := time.ParseDuration(getEnv("SOFASCORE_CIRCUIT_OPEN_TIMEOUT", resilience.DefaultOpenTimeout.String()))
	if err != nil {
		return Config{}, fmt.Errorf("parse SOFASCORE_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	sofaCircuitHalfOpenMaxReq, err := getEnvAsInt("SOFASCORE_CIRCUIT_HALF_OPEN_MAX_REQ", resilience.DefaultHalfOpenMaxReq)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOFASCORE_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	circuit := resilience.CircuitBreakerConfig{
		Enabled:          sofaCircuitEnabled,
		FailureThreshold: sofaCircuitFailureCount,
		OpenTimeout:      sofaCircuitOpenTimeout,
		HalfOpenMaxReq:   sofaCircuitHalfOpenMaxReq,
	}
	if err := circuit.Validate(); err != nil {
		return Config{}, fmt.Errorf("SOFASCORE_CIRCUIT_*: %w", err)
	}

	relayEnabled, err := strconv.ParseBool(getEnv("RELAY_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RELAY_ENABLED: %w", err)
	}
	relayAllowedHosts := splitCSV(getEnv("RELAY_ALLOWED_HOSTS", "api.sofascore.com,img.sofascore.com"))
	if relayEnabled && len(relayAllowedHosts) == 0 {
		return Config{}, fmt.Errorf("RELAY_ALLOWED_HOSTS cannot be empty when RELAY_ENABLED=true")
	}

	enrichWorkers, err := getEnvAsInt("ENRICH_WORKERS", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse ENRICH_WORKERS: %w", err)
	}
	if enrichWorkers < 1 {
		return Config{}, fmt.Errorf("ENRICH_WORKERS must be >= 1")
	}

	warmupEnabled, err := strconv.ParseBool(getEnv("WARMUP_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WARMUP_ENABLED: %w", err)
	}
	warmupCron := strings.TrimSpace(getEnv("WARMUP_CRON", "*/10 * * * *"))
	if warmupEnabled && warmupCron == "" {
		return Config{}, fmt.Errorf("WARMUP_CRON is required when WARMUP_ENABLED=true")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:                         appEnv,
		ServiceName:                    getEnv("APP_SERVICE_NAME", "matchday-api"),
		ServiceVersion:                 getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                       getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                    readTimeout,
		WriteTimeout:                   writeTimeout,
		LogLevel:                       logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		Timezone:                       timezone,
		CORSAllowedOrigins:             splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		CacheEnabled:                   cacheEnabled,
		CacheTTL:                       cacheTTL,
		SofaScoreBaseURL:               strings.TrimSpace(getEnv("SOFASCORE_BASE_URL", "https://api.sofascore.com/api/v1")),
		SofaScoreImageBaseURL:          strings.TrimSpace(getEnv("SOFASCORE_IMAGE_BASE_URL", "https://img.sofascore.com/api/v1")),
		SofaScoreTransport:             sofaTransport,
		SofaScoreRelayURL:              strings.TrimSpace(getEnv("SOFASCORE_RELAY_URL", "")),
		SofaScoreTimeout:               sofaTimeout,
		SofaScoreMaxRetries:            sofaMaxRetries,
		SofaScoreRetryBackoff:          sofaRetryBackoff,
		SofaScoreRateLimit:             sofaRateLimit,
		SofaScoreRateBurst:             sofaRateBurst,
		SofaScoreCircuitEnabled:        sofaCircuitEnabled,
		SofaScoreCircuitFailureCount:   sofaCircuitFailureCount,
		SofaScoreCircuitOpenTimeout:    sofaCircuitOpenTimeout,
		SofaScoreCircuitHalfOpenMaxReq: sofaCircuitHalfOpenMaxReq,
		RelayEnabled:                   relayEnabled,
		RelayAllowedHosts:              relayAllowedHosts,
		EnrichWorkers:                  enrichWorkers,
		WarmupEnabled:                  warmupEnabled,
		WarmupCron:                     warmupCron,
		PriorityConfigPath:             strings.TrimSpace(getEnv("PRIORITY_CONFIG_PATH", "")),
		PprofEnabled:                   pprofEnabled,
		PprofAddr:                      pprofAddr,
		UptraceEnabled:                 uptraceEnabled,
		UptraceDSN:                     uptraceDSN,
		UptraceLogsEnabled:             uptraceLogsEnabled,
		PyroscopeEnabled:               pyroscopeEnabled,
		PyroscopeServerAddress:         pyroscopeServerAddress,
		PyroscopeAuthToken:             strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:         strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:            pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(item), "=")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(value), "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
