package httpapi

import (
	"net/http"

	"github.com/riskibarqy/matchday/internal/platform/logging"
)

type RouterConfig struct {
	CORSAllowedOrigins []string
	// MetricsHandler is mounted at /metrics when set.
	MetricsHandler http.Handler
	Observer       HTTPObserver
}

func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.MetricsHandler)
	registerFixtureRoutes(mux, handler)
	registerStandingRoutes(mux, handler)
	registerPlayerRoutes(mux, handler)
	registerRelayRoutes(mux, handler)

	return RequestTracing(RequestID(CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, RequestLogging(logger, cfg.Observer, mux)))))
}
