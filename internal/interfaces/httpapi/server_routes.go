package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /v1/config/priority", handler.GetPriorityConfig)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}
}

func registerFixtureRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/fixtures/highlighted", handler.HighlightedFixtures)
	mux.HandleFunc("GET /v1/fixtures/internationals", handler.InternationalFixtures)
}

func registerStandingRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/standings/attack", handler.ListTopAttack)
	mux.HandleFunc("GET /v1/standings/defense", handler.ListTopDefense)
	mux.HandleFunc("GET /v1/standings/compare", handler.CompareTeams)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players/top", handler.ListTopPlayers)
}

// The relay is only mounted when a relay was configured.
func registerRelayRoutes(mux *http.ServeMux, handler *Handler) {
	if handler.relay == nil {
		return
	}
	mux.HandleFunc("GET /api/proxy", handler.Proxy)
}
