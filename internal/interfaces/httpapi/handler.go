package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/matchday/external/sofascore"
	"github.com/riskibarqy/matchday/internal/domain/priority"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/riskibarqy/matchday/internal/usecase"
)

type Handler struct {
	fixtureService     *usecase.FixtureService
	standingService    *usecase.StandingService
	playerStatsService *usecase.PlayerStatsService
	priority           priority.Config
	images             sofascore.ImageURLs
	relay              *Relay
	logger             *logging.Logger
	validator          *validator.Validate
}

// NewHandler wires the read services. relay may be nil, in which case the
// proxy route is not mounted.
func NewHandler(
	fixtureService *usecase.FixtureService,
	standingService *usecase.StandingService,
	playerStatsService *usecase.PlayerStatsService,
	priorityCfg priority.Config,
	images sofascore.ImageURLs,
	relay *Relay,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		fixtureService:     fixtureService,
		standingService:    standingService,
		playerStatsService: playerStatsService,
		priority:           priorityCfg,
		images:             images,
		relay:              relay,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetPriorityConfig(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPriorityConfig")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, priorityToDTO(h.priority))
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// queryInt parses an optional integer query parameter, returning fallback
// when it is absent.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}

func queryInt64(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}
