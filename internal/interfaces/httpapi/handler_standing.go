package httpapi

import (
	"net/http"

	"github.com/riskibarqy/matchday/internal/usecase"
)

type limitQuery struct {
	Limit int `validate:"gte=0,lte=100"`
}

type compareQuery struct {
	TeamA int64 `validate:"required,gt=0"`
	TeamB int64 `validate:"required,gt=0"`
}

func (h *Handler) parseLimit(w http.ResponseWriter, r *http.Request, fallback int) (int, bool) {
	ctx := r.Context()
	limit, err := queryInt(r, "limit", fallback)
	if err == nil {
		err = h.validateRequest(ctx, limitQuery{Limit: limit})
	}
	if err != nil {
		writeError(ctx, w, err)
		return 0, false
	}
	return limit, true
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	limit, ok := h.parseLimit(w, r, 0)
	if !ok {
		return
	}
	writeSuccess(ctx, w, http.StatusOK, h.standingsToDTO(h.standingService.Table(ctx, limit)))
}

func (h *Handler) ListTopAttack(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopAttack")
	defer span.End()

	limit, ok := h.parseLimit(w, r, usecase.DefaultStandingsViewLimit)
	if !ok {
		return
	}
	writeSuccess(ctx, w, http.StatusOK, h.standingsToDTO(h.standingService.TopAttack(ctx, limit)))
}

func (h *Handler) ListTopDefense(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopDefense")
	defer span.End()

	limit, ok := h.parseLimit(w, r, usecase.DefaultStandingsViewLimit)
	if !ok {
		return
	}
	writeSuccess(ctx, w, http.StatusOK, h.standingsToDTO(h.standingService.TopDefense(ctx, limit)))
}

func (h *Handler) CompareTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompareTeams")
	defer span.End()

	teamA, err := queryInt64(r, "team_a")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamB, err := queryInt64(r, "team_b")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, compareQuery{TeamA: teamA, TeamB: teamB}); err != nil {
		writeError(ctx, w, err)
		return
	}

	comparison, err := h.standingService.Compare(ctx, teamA, teamB)
	if err != nil {
		h.logger.WarnContext(ctx, "compare teams failed", "team_a", teamA, "team_b", teamB, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, comparisonDTO{
		TeamA: h.optionalStandingToDTO(comparison.TeamA),
		TeamB: h.optionalStandingToDTO(comparison.TeamB),
	})
}
