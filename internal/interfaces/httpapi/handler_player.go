package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/matchday/internal/domain/playerstats"
	"github.com/riskibarqy/matchday/internal/usecase"
)

type topPlayersQuery struct {
	Stat  string `validate:"omitempty,oneof=goals totalShots successfulDribbles goalConversionPercentage rating"`
	Limit int    `validate:"gte=0,lte=100"`
}

func (h *Handler) ListTopPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopPlayers")
	defer span.End()

	limit, err := queryInt(r, "limit", usecase.DefaultLeaderboardLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := topPlayersQuery{Stat: strings.TrimSpace(r.URL.Query().Get("stat")), Limit: limit}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}
	if query.Stat == "" {
		query.Stat = playerstats.KeyGoals
	}

	items, err := h.playerStatsService.Top(ctx, query.Stat, query.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list top players failed", "stat", query.Stat, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, h.leaderboardToDTO(query.Stat, items))
}
