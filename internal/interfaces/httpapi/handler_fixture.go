package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/matchday/internal/domain/fixture"
)

type fixtureDayQuery struct {
	Date        string `validate:"omitempty,datetime=2006-01-02"`
	TZ          string `validate:"omitempty,timezone"`
	Nationality string `validate:"omitempty,max=64"`
}

func fixtureDayQueryFrom(r *http.Request) fixtureDayQuery {
	q := r.URL.Query()
	return fixtureDayQuery{
		Date:        strings.TrimSpace(q.Get("date")),
		TZ:          strings.TrimSpace(q.Get("tz")),
		Nationality: strings.TrimSpace(q.Get("nationality")),
	}
}

func (h *Handler) HighlightedFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.HighlightedFixtures")
	defer span.End()

	query := fixtureDayQueryFrom(r)
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}
	day, err := h.fixtureService.ResolveDay(query.Date, query.TZ)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := h.fixtureService.Highlighted(ctx, day)
	cards := make([]matchCardDTO, 0, len(items))
	for _, item := range items {
		cards = append(cards, h.matchCardToDTO(item, day.Location()))
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureDayDTO{
		Date:     fixture.FormatDate(day),
		Timezone: day.Location().String(),
		Fixtures: cards,
	})
}

func (h *Handler) InternationalFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.InternationalFixtures")
	defer span.End()

	query := fixtureDayQueryFrom(r)
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}
	day, err := h.fixtureService.ResolveDay(query.Date, query.TZ)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	nationality := query.Nationality
	if nationality == "" {
		nationality = h.priority.Nationality
	}

	items := h.fixtureService.Internationals(ctx, day, nationality)
	out := make([]internationalFixtureDTO, 0, len(items))
	for _, item := range items {
		out = append(out, internationalFixtureDTO{
			Match:   h.matchCardToDTO(item.Fixture, day.Location()),
			Players: h.rosterEntriesToDTO(item.Players),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, internationalDayDTO{
		Date:        fixture.FormatDate(day),
		Timezone:    day.Location().String(),
		Nationality: nationality,
		Fixtures:    out,
	})
}
