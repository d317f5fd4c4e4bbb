package httpapi

import (
	"time"

	"github.com/riskibarqy/matchday/internal/domain/fixture"
	"github.com/riskibarqy/matchday/internal/domain/leaguestanding"
	"github.com/riskibarqy/matchday/internal/domain/player"
	"github.com/riskibarqy/matchday/internal/domain/playerstats"
	"github.com/riskibarqy/matchday/internal/domain/priority"
	"github.com/riskibarqy/matchday/internal/domain/roster"
	"github.com/riskibarqy/matchday/internal/domain/team"
)

type teamDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName,omitempty"`
	Country   string `json:"country,omitempty"`
	LogoURL   string `json:"logoUrl"`
}

type matchCardDTO struct {
	ID                 int64   `json:"id"`
	StartTimestamp     int64   `json:"startTimestamp"`
	Status             string  `json:"status"`
	StatusLabel        string  `json:"statusLabel"`
	Live               bool    `json:"live"`
	Score              string  `json:"score,omitempty"`
	Kickoff            string  `json:"kickoff,omitempty"`
	Competition        string  `json:"competition"`
	UniqueTournamentID int64   `json:"uniqueTournamentId"`
	HomeTeam           teamDTO `json:"homeTeam"`
	AwayTeam           teamDTO `json:"awayTeam"`
}

type fixtureDayDTO struct {
	Date     string         `json:"date"`
	Timezone string         `json:"timezone"`
	Fixtures []matchCardDTO `json:"fixtures"`
}

type playerCardDTO struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ShortName     string `json:"shortName,omitempty"`
	Position      string `json:"position,omitempty"`
	PositionLabel string `json:"positionLabel,omitempty"`
	JerseyNumber  string `json:"jerseyNumber,omitempty"`
	Country       string `json:"country,omitempty"`
	PhotoURL      string `json:"photoUrl"`
}

type internationalFixtureDTO struct {
	Match   matchCardDTO    `json:"match"`
	Players []playerCardDTO `json:"players"`
}

type internationalDayDTO struct {
	Date        string                    `json:"date"`
	Timezone    string                    `json:"timezone"`
	Nationality string                    `json:"nationality"`
	Fixtures    []internationalFixtureDTO `json:"fixtures"`
}

type standingDTO struct {
	Position       int     `json:"position"`
	Team           teamDTO `json:"team"`
	Matches        int     `json:"matches"`
	Wins           int     `json:"wins"`
	Draws          int     `json:"draws"`
	Losses         int     `json:"losses"`
	GoalsFor       int     `json:"goalsFor"`
	GoalsAgainst   int     `json:"goalsAgainst"`
	GoalDifference int     `json:"goalDifference"`
	Points         int     `json:"points"`
}

type comparisonDTO struct {
	TeamA *standingDTO `json:"teamA"`
	TeamB *standingDTO `json:"teamB"`
}

type leaderboardEntryDTO struct {
	Rank   int                `json:"rank"`
	Player playerCardDTO      `json:"player"`
	Team   teamDTO            `json:"team"`
	Value  float64            `json:"value"`
	Stats  map[string]float64 `json:"stats"`
}

type leaderboardDTO struct {
	Stat    string                `json:"stat"`
	Entries []leaderboardEntryDTO `json:"entries"`
}

type priorityTournamentDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Rank int    `json:"rank"`
}

type priorityDTO struct {
	HighlightTournamentID int64                   `json:"highlightTournamentId"`
	TopTeamIDs            []int64                 `json:"topTeamIds"`
	Tournaments           []priorityTournamentDTO `json:"tournaments"`
	Nationality           string                  `json:"nationality"`
	Language              string                  `json:"language"`
	StandingsTournamentID int64                   `json:"standingsTournamentId"`
	StandingsSeasonID     int64                   `json:"standingsSeasonId"`
	Stats                 []string                `json:"stats"`
}

func (h *Handler) teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:        v.ID,
		Name:      v.DisplayName(h.priority.Language),
		ShortName: v.Label(),
		Country:   v.Country,
		LogoURL:   h.images.Team(v.ID),
	}
}

func (h *Handler) matchCardToDTO(v fixture.Fixture, loc *time.Location) matchCardDTO {
	card := v.Card(loc)
	return matchCardDTO{
		ID:                 v.ID,
		StartTimestamp:     v.StartTimestamp,
		Status:             fixture.NormalizeStatus(v.Status.Type),
		StatusLabel:        card.StatusLabel,
		Live:               card.Live,
		Score:              card.Score,
		Kickoff:            card.Kickoff,
		Competition:        card.Competition,
		UniqueTournamentID: v.UniqueTournamentID(),
		HomeTeam:           h.teamToDTO(v.HomeTeam),
		AwayTeam:           h.teamToDTO(v.AwayTeam),
	}
}

func (h *Handler) playerToDTO(v player.Player) playerCardDTO {
	var label string
	if v.Position != "" {
		label = v.Position.Label()
	}
	return playerCardDTO{
		ID:            v.ID,
		Name:          v.Name,
		ShortName:     v.ShortName,
		Position:      string(v.Position),
		PositionLabel: label,
		JerseyNumber:  v.Jersey(),
		Country:       v.Country,
		PhotoURL:      h.images.Player(v.ID),
	}
}

func (h *Handler) rosterEntriesToDTO(items []roster.Entry) []playerCardDTO {
	out := make([]playerCardDTO, 0, len(items))
	for _, item := range items {
		out = append(out, h.playerToDTO(item.Player))
	}
	return out
}

func (h *Handler) standingToDTO(v leaguestanding.Standing) standingDTO {
	return standingDTO{
		Position:       v.Position,
		Team:           h.teamToDTO(v.Team),
		Matches:        v.Matches,
		Wins:           v.Wins,
		Draws:          v.Draws,
		Losses:         v.Losses,
		GoalsFor:       v.GoalsFor,
		GoalsAgainst:   v.GoalsAgainst,
		GoalDifference: v.GoalDifference(),
		Points:         v.Points,
	}
}

func (h *Handler) standingsToDTO(items []leaguestanding.Standing) []standingDTO {
	out := make([]standingDTO, 0, len(items))
	for _, item := range items {
		out = append(out, h.standingToDTO(item))
	}
	return out
}

func (h *Handler) optionalStandingToDTO(v *leaguestanding.Standing) *standingDTO {
	if v == nil {
		return nil
	}
	dto := h.standingToDTO(*v)
	return &dto
}

func (h *Handler) leaderboardToDTO(statKey string, items []playerstats.Entry) leaderboardDTO {
	entries := make([]leaderboardEntryDTO, 0, len(items))
	for i, item := range items {
		stats := item.Stats
		if stats == nil {
			stats = map[string]float64{}
		}
		entries = append(entries, leaderboardEntryDTO{
			Rank:   i + 1,
			Player: h.playerToDTO(item.Player),
			Team:   h.teamToDTO(item.Team),
			Value:  item.Value(statKey),
			Stats:  stats,
		})
	}
	return leaderboardDTO{Stat: statKey, Entries: entries}
}

func priorityToDTO(cfg priority.Config) priorityDTO {
	tournaments := make([]priorityTournamentDTO, 0, len(cfg.Tournaments))
	for _, item := range cfg.RankedTournaments() {
		tournaments = append(tournaments, priorityTournamentDTO{ID: item.ID, Name: item.Name, Rank: item.Rank})
	}
	topTeamIDs := append([]int64{}, cfg.TopTeamIDs...)

	return priorityDTO{
		HighlightTournamentID: cfg.HighlightTournamentID,
		TopTeamIDs:            topTeamIDs,
		Tournaments:           tournaments,
		Nationality:           cfg.Nationality,
		Language:              cfg.Language,
		StandingsTournamentID: cfg.StandingsTournamentID,
		StandingsSeasonID:     cfg.StandingsSeasonID,
		Stats:                 append([]string{}, playerstats.Keys...),
	}
}
