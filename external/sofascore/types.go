package sofascore

type eventsEnvelope struct {
	Events []eventPayload `json:"events"`
}

type eventPayload struct {
	ID             int64             `json:"id"`
	StartTimestamp int64             `json:"startTimestamp"`
	HomeTeam       teamPayload       `json:"homeTeam"`
	AwayTeam       teamPayload       `json:"awayTeam"`
	Status         statusPayload     `json:"status"`
	HomeScore      scorePayload      `json:"homeScore"`
	AwayScore      scorePayload      `json:"awayScore"`
	Tournament     tournamentPayload `json:"tournament"`
	RoundInfo      roundInfoPayload  `json:"roundInfo"`
}

type teamPayload struct {
	ID                int64                    `json:"id"`
	Name              string                   `json:"name"`
	ShortName         string                   `json:"shortName"`
	Country           countryPayload           `json:"country"`
	FieldTranslations fieldTranslationsPayload `json:"fieldTranslations"`
}

type countryPayload struct {
	Name   string `json:"name"`
	Alpha2 string `json:"alpha2"`
}

type fieldTranslationsPayload struct {
	NameTranslation map[string]string `json:"nameTranslation"`
}

type statusPayload struct {
	Code        int    `json:"code"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type scorePayload struct {
	Current *int `json:"current"`
	Display *int `json:"display"`
}

type tournamentPayload struct {
	ID               int64                   `json:"id"`
	Name             string                  `json:"name"`
	UniqueTournament uniqueTournamentPayload `json:"uniqueTournament"`
}

type uniqueTournamentPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type roundInfoPayload struct {
	Round int `json:"round"`
}

type playersEnvelope struct {
	Players []playerEntryPayload `json:"players"`
}

type playerEntryPayload struct {
	Player playerPayload `json:"player"`
}

type playerPayload struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	ShortName    string         `json:"shortName"`
	Position     string         `json:"position"`
	JerseyNumber *string        `json:"jerseyNumber"`
	Country      countryPayload `json:"country"`
}

type standingsEnvelope struct {
	Standings []standingTablePayload `json:"standings"`
}

type standingTablePayload struct {
	Type string               `json:"type"`
	Rows []standingRowPayload `json:"rows"`
}

type standingRowPayload struct {
	ID            int64       `json:"id"`
	Team          teamPayload `json:"team"`
	Position      int         `json:"position"`
	Matches       int         `json:"matches"`
	Wins          int         `json:"wins"`
	Draws         int         `json:"draws"`
	Losses        int         `json:"losses"`
	ScoresFor     int         `json:"scoresFor"`
	ScoresAgainst int         `json:"scoresAgainst"`
	Points        int         `json:"points"`
}

// Statistic rows carry the player and team objects next to flat numeric
// fields, one per requested statistic.
type statisticsEnvelope struct {
	Results []map[string]any `json:"results"`
}
