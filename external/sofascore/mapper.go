package sofascore

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/matchday/internal/domain/fixture"
	"github.com/riskibarqy/matchday/internal/domain/leaguestanding"
	"github.com/riskibarqy/matchday/internal/domain/player"
	"github.com/riskibarqy/matchday/internal/domain/playerstats"
	"github.com/riskibarqy/matchday/internal/domain/roster"
	"github.com/riskibarqy/matchday/internal/domain/team"
)

func mapEvents(items []eventPayload) []fixture.Fixture {
	out := make([]fixture.Fixture, 0, len(items))
	for _, item := range items {
		if item.ID <= 0 {
			continue
		}
		out = append(out, mapEvent(item))
	}
	return out
}

func mapEvent(item eventPayload) fixture.Fixture {
	return fixture.Fixture{
		ID:             item.ID,
		StartTimestamp: item.StartTimestamp,
		HomeTeam:       mapTeam(item.HomeTeam),
		AwayTeam:       mapTeam(item.AwayTeam),
		Status: fixture.Status{
			Type:        fixture.NormalizeStatus(item.Status.Type),
			Description: strings.TrimSpace(item.Status.Description),
		},
		HomeScore: mapScore(item.HomeScore),
		AwayScore: mapScore(item.AwayScore),
		Tournament: fixture.Tournament{
			ID:   item.Tournament.ID,
			Name: item.Tournament.Name,
			UniqueTournament: fixture.UniqueTournament{
				ID:   item.Tournament.UniqueTournament.ID,
				Name: item.Tournament.UniqueTournament.Name,
			},
		},
		Round: item.RoundInfo.Round,
	}
}

func mapScore(item scorePayload) *fixture.Score {
	switch {
	case item.Display != nil:
		return &fixture.Score{Display: *item.Display}
	case item.Current != nil:
		return &fixture.Score{Display: *item.Current}
	default:
		return nil
	}
}

func mapTeam(item teamPayload) team.Team {
	var translations map[string]string
	if len(item.FieldTranslations.NameTranslation) > 0 {
		translations = make(map[string]string, len(item.FieldTranslations.NameTranslation))
		for lang, name := range item.FieldTranslations.NameTranslation {
			translations[lang] = name
		}
	}
	return team.Team{
		ID:               item.ID,
		Name:             item.Name,
		ShortName:        item.ShortName,
		Country:          item.Country.Name,
		NameTranslations: translations,
	}
}

func mapPlayer(item playerPayload) player.Player {
	return player.Player{
		ID:           item.ID,
		Name:         item.Name,
		ShortName:    item.ShortName,
		JerseyNumber: item.JerseyNumber,
		Position:     player.Position(strings.ToUpper(strings.TrimSpace(item.Position))),
		Country:      item.Country.Name,
	}
}

func mapRoster(teamID int64, items []playerEntryPayload) roster.Roster {
	out := roster.Roster{TeamID: teamID, Players: make([]roster.Entry, 0, len(items))}
	for _, item := range items {
		if item.Player.ID <= 0 {
			continue
		}
		out.Players = append(out.Players, roster.Entry{Player: mapPlayer(item.Player)})
	}
	return out
}

// mapStandings reads the first table, which is the overall one for
// standings/total.
func mapStandings(tables []standingTablePayload) []leaguestanding.Standing {
	if len(tables) == 0 {
		return []leaguestanding.Standing{}
	}
	rows := tables[0].Rows
	out := make([]leaguestanding.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, leaguestanding.Standing{
			ID:           row.ID,
			Team:         mapTeam(row.Team),
			Position:     row.Position,
			Matches:      row.Matches,
			Wins:         row.Wins,
			Draws:        row.Draws,
			Losses:       row.Losses,
			GoalsFor:     row.ScoresFor,
			GoalsAgainst: row.ScoresAgainst,
			Points:       row.Points,
		})
	}
	return out
}

func mapStatistics(rows []map[string]any) []playerstats.Entry {
	out := make([]playerstats.Entry, 0, len(rows))
	for _, row := range rows {
		playerNode, _ := row["player"].(map[string]any)
		if playerNode == nil {
			continue
		}
		teamNode, _ := row["team"].(map[string]any)

		entry := playerstats.Entry{
			Player: player.Player{
				ID:        getInt64(playerNode, "id"),
				Name:      getString(playerNode, "name"),
				ShortName: getString(playerNode, "shortName"),
				Position:  player.Position(getString(playerNode, "position")),
			},
			Team: team.Team{
				ID:        getInt64(teamNode, "id"),
				Name:      getString(teamNode, "name"),
				ShortName: getString(teamNode, "shortName"),
			},
			Stats: make(map[string]float64, len(playerstats.Keys)),
		}
		for _, key := range playerstats.Keys {
			if value, ok := getFloat(row, key); ok {
				entry.Stats[key] = value
			}
		}
		out = append(out, entry)
	}
	return out
}

func getString(src map[string]any, key string) string {
	if src == nil {
		return ""
	}
	switch v := src[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func getInt64(src map[string]any, key string) int64 {
	value, ok := getFloat(src, key)
	if !ok {
		return 0
	}
	return int64(value)
}

func getFloat(src map[string]any, key string) (float64, bool) {
	if src == nil {
		return 0, false
	}
	switch v := src[key].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
