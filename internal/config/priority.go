package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/riskibarqy/matchday/internal/domain/priority"
)

//go:embed priority.yaml
var defaultPriorityYAML []byte

type priorityFile struct {
	HighlightTournamentID int64                    `yaml:"highlight_tournament_id"`
	Nationality           string                   `yaml:"nationality"`
	Language              string                   `yaml:"language"`
	Standings             priorityStandingsFile    `yaml:"standings"`
	Tournaments           []priorityTournamentFile `yaml:"tournaments"`
	TopTeams              []int64                  `yaml:"top_teams"`
}

type priorityStandingsFile struct {
	TournamentID int64 `yaml:"tournament_id"`
	SeasonID     int64 `yaml:"season_id"`
}

type priorityTournamentFile struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
	Rank int    `yaml:"rank"`
}

// LoadPriority reads the priority configuration from path, or the embedded
// default when path is empty.
func LoadPriority(path string) (priority.Config, error) {
	raw := defaultPriorityYAML
	if path = strings.TrimSpace(path); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return priority.Config{}, fmt.Errorf("read PRIORITY_CONFIG_PATH: %w", err)
		}
		raw = data
	}
	return ParsePriority(raw)
}

func ParsePriority(raw []byte) (priority.Config, error) {
	var file priorityFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return priority.Config{}, fmt.Errorf("decode priority config: %w", err)
	}

	cfg := priority.Config{
		HighlightTournamentID: file.HighlightTournamentID,
		TopTeamIDs:            append([]int64(nil), file.TopTeams...),
		Nationality:           strings.TrimSpace(file.Nationality),
		Language:              strings.TrimSpace(file.Language),
		StandingsTournamentID: file.Standings.TournamentID,
		StandingsSeasonID:     file.Standings.SeasonID,
		Tournaments:           make([]priority.Tournament, 0, len(file.Tournaments)),
	}
	for _, t := range file.Tournaments {
		cfg.Tournaments = append(cfg.Tournaments, priority.Tournament{
			ID:   t.ID,
			Name: strings.TrimSpace(t.Name),
			Rank: t.Rank,
		})
	}
	if cfg.StandingsTournamentID == 0 {
		cfg.StandingsTournamentID = cfg.HighlightTournamentID
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}

	if err := cfg.Validate(); err != nil {
		return priority.Config{}, fmt.Errorf("invalid priority config: %w", err)
	}
	return cfg, nil
}
