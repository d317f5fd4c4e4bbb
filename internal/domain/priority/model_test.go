package priority

import "testing"

func validConfig() Config {
	return Config{
		HighlightTournamentID: 937,
		TopTeamIDs:            []int64{2829, 2817},
		Tournaments: []Tournament{
			{ID: 17, Name: "Premier League", Rank: 2},
			{ID: 937, Name: "Botola Pro", Rank: 1},
		},
		Nationality:           "Morocco",
		Language:              "fr",
		StandingsTournamentID: 937,
		StandingsSeasonID:     61419,
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	dup := validConfig()
	dup.Tournaments = append(dup.Tournaments, Tournament{ID: 17})
	if err := dup.Validate(); err == nil {
		t.Fatalf("expected duplicate tournament error")
	}

	noNationality := validConfig()
	noNationality.Nationality = " "
	if err := noNationality.Validate(); err == nil {
		t.Fatalf("expected nationality error")
	}
}

func TestRankedTournaments_DoesNotMutate(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	ranked := cfg.RankedTournaments()
	if ranked[0].ID != 937 || ranked[1].ID != 17 {
		t.Fatalf("unexpected order: %+v", ranked)
	}
	if cfg.Tournaments[0].ID != 17 {
		t.Fatalf("expected source slice untouched")
	}
}

func TestSets(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	if _, ok := cfg.TopTeamSet()[2829]; !ok {
		t.Fatalf("expected top team in set")
	}
	if _, ok := cfg.TournamentSet()[937]; !ok {
		t.Fatalf("expected tournament in set")
	}
}
