package roster

import (
	"testing"

	"github.com/riskibarqy/matchday/internal/domain/player"
)

func TestFilterNationality_PreservesOrder(t *testing.T) {
	t.Parallel()

	r := Roster{TeamID: 2829, Players: []Entry{
		{Player: player.Player{ID: 1, Name: "Brahim Díaz", Country: "Morocco"}},
		{Player: player.Player{ID: 2, Name: "Vinícius Júnior", Country: "Brazil"}},
		{Player: player.Player{ID: 3, Name: "Other", Country: "Morocco"}},
	}}

	got := r.FilterNationality("Morocco")
	if len(got) != 2 || got[0].Player.ID != 1 || got[1].Player.ID != 3 {
		t.Fatalf("unexpected matches: %+v", got)
	}
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	r := Empty(44)
	if r.TeamID != 44 || r.Players == nil || len(r.Players) != 0 {
		t.Fatalf("unexpected empty roster: %+v", r)
	}
}
