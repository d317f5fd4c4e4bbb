package team

import "testing"

func TestTeam_DisplayNameFallsBackToDefault(t *testing.T) {
	t.Parallel()

	raja := Team{
		ID:               36268,
		Name:             "Raja Casablanca",
		ShortName:        "Raja",
		NameTranslations: map[string]string{"fr": "Raja Club Athletic", "ar": " "},
	}

	if got := raja.DisplayName("fr"); got != "Raja Club Athletic" {
		t.Fatalf("unexpected fr name: %q", got)
	}
	if got := raja.DisplayName("ar"); got != "Raja Casablanca" {
		t.Fatalf("blank translation should fall back, got %q", got)
	}
	if got := raja.DisplayName("es"); got != "Raja Casablanca" {
		t.Fatalf("missing translation should fall back, got %q", got)
	}
	if got := (Team{Name: "Wydad"}).Label(); got != "Wydad" {
		t.Fatalf("label should fall back to name, got %q", got)
	}
}
