package player

import "testing"

func TestIsNational_ExactMatchOnly(t *testing.T) {
	t.Parallel()

	p := Player{Name: "Achraf Hakimi", Country: "Morocco"}
	if !p.IsNational("Morocco") {
		t.Fatalf("expected player to match Morocco")
	}
	if p.IsNational("morocco") {
		t.Fatalf("expected case-sensitive comparison")
	}
	if p.IsNational("") {
		t.Fatalf("expected empty nationality to never match")
	}
}

func TestJersey(t *testing.T) {
	t.Parallel()

	number := " 2 "
	if got := (Player{JerseyNumber: &number}).Jersey(); got != "2" {
		t.Fatalf("unexpected jersey %q", got)
	}
	if got := (Player{}).Jersey(); got != "" {
		t.Fatalf("expected empty jersey, got %q", got)
	}
}

func TestPositionLabel(t *testing.T) {
	t.Parallel()

	if got := PositionForward.Label(); got != "Forward" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := Position("X").Label(); got != "X" {
		t.Fatalf("unexpected label %q", got)
	}
}
