package player

import "strings"

// Position is the provider's single-letter position code.
type Position string

const (
	PositionGoalkeeper Position = "G"
	PositionDefender   Position = "D"
	PositionMidfielder Position = "M"
	PositionForward    Position = "F"
)

var positionLabels = map[Position]string{
	PositionGoalkeeper: "Goalkeeper",
	PositionDefender:   "Defender",
	PositionMidfielder: "Midfielder",
	PositionForward:    "Forward",
}

// Player is a squad member as reported by the provider.
type Player struct {
	ID           int64
	Name         string
	ShortName    string
	JerseyNumber *string
	Position     Position
	Country      string
}

// IsNational reports whether the player's country name equals nationality.
// The comparison is exact, matching the provider's English country names.
func (p Player) IsNational(nationality string) bool {
	return nationality != "" && p.Country == nationality
}

// Jersey returns the shirt number, or "" when the provider omitted it.
func (p Player) Jersey() string {
	if p.JerseyNumber == nil {
		return ""
	}
	return strings.TrimSpace(*p.JerseyNumber)
}

func (p Player) Label() string {
	if strings.TrimSpace(p.ShortName) != "" {
		return p.ShortName
	}
	return p.Name
}

func (p Position) Label() string {
	if label, ok := positionLabels[p]; ok {
		return label
	}
	return string(p)
}
