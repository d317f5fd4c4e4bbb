package team

import "strings"

// Team is a read-only projection of a club or national side as reported by
// the sports-data provider.
type Team struct {
	ID               int64
	Name             string
	ShortName        string
	Country          string
	NameTranslations map[string]string
}

// DisplayName returns the localized name for lang, falling back to Name.
func (t Team) DisplayName(lang string) string {
	if localized := strings.TrimSpace(t.NameTranslations[lang]); localized != "" {
		return localized
	}
	return t.Name
}

// Label is the short label shown on match cards.
func (t Team) Label() string {
	if short := strings.TrimSpace(t.ShortName); short != "" {
		return short
	}
	return t.Name
}
