package service

import (
	"strings"
)

// restrictedKeywords is the fixed non-vegetarian keyword set. The list is
// lacto-vegetarian-strict: egg and eggs are excluded unconditionally.
var restrictedKeywords = []string{
	"chicken", "beef", "pork", "lamb", "mutton", "fish", "shrimp", "prawn",
	"crab", "lobster", "duck", "turkey", "bacon", "ham", "sausage",
	"pepperoni", "salmon", "tuna", "cod", "sardine", "anchovy", "oyster",
	"mussel", "clam", "squid", "octopus", "meat", "seafood", "poultry",
	"egg", "eggs",
}

// DietaryMatch is the result of a restricted-content scan.
type DietaryMatch struct {
	Matched bool     `json:"matched"`
	Items   []string `json:"items"`
}

// ContainsRestrictedItem scans text for every restricted keyword using a
// case-insensitive substring match and returns all matches, not just the
// first, so the caller can report specifics to the user. Pure function.
func ContainsRestrictedItem(text string) DietaryMatch {
	lowered := strings.ToLower(text)
	var items []string
	for _, kw := range restrictedKeywords {
		if strings.Contains(lowered, kw) {
			items = append(items, kw)
		}
	}
	return DietaryMatch{Matched: len(items) > 0, Items: items}
}
