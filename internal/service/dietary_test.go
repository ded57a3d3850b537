package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsRestrictedItem(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		matched bool
		items   []string
	}{
		{
			name:    "clean vegetarian text",
			text:    "paneer tikka with rice and vegetables",
			matched: false,
		},
		{
			name:    "single match",
			text:    "grilled chicken salad",
			matched: true,
			items:   []string{"chicken"},
		},
		{
			name:    "case insensitive",
			text:    "Smoked SALMON bagel",
			matched: true,
			items:   []string{"salmon"},
		},
		{
			name:    "multiple matches reported",
			text:    "surf and turf: beef, lobster and shrimp",
			matched: true,
			items:   []string{"beef", "shrimp", "lobster"},
		},
		{
			name:    "egg is restricted",
			text:    "egg fried rice",
			matched: true,
			items:   []string{"egg"},
		},
		{
			name:    "substring match inside words",
			text:    "hamburger bun",
			matched: true,
			items:   []string{"ham"},
		},
		{
			name:    "empty text",
			text:    "",
			matched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ContainsRestrictedItem(tt.text)
			assert.Equal(t, tt.matched, result.Matched)
			assert.ElementsMatch(t, tt.items, result.Items)
		})
	}
}

func TestContainsRestrictedItemIsPure(t *testing.T) {
	first := ContainsRestrictedItem("chicken and fish curry")
	second := ContainsRestrictedItem("chicken and fish curry")
	assert.Equal(t, first, second)
}
