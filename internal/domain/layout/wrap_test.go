package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		capacity      int
		maxLines      int
		wantLines     []string
		wantTruncated bool
	}{
		{
			name:     "short text stays on one line",
			text:     "Espresso", capacity: 20, maxLines: 3,
			wantLines: []string{"Espresso"},
		},
		{
			name:     "wraps at whitespace",
			text:     "Large Pepperoni Pizza", capacity: 10, maxLines: 3,
			wantLines: []string{"Large", "Pepperoni", "Pizza"},
		},
		{
			name:     "packs words greedily",
			text:     "Hot Dog Combo Meal", capacity: 12, maxLines: 3,
			wantLines: []string{"Hot Dog", "Combo Meal"},
		},
		{
			name:     "hard-breaks oversized token",
			text:     strings.Repeat("a", 25), capacity: 10, maxLines: 3,
			wantLines: []string{strings.Repeat("a", 10), strings.Repeat("a", 10), strings.Repeat("a", 5)},
		},
		{
			name:     "truncates past line cap",
			text:     "one two three four five six seven", capacity: 5, maxLines: 2,
			wantLines:     []string{"one", "two"},
			wantTruncated: true,
		},
		{
			name:     "empty text yields one empty line",
			text:     "   ", capacity: 10, maxLines: 3,
			wantLines: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, truncated := wrapText(tt.text, tt.capacity, tt.maxLines)
			assert.Equal(t, tt.wantLines, lines)
			assert.Equal(t, tt.wantTruncated, truncated)

			for _, line := range lines {
				assert.LessOrEqual(t, len([]rune(line)), tt.capacity)
			}
		})
	}
}
