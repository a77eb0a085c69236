package sports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPosition(t *testing.T) {
	tests := []struct {
		name     string
		sport    string
		position string
		want     bool
	}{
		{"valid position", "NFL", "QB", true},
		{"valid position lowercase", "nfl", "qb", true},
		{"valid position mixed case", "Nfl", "Qb", true},
		{"offensive line position", "NFL", "LT", true},
		{"invalid position", "NFL", "GK", false},
		{"empty position", "NFL", "", false},
		{"unknown sport", "MLB", "QB", false},
		{"empty sport", "", "QB", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPosition(tt.sport, tt.position))
		})
	}
}

func TestPositions(t *testing.T) {
	t.Run("known sport", func(t *testing.T) {
		codes := Positions("NFL")
		assert.Len(t, codes, 10)
		assert.Contains(t, codes, "QB")
		assert.Contains(t, codes, "RT")
	})

	t.Run("case-insensitive sport lookup", func(t *testing.T) {
		assert.ElementsMatch(t, Positions("NFL"), Positions("nfl"))
	})

	t.Run("unknown sport", func(t *testing.T) {
		assert.Nil(t, Positions("MLB"))
	})
}
