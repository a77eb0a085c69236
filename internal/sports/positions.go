// Package sports holds the static sport-to-position allow-list used to
// validate depth chart positions. Lookups are case-insensitive and fail
// closed: an unknown sport has no valid positions.
package sports

import "strings"

var positions = map[string]map[string]struct{}{
	"nfl": {
		"qb": {}, "rb": {}, "lwr": {}, "rwr": {}, "te": {},
		"lt": {}, "lg": {}, "c": {}, "rg": {}, "rt": {},
	},
}

// IsValidPosition reports whether position is a valid code for sport.
func IsValidPosition(sport, position string) bool {
	set, ok := positions[strings.ToLower(sport)]
	if !ok {
		return false
	}
	_, ok = set[strings.ToLower(position)]
	return ok
}

// Positions returns the valid position codes for a sport, uppercased.
// The result is nil for an unknown sport.
func Positions(sport string) []string {
	set, ok := positions[strings.ToLower(sport)]
	if !ok {
		return nil
	}
	codes := make([]string, 0, len(set))
	for code := range set {
		codes = append(codes, strings.ToUpper(code))
	}
	return codes
}
