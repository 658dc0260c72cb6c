package preference

import (
	"regexp"
	"strings"
	"time"
)

// DefaultNOC is used when a user never picked a favorite.
const DefaultNOC = "NED"

var nocPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// FavoriteCountry records which national team a user follows.
type FavoriteCountry struct {
	UserID    string
	NOC       string
	UpdatedAt time.Time
}

// NormalizeNOC uppercases and validates a committee code. Anything that is
// not exactly three letters is rejected.
func NormalizeNOC(raw string) (string, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if !nocPattern.MatchString(normalized) {
		return "", false
	}
	return normalized, true
}
