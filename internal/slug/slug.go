// Package slug builds URL path segments for venues and cities.
package slug

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`[^a-z0-9]+`)

// Make lowercases s, collapses every run of non-alphanumeric characters into a
// single dash and strips leading and trailing dashes.
//
//	Make("Gold's Gym  Casablanca") == "gold-s-gym-casablanca"
func Make(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonWord.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
