package geo

import (
	"context"
	"strings"
	"unicode/utf8"
)

// SplitPlaces breaks free text such as "Victoria Memorial, Howrah Bridge and
// Park Street" into candidate place phrases longer than two characters.
func SplitPlaces(text string) []string {
	var out []string
	for _, p := range strings.Split(strings.ReplaceAll(text, ",", " and "), " and ") {
		p = strings.TrimSpace(p)
		if utf8.RuneCountInString(p) > 2 {
			out = append(out, p)
		}
	}
	return out
}

// Places geocodes every phrase of SplitPlaces(text) and returns the ones that
// resolved, or nil when none did.
func Places(ctx context.Context, g Geocoder, text string) []Location {
	if g == nil || strings.TrimSpace(text) == "" {
		return nil
	}
	var out []Location
	for _, p := range SplitPlaces(text) {
		if loc := g.Geocode(ctx, p); loc != nil {
			out = append(out, *loc)
		}
	}
	return out
}
