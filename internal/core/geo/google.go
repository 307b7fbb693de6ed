package geo

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"googlemaps.github.io/maps"

	"github.com/steveyiyo/guide-backend/internal/config"
)

// Google geocodes with the Google Maps Geocoding API. It is used as a second
// opinion when OpenStreetMap has no match.
type Google struct {
	c        *maps.Client
	locality string
}

func NewGoogle(cfg config.MapsConfig, hc *http.Client) (*Google, error) {
	opts := []maps.ClientOption{maps.WithAPIKey(cfg.GoogleKey)}
	if hc != nil {
		opts = append(opts, maps.WithHTTPClient(hc))
	}
	if cfg.GoogleBaseURL != "" {
		opts = append(opts, maps.WithBaseURL(cfg.GoogleBaseURL))
	}
	c, err := maps.NewClient(opts...)
	if err != nil {
		return nil, err
	}
	return &Google{c: c, locality: cfg.Locality}, nil
}

func (g *Google) Geocode(ctx context.Context, query string) *Location {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, geocodeTimeout)
	defer cancel()

	res, err := g.c.Geocode(ctx, &maps.GeocodingRequest{
		Address: withLocality(query, g.locality),
		Region:  "in",
	})
	if err != nil {
		slog.Warn("google geocode failed", "query", query, "error", err)
		return nil
	}
	if len(res) == 0 {
		return nil
	}
	label := res[0].FormattedAddress
	if label == "" {
		label = query
	}
	return &Location{
		Label: label,
		Lat:   res[0].Geometry.Location.Lat,
		Lon:   res[0].Geometry.Location.Lng,
	}
}
