package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/steveyiyo/guide-backend/internal/config"
)

const geocodeTimeout = 8 * time.Second

// Nominatim geocodes with the OpenStreetMap search API.
type Nominatim struct {
	baseURL   string
	userAgent string
	locality  string
	hc        *http.Client
}

func NewNominatim(cfg config.MapsConfig, hc *http.Client) *Nominatim {
	if hc == nil {
		hc = &http.Client{}
	}
	return &Nominatim{
		baseURL:   strings.TrimRight(cfg.NominatimURL, "/"),
		userAgent: cfg.UserAgent,
		locality:  cfg.Locality,
		hc:        hc,
	}
}

func (n *Nominatim) Geocode(ctx context.Context, query string) *Location {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	loc, err := n.search(ctx, query)
	if err != nil {
		slog.Warn("nominatim geocode failed", "query", query, "error", err)
		return nil
	}
	return loc
}

type nominatimHit struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

func (n *Nominatim) search(ctx context.Context, query string) (*Location, error) {
	ctx, cancel := context.WithTimeout(ctx, geocodeTimeout)
	defer cancel()

	q := url.Values{}
	q.Set("q", withLocality(query, n.locality))
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("search failed (status %d): %s", resp.StatusCode, msg)
	}

	var hits []nominatimHit
	if err := json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	if len(hits) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(hits[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing lat %q: %w", hits[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(hits[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing lon %q: %w", hits[0].Lon, err)
	}
	label := hits[0].DisplayName
	if label == "" {
		label = query
	}
	return &Location{Label: label, Lat: lat, Lon: lon}, nil
}
