package geo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/steveyiyo/guide-backend/internal/config"
)

const (
	routeTimeout = 10 * time.Second
	orsPath      = "/v2/directions/driving-car/geojson"
)

// ORS computes driving routes with OpenRouteService.
type ORS struct {
	apiKey  string
	baseURL string
	hc      *http.Client
}

func NewORS(cfg config.MapsConfig, hc *http.Client) *ORS {
	if hc == nil {
		hc = &http.Client{}
	}
	return &ORS{apiKey: cfg.ORSKey, baseURL: strings.TrimRight(cfg.ORSBaseURL, "/"), hc: hc}
}

// Route never fails: without a key, or when the provider errors, it returns
// StraightLine(start, end).
func (o *ORS) Route(ctx context.Context, start, end Point) Route {
	if o.apiKey == "" {
		slog.Warn("no routing key configured, returning straight line")
		return StraightLine(start, end)
	}
	r, err := o.directions(ctx, start, end)
	if err != nil {
		slog.Warn("routing failed, returning straight line", "error", err)
		return StraightLine(start, end)
	}
	return r
}

type orsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

func (o *ORS) directions(ctx context.Context, start, end Point) (Route, error) {
	ctx, cancel := context.WithTimeout(ctx, routeTimeout)
	defer cancel()

	body, err := json.Marshal(map[string][][]float64{
		"coordinates": {{start.Lng(), start.Lat()}, {end.Lng(), end.Lat()}},
	})
	if err != nil {
		return Route{}, fmt.Errorf("marshalling request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+orsPath, bytes.NewReader(body))
	if err != nil {
		return Route{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", o.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.hc.Do(req)
	if err != nil {
		return Route{}, fmt.Errorf("directions request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Route{}, fmt.Errorf("directions failed (status %d): %s", resp.StatusCode, msg)
	}

	var out orsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Route{}, fmt.Errorf("decoding directions: %w", err)
	}
	if len(out.Features) == 0 || len(out.Features[0].Geometry.Coordinates) == 0 {
		return Route{}, fmt.Errorf("directions returned no route")
	}
	f := out.Features[0]
	return Route{
		Coordinates: f.Geometry.Coordinates,
		Distance:    f.Properties.Summary.Distance,
		Duration:    f.Properties.Summary.Duration,
	}, nil
}
