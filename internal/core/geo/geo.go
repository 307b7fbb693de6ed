// Package geo resolves place names to coordinates and computes driving
// routes between two points. Every lookup is best effort: geocoders return
// nil and routers fall back to a straight line instead of failing.
package geo

import "context"

// Location is a geocoded place.
type Location struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// Point is a [longitude, latitude] pair, the order used by map clients and
// routing providers.
type Point [2]float64

func (p Point) Lng() float64 { return p[0] }
func (p Point) Lat() float64 { return p[1] }

// Route is a polyline with its length in metres and duration in seconds.
type Route struct {
	Coordinates [][]float64 `json:"coordinates"`
	Distance    float64     `json:"distance"`
	Duration    float64     `json:"duration"`
}

// StraightLine is the route used when no routing provider can answer.
func StraightLine(start, end Point) Route {
	return Route{
		Coordinates: [][]float64{{start.Lng(), start.Lat()}, {end.Lng(), end.Lat()}},
		Distance:    0,
		Duration:    0,
	}
}

type Geocoder interface {
	// Geocode returns nil when the place cannot be resolved.
	Geocode(ctx context.Context, query string) *Location
}

type Router interface {
	Route(ctx context.Context, start, end Point) Route
}

// Chain tries each geocoder in order and returns the first hit.
type Chain []Geocoder

func (c Chain) Geocode(ctx context.Context, query string) *Location {
	for _, g := range c {
		if loc := g.Geocode(ctx, query); loc != nil {
			return loc
		}
	}
	return nil
}

func withLocality(query, locality string) string {
	if locality == "" {
		return query
	}
	return query + ", " + locality
}
