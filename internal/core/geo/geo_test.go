package geo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/steveyiyo/guide-backend/internal/config"
)

func mapsConfig(nominatim string) config.MapsConfig {
	return config.MapsConfig{
		Enabled:      true,
		Locality:     "Kolkata",
		NominatimURL: nominatim,
		UserAgent:    "guide-test/1.0",
	}
}

func TestNominatimGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("q") != "Victoria Memorial, Kolkata" || q.Get("limit") != "1" || q.Get("format") != "json" {
			t.Errorf("unexpected query %v", q)
		}
		if r.Header.Get("User-Agent") != "guide-test/1.0" {
			t.Errorf("missing user agent")
		}
		_, _ = w.Write([]byte(`[{"display_name":"Victoria Memorial, Kolkata, West Bengal","lat":"22.5448","lon":"88.3426"}]`))
	}))
	defer srv.Close()

	n := NewNominatim(mapsConfig(srv.URL), srv.Client())
	loc := n.Geocode(context.Background(), "Victoria Memorial")
	if loc == nil {
		t.Fatal("expected a location")
	}
	want := Location{Label: "Victoria Memorial, Kolkata, West Bengal", Lat: 22.5448, Lon: 88.3426}
	if *loc != want {
		t.Fatalf("got %+v, want %+v", *loc, want)
	}
}

func TestNominatimGeocodeNil(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"no results": func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`[]`)) },
		"status":     func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusForbidden) },
		"malformed":  func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{"oops"`)) },
		"bad lat": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"display_name":"x","lat":"north","lon":"1"}]`))
		},
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(h)
			defer srv.Close()
			n := NewNominatim(mapsConfig(srv.URL), srv.Client())
			if loc := n.Geocode(context.Background(), "Nowhere"); loc != nil {
				t.Fatalf("expected nil, got %+v", loc)
			}
		})
	}
}

func TestNominatimEmptyQuery(t *testing.T) {
	n := NewNominatim(mapsConfig("http://127.0.0.1:1"), nil)
	if loc := n.Geocode(context.Background(), ""); loc != nil {
		t.Fatalf("expected nil, got %+v", loc)
	}
}

func TestNominatimLabelFallsBackToQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"lat":"22.5","lon":"88.3"}]`))
	}))
	defer srv.Close()
	loc := NewNominatim(mapsConfig(srv.URL), srv.Client()).Geocode(context.Background(), "Eden Gardens")
	if loc == nil || loc.Label != "Eden Gardens" {
		t.Fatalf("unexpected location %+v", loc)
	}
}

func TestGoogleGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/maps/api/geocode/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("address"); got != "Howrah Bridge, Kolkata" {
			t.Errorf("unexpected address %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","results":[{"formatted_address":"Howrah Bridge, Kolkata","geometry":{"location":{"lat":22.585,"lng":88.3468}}}]}`))
	}))
	defer srv.Close()

	cfg := mapsConfig("")
	cfg.GoogleKey = "AIzaTestKey"
	cfg.GoogleBaseURL = srv.URL
	g, err := NewGoogle(cfg, srv.Client())
	if err != nil {
		t.Fatalf("NewGoogle: %v", err)
	}
	loc := g.Geocode(context.Background(), "Howrah Bridge")
	if loc == nil || loc.Lat != 22.585 || loc.Lon != 88.3468 || loc.Label != "Howrah Bridge, Kolkata" {
		t.Fatalf("unexpected location %+v", loc)
	}
}

func TestGoogleGeocodeFailureIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid.","results":[]}`))
	}))
	defer srv.Close()

	cfg := mapsConfig("")
	cfg.GoogleKey = "AIzaTestKey"
	cfg.GoogleBaseURL = srv.URL
	g, err := NewGoogle(cfg, srv.Client())
	if err != nil {
		t.Fatalf("NewGoogle: %v", err)
	}
	if loc := g.Geocode(context.Background(), "Howrah Bridge"); loc != nil {
		t.Fatalf("expected nil, got %+v", loc)
	}
}

type staticGeocoder struct {
	mu    sync.Mutex
	hits  map[string]Location
	calls []string
}

func (s *staticGeocoder) Geocode(_ context.Context, q string) *Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, q)
	if loc, ok := s.hits[q]; ok {
		return &loc
	}
	return nil
}

func TestChainReturnsFirstHit(t *testing.T) {
	first := &staticGeocoder{hits: map[string]Location{}}
	second := &staticGeocoder{hits: map[string]Location{"Kalighat": {Label: "Kalighat", Lat: 22.52, Lon: 88.34}}}
	loc := Chain{first, second}.Geocode(context.Background(), "Kalighat")
	if loc == nil || loc.Label != "Kalighat" {
		t.Fatalf("unexpected %+v", loc)
	}
	if len(first.calls) != 1 || len(second.calls) != 1 {
		t.Fatalf("expected both geocoders consulted once, got %d and %d", len(first.calls), len(second.calls))
	}
	if (Chain{first}).Geocode(context.Background(), "Nowhere") != nil {
		t.Fatal("expected nil for no hit")
	}
}

type memCache struct {
	data    map[string]Location
	failGet bool
}

func (m *memCache) Get(_ context.Context, key string) (*Location, error) {
	if m.failGet {
		return nil, errors.New("connection refused")
	}
	if loc, ok := m.data[key]; ok {
		return &loc, nil
	}
	return nil, nil
}

func (m *memCache) Set(_ context.Context, key string, loc *Location) error {
	m.data[key] = *loc
	return nil
}

func TestCachedGeocoder(t *testing.T) {
	inner := &staticGeocoder{hits: map[string]Location{"Eden Gardens": {Label: "Eden Gardens", Lat: 22.56, Lon: 88.34}}}
	cache := &memCache{data: map[string]Location{}}
	g := NewCached(inner, cache)

	for i := 0; i < 3; i++ {
		if loc := g.Geocode(context.Background(), "Eden Gardens"); loc == nil {
			t.Fatal("expected a location")
		}
	}
	if len(inner.calls) != 1 {
		t.Fatalf("expected one upstream call, got %d", len(inner.calls))
	}
	if _, ok := cache.data["eden gardens"]; !ok {
		t.Fatalf("expected lowercased cache key, got %v", cache.data)
	}

	g.Geocode(context.Background(), "Nowhere")
	g.Geocode(context.Background(), "Nowhere")
	if len(inner.calls) != 3 {
		t.Fatalf("misses must not be cached, got %d calls", len(inner.calls))
	}
}

func TestCachedGeocoderSurvivesCacheErrors(t *testing.T) {
	inner := &staticGeocoder{hits: map[string]Location{"Esplanade": {Label: "Esplanade"}}}
	g := NewCached(inner, &memCache{data: map[string]Location{}, failGet: true})
	if loc := g.Geocode(context.Background(), "Esplanade"); loc == nil {
		t.Fatal("cache errors must fall through to the geocoder")
	}
}

func TestNewRedisCacheBadURL(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), "not-a-url://", 0); err == nil {
		t.Fatal("expected error for invalid url")
	}
}

func TestORSStraightLineWithoutKey(t *testing.T) {
	o := NewORS(config.MapsConfig{ORSBaseURL: "http://127.0.0.1:1"}, nil)
	pairs := [][2]Point{
		{{88.3426, 22.5448}, {88.3433, 22.5646}},
		{{0, 0}, {-1.5, 51.2}},
	}
	for _, p := range pairs {
		got := o.Route(context.Background(), p[0], p[1])
		want := Route{Coordinates: [][]float64{{p[0][0], p[0][1]}, {p[1][0], p[1][1]}}}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %+v, want %+v", got, want)
		}
	}
}

func TestORSRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != orsPath || r.Header.Get("Authorization") != "ors-key" {
			t.Errorf("unexpected request %s auth=%q", r.URL.Path, r.Header.Get("Authorization"))
		}
		var body map[string][][]float64
		_ = json.NewDecoder(r.Body).Decode(&body)
		if c := body["coordinates"]; len(c) != 2 || c[0][0] != 88.34 || c[0][1] != 22.54 || c[1][1] != 22.56 {
			t.Errorf("unexpected body %v", body)
		}
		_, _ = w.Write([]byte(`{"features":[{"geometry":{"coordinates":[[88.34,22.54],[88.345,22.55],[88.343,22.56]]},"properties":{"summary":{"distance":2500.5,"duration":420}}}]}`))
	}))
	defer srv.Close()

	o := NewORS(config.MapsConfig{ORSKey: "ors-key", ORSBaseURL: srv.URL}, srv.Client())
	got := o.Route(context.Background(), Point{88.34, 22.54}, Point{88.343, 22.56})
	if len(got.Coordinates) != 3 || got.Distance != 2500.5 || got.Duration != 420 {
		t.Fatalf("unexpected route %+v", got)
	}
}

func TestORSFailureFallsBack(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"status": func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusForbidden) },
		"empty":  func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{"features":[]}`)) },
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(h)
			defer srv.Close()
			o := NewORS(config.MapsConfig{ORSKey: "k", ORSBaseURL: srv.URL}, srv.Client())
			start, end := Point{1, 2}, Point{3, 4}
			if got := o.Route(context.Background(), start, end); !reflect.DeepEqual(got, StraightLine(start, end)) {
				t.Fatalf("expected straight line, got %+v", got)
			}
		})
	}
}

func TestSplitPlaces(t *testing.T) {
	got := SplitPlaces("Victoria Memorial, Howrah Bridge and Park Street, NM and  ")
	want := []string{"Victoria Memorial", "Howrah Bridge", "Park Street"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPlaces(t *testing.T) {
	g := &staticGeocoder{hits: map[string]Location{
		"Victoria Memorial": {Label: "Victoria Memorial"},
		"Park Street":       {Label: "Park Street"},
	}}
	got := Places(context.Background(), g, "Victoria Memorial, Atlantis and Park Street")
	if len(got) != 2 || got[0].Label != "Victoria Memorial" || got[1].Label != "Park Street" {
		t.Fatalf("unexpected places %+v", got)
	}
	if Places(context.Background(), g, "Atlantis, El Dorado") != nil {
		t.Fatal("expected nil when nothing resolves")
	}
	if Places(context.Background(), nil, "Park Street") != nil {
		t.Fatal("expected nil without a geocoder")
	}
	if !strings.Contains(strings.Join(g.calls, "|"), "Atlantis") {
		t.Fatal("every phrase should be looked up")
	}
}
