package http

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"sync/atomic"
	"time"

	"github.com/steveyiyo/guide-backend/internal/config"
	"github.com/steveyiyo/guide-backend/internal/core/gemini"
	"github.com/steveyiyo/guide-backend/internal/core/geo"
	"github.com/steveyiyo/guide-backend/internal/core/guide"
	"github.com/steveyiyo/guide-backend/internal/core/pipeline"
	"github.com/steveyiyo/guide-backend/internal/core/speech"
	"github.com/steveyiyo/guide-backend/internal/core/translate"
	"github.com/steveyiyo/guide-backend/pkg/ws"
)

// NewServices builds the provider clients from configuration. Missing keys
// never fail here; each feature degrades on its own. The returned func
// releases the optional cache connection.
func NewServices(ctx context.Context, cfg config.Config) (Services, func()) {
	// Per-call deadlines come from the clients' contexts.
	hc := &nethttp.Client{}

	tr := translate.New(cfg.Sarvam, hc)
	sp := speech.New(cfg.Sarvam, hc)

	var model guide.Model
	if gm, err := gemini.New(cfg.Gemini); err != nil {
		slog.Warn("gemini unavailable, replies will apologise", "error", err)
	} else {
		model = gm
	}
	gen := guide.NewGenerator(model, cfg.Guide.CompareTriggers)

	cleanup := func() {}
	deps := pipeline.Deps{
		Translator:  tr,
		Transcriber: sp,
		Synthesizer: sp,
		Responder:   gen,
		Speaker:     cfg.Sarvam.Speaker,
	}
	svc := Services{
		Translator:  tr,
		Synthesizer: sp,
		Hub:         ws.NewHub(),
		Ready:       &atomic.Bool{},
	}

	if cfg.Maps.Enabled {
		chain := geo.Chain{geo.NewNominatim(cfg.Maps, hc)}
		if cfg.Maps.GoogleKey != "" {
			if g, err := geo.NewGoogle(cfg.Maps, hc); err != nil {
				slog.Warn("google geocoder disabled", "error", err)
			} else {
				chain = append(chain, g)
			}
		}
		var geocoder geo.Geocoder = chain
		if cfg.Maps.RedisURL != "" {
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			cache, err := geo.NewRedisCache(pingCtx, cfg.Maps.RedisURL, cfg.Maps.CacheTTL)
			cancel()
			if err != nil {
				slog.Warn("geocode cache disabled", "error", err)
			} else {
				geocoder = geo.NewCached(chain, cache)
				cleanup = func() { _ = cache.Close() }
			}
		}
		deps.Geocoder = geocoder
		svc.Geocoder = geocoder
		svc.Router = geo.NewORS(cfg.Maps, hc)
	}

	svc.Pipeline = pipeline.New(deps)
	return svc, cleanup
}
