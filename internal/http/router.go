package http

import (
	nethttp "net/http"
	"sync/atomic"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/steveyiyo/guide-backend/docs"
	"github.com/steveyiyo/guide-backend/internal/config"
	"github.com/steveyiyo/guide-backend/internal/core/geo"
	"github.com/steveyiyo/guide-backend/internal/core/pipeline"
	"github.com/steveyiyo/guide-backend/internal/core/speech"
	"github.com/steveyiyo/guide-backend/internal/core/translate"
	"github.com/steveyiyo/guide-backend/internal/http/handlers"
	"github.com/steveyiyo/guide-backend/internal/http/web"
	"github.com/steveyiyo/guide-backend/pkg/ws"
)

// Services is everything the router hands to its handlers. Geocoder and
// Router are nil when maps are disabled.
type Services struct {
	Pipeline    *pipeline.Pipeline
	Translator  translate.Translator
	Synthesizer speech.Synthesizer
	Geocoder    geo.Geocoder
	Router      geo.Router
	Hub         *ws.Hub
	Ready       *atomic.Bool
}

func NewRouter(cfg config.Config, svc Services) *gin.Engine {
	r := gin.New()
	r.Use(requestID(), accessLog(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", requestIDHeader},
		ExposeHeaders:   []string{"X-Detected-Language", requestIDHeader},
	}))

	tmpl, err := web.Templates()
	if err != nil {
		panic(err)
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", nethttp.FS(web.Static()))

	mapsOn := cfg.Maps.Enabled && svc.Geocoder != nil && svc.Router != nil

	ph := handlers.NewPagesHandler(mapsOn)
	ch := handlers.NewChatHandler(svc.Pipeline)
	sh := handlers.NewSpeechHandler(svc.Pipeline)
	th := handlers.NewTTSHandler(svc.Synthesizer)
	trh := handlers.NewTranslateHandler(svc.Translator)
	wsh := handlers.NewStreamHandler(svc.Hub, svc.Pipeline)
	hh := handlers.NewHealthHandler(svc.Ready)

	r.GET("/", ph.Index)
	r.GET("/plan", ph.Plan)
	r.GET("/destinations", ph.Destinations)
	r.GET("/compare", ph.Compare)
	r.GET("/chat", ph.Chat)
	r.POST("/chat", ch.Chat)
	r.POST("/speech", sh.Speech)
	r.GET("/ws/chat", wsh.WS)

	api := r.Group("/api")
	api.POST("/tts", th.Synthesize)
	api.POST("/translate", trh.Translate)
	if mapsOn {
		mh := handlers.NewMapsHandler(svc.Geocoder, svc.Router, cfg.Maps.ORSKey)
		api.GET("/map-key", mh.MapKey)
		api.POST("/route", mh.Route)
		api.GET("/geocode", mh.Geocode)
		api.GET("/places", mh.Places)
	}

	r.GET("/healthz", hh.Healthz)
	r.GET("/readyz", hh.Readyz)
	r.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	)))
	return r
}
