// Command server runs the BabuMoshai Kolkata guide web service.
//
// Usage:
//
//	server [-config guide.yaml] [-version]
//
// @title        BabuMoshai Kolkata guide API
// @version      1.0
// @description  Multilingual Kolkata tourism guide: chat, voice, translation and maps.
// @BasePath     /
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/steveyiyo/guide-backend/internal/config"
	h "github.com/steveyiyo/guide-backend/internal/http"
	"github.com/steveyiyo/guide-backend/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	showVersion := flag.Bool("version", false, "print version and exit")
	configFile := flag.String("config", "", "path to config file (e.g. configs/guide.yaml)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("guide %s\n", version)
		return 0
	}

	_ = godotenv.Load()
	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return 1
	}

	logOut, logCloser := logging.Setup(cfg.Logging)
	defer logCloser.Close()
	slog.Info("guide starting", "version", version, "port", cfg.Server.Port)
	for _, key := range cfg.Missing() {
		slog.Warn("provider key not configured, feature will degrade", "key", key)
	}

	switch cfg.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = logOut
	gin.DefaultErrorWriter = logOut

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	svc, cleanup := h.NewServices(ctx, cfg)
	defer cleanup()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           h.NewRouter(cfg, svc),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := serve(ctx, srv, svc.Ready, svc.Hub.CloseAll); err != nil {
		slog.Error("http server failed", "error", err)
		return 1
	}
	slog.Info("guide stopped")
	return 0
}

// serve binds srv.Addr, reports ready once the listener is up and serves
// until ctx ends or the server fails. Readiness drops and beforeShutdown
// runs before connections are drained.
func serve(ctx context.Context, srv *http.Server, ready *atomic.Bool, beforeShutdown func()) error {
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	ready.Store(true)
	slog.Info("guide ready", "addr", ln.Addr().String())

	var serveErr error
	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining...")
	case err := <-errc:
		serveErr = fmt.Errorf("serving: %w", err)
	}
	ready.Store(false)
	if beforeShutdown != nil {
		beforeShutdown()
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown error", "error", err)
	}
	return serveErr
}
