package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/furqanmax/simplepos-printing/internal/application/printing"
	"github.com/furqanmax/simplepos-printing/internal/domain/layout"
	"github.com/furqanmax/simplepos-printing/internal/infrastructure/cache"
	"github.com/furqanmax/simplepos-printing/internal/infrastructure/config"
	"github.com/furqanmax/simplepos-printing/internal/infrastructure/logger"
	"github.com/furqanmax/simplepos-printing/internal/infrastructure/rendering"
	httpiface "github.com/furqanmax/simplepos-printing/internal/interfaces/http"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting SimplePOS printing service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port))

	formats := layout.NewFormatRegistry()
	styles := layout.NewStyleRegistry()

	planCache := cache.NewPlanCache(
		cache.WithPlanTTL(cfg.Cache.PlanTTL),
		cache.WithPlanCacheLogger(log),
	)
	defer planCache.Close()

	renderer, err := rendering.NewChromedpRenderer(&rendering.ChromedpConfig{
		DefaultTimeout: cfg.Renderer.Timeout,
		RemoteURL:      cfg.Renderer.RemoteURL,
		NoSandbox:      cfg.Renderer.NoSandbox,
		Logger:         log,
	})
	if err != nil {
		log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
	}
	defer renderer.Close()

	opts := []printing.LayoutServiceOption{
		printing.WithPDFRenderer(renderer),
		printing.WithDefaults(printing.Defaults{
			FormatID: layout.FormatID(cfg.Defaults.Format),
			StyleID:  layout.StyleID(cfg.Defaults.Style),
		}),
	}

	if cfg.Redis.Enabled {
		artifacts, err := cache.NewRedisArtifactCache(cache.RedisArtifactConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis artifact cache", zap.Error(err))
		}
		defer artifacts.Close()
		opts = append(opts, printing.WithArtifactCache(artifacts, cfg.Cache.ArtifactTTL))
		log.Info("Redis artifact cache enabled",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port))
	}

	service := printing.NewLayoutService(formats, styles, planCache, log, opts...)

	router := httpiface.NewRouter(service, log, cfg.App.Env)

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
