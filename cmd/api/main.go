package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/wichananm65/hbnb-backend/internal/config"
	"github.com/wichananm65/hbnb-backend/internal/infrastructure/database/inmemory"
	"github.com/wichananm65/hbnb-backend/internal/infrastructure/logging"
	"github.com/wichananm65/hbnb-backend/internal/infrastructure/metrics"
	"github.com/wichananm65/hbnb-backend/internal/interface/http/handler"
	"github.com/wichananm65/hbnb-backend/internal/interface/http/router"
	"github.com/wichananm65/hbnb-backend/internal/interface/presenter"
	"github.com/wichananm65/hbnb-backend/internal/seed"
	"github.com/wichananm65/hbnb-backend/internal/usecase"
)

// main wires dependencies (dependency injection) and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("load config")
	}
	log := logging.New("hbnb", cfg.Env, cfg.LogLevel)

	store := inmemory.NewStore()
	facade := usecase.NewFacade(store, log)

	if cfg.SeedFile != "" {
		mustSeed(log, facade, cfg.SeedFile)
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
		if err := m.RegisterStore(func() map[string]int {
			s := facade.Stats()
			return map[string]int{
				"users":     s.Users,
				"places":    s.Places,
				"amenities": s.Amenities,
				"reviews":   s.Reviews,
			}
		}); err != nil {
			log.Fatal().Err(err).Msg("register store metrics")
		}
	}

	p := presenter.New()
	app := router.New(router.Handlers{
		Users:     handler.NewUserHandler(facade, p),
		Amenities: handler.NewAmenityHandler(facade, p),
		Places:    handler.NewPlaceHandler(facade, facade, p),
		Reviews:   handler.NewReviewHandler(facade, p),
	}, router.Options{
		Logger:      log,
		CORSOrigins: cfg.CORSOrigins,
		Metrics:     m,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func mustSeed(log zerolog.Logger, facade *usecase.Facade, path string) {
	fx, err := seed.LoadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("load seed fixtures")
	}
	res, err := seed.Apply(facade, fx)
	if err != nil {
		log.Fatal().Err(err).Msg("apply seed fixtures")
	}
	log.Info().
		Int("users", res.Users).
		Int("amenities", res.Amenities).
		Int("places", res.Places).
		Int("reviews", res.Reviews).
		Msg("seed fixtures applied")
}
