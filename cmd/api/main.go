package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/adapter/repo"
	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/http/handlers"
	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/http/httpapi"
	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/infra"
	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/infra/geoip"
	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/middleware"
	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/pricing"
	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/storage"
	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/studio"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	prices, err := pricing.LoadPriceList(cfg.PriceListPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load price list")
	}
	engine := pricing.NewEngine(prices)
	sessions := studio.NewManager(engine)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	images, err := storage.NewFileStore(cfg.ImageStoragePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init image storage")
	}

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	var lookup middleware.CountryLookup
	if resolver != nil {
		defer resolver.Close()
		lookup = resolver.CountryCode
	}

	orders := repo.NewQuoteOrderRepository(infra.NewSQLRunner(dbpool, logger))
	app := handlers.NewApp(logger, sessions, orders, images)
	router := httpapi.NewRouter(app, httpapi.Options{
		AllowedOrigins:  cfg.AllowedOrigins,
		DefaultLocale:   cfg.DefaultLocale,
		CountryLookup:   lookup,
		QuoteRatePerMin: cfg.QuoteRatePerMin,
	})
	server := infra.NewHTTPServer(cfg, router)

	// Abandoned sessions carry no persistence requirement past the visit.
	pruneDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if removed := sessions.Prune(cfg.SessionIdleTimeout); removed > 0 {
					logger.Debug().Int("removed", removed).Msg("pruned idle studio sessions")
				}
			case <-pruneDone:
				return
			}
		}
	}()

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	close(pruneDone)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
