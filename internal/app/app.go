package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quotepulse/config"
	"github.com/guttosm/quotepulse/internal/api"
	"github.com/guttosm/quotepulse/internal/logger"
	"github.com/guttosm/quotepulse/internal/service"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the market-data provider selected in configuration.
//   - Initializes the quote service on top of it.
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers the health endpoint.
//   - Provides a cleanup function to release provider resources.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	svc, cleanup, err := InitializeService(cfg)
	if err != nil {
		return nil, nil, err
	}

	handler := api.NewHandler(svc)

	router := api.NewRouter(handler, cfg)

	api.NewHealthHandler().Register(router)

	return router, cleanup, nil
}

// InitializeService wires the provider and quote service without any HTTP
// layer. Used by the one-shot quote mode of the binary.
func InitializeService(cfg config.Config) (service.QuoteService, func(), error) {
	p, err := providerOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize provider: %w", err)
	}

	logger.L().Info().
		Str("provider", p.Name()).
		Bool("parallel_fetch", cfg.Provider.ParallelFetch).
		Msg("quote provider ready")

	svc := service.NewQuoteService(p, cfg.Provider.ParallelFetch)

	cleanup := func() {
		if err := p.Close(); err != nil {
			logger.L().Warn().Err(err).Str("provider", p.Name()).Msg("provider close failed")
		}
	}

	return svc, cleanup, nil
}
