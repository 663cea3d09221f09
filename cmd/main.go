package main

//
//  @title           quotepulse API
//  @version         1.0
//  @description     Stock quote, history and metrics service.
//  @termsOfService  https://github.com/guttosm/quotepulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/quotepulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        stock
//  @tag.description Stock quote lookups
//
//  @tag.name        health
//  @tag.description Liveness probe

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/guttosm/quotepulse/config"
	_ "github.com/guttosm/quotepulse/docs" // swagger docs
	"github.com/guttosm/quotepulse/internal/app"
	"github.com/guttosm/quotepulse/internal/domain/dto"
	"github.com/guttosm/quotepulse/internal/logger"
	"github.com/guttosm/quotepulse/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., provider connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runQuote performs a single lookup and writes the response payload as
// indented JSON to w.
func runQuote(ctx context.Context, svc service.QuoteService, symbol string, w io.Writer) error {
	if strings.TrimSpace(symbol) == "" {
		return errors.New("--symbol is required in quote mode")
	}

	quote, err := svc.GetQuote(ctx, symbol)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.NewQuoteResponse(quote))
}

// main is the entry point of the quotepulse application.
//
// Modes (selected via --mode flag):
//   - api:   Starts the REST API serving quotes and health.
//   - quote: Fetches one quote for --symbol, prints it as JSON and exits.
//
// Flags:
//   - --mode:   Execution mode ("api" or "quote"). Default: "api".
//   - --port:   Port for the API server. Defaults to value from config (SERVER_PORT).
//   - --symbol: Ticker symbol for quote mode.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init(config.AppConfig.Log.Level, config.AppConfig.Log.Pretty)

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or quote")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	symbol := flag.String("symbol", "", "Ticker symbol for quote mode")
	flag.Parse()

	switch *mode {
	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "quote":
		svc, cleanup, err := app.InitializeService(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		qctx, cancel := context.WithTimeout(ctx, config.AppConfig.Server.RequestTimeout)
		err = runQuote(qctx, svc, *symbol, os.Stdout)
		cancel()
		cleanup()
		if err != nil {
			logger.L().Error().Err(err).Str("symbol", *symbol).Msg("quote failed")
			os.Exit(1)
		}

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
