package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quotepulse/config"
	"github.com/guttosm/quotepulse/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler).
//   - Scopes CORS, RateLimiter and the request timeout to the quote routes.
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures the quote route (/api/stock/:symbol).
//
// Note:
//   - The health endpoint (/api/health) is registered in app.InitializeApp()
//     and sits outside the quote group, so it is never rate limited.
//
// Parameters:
//   - handler (*Handler): The HTTP handler with business logic.
//   - cfg (config.Config): Server, CORS and rate limit settings.
//
// Returns:
//   - *gin.Engine: Configured Gin router.
func NewRouter(handler *Handler, cfg config.Config) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
	)

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API ──────────────────────────────────────
	stock := router.Group("/api/stock",
		middleware.CORS(cfg.CORS.AllowedOrigins),
		middleware.RateLimiter(cfg.RateLimit.PerMinute, time.Minute),
		middleware.Timeout(cfg.Server.RequestTimeout),
	)
	{
		stock.GET("/:symbol", handler.GetQuote)
		// preflight needs a matching route for the group's CORS middleware to run
		stock.OPTIONS("/:symbol", noContent)
	}

	return router
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
