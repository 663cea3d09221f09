package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quotepulse/internal/domain/dto"
	"github.com/guttosm/quotepulse/internal/middleware"
	"github.com/guttosm/quotepulse/internal/service"
)

// Handler provides HTTP handlers for the stock quote endpoint.
//
// Responsibilities:
//   - Extract the symbol from the request path
//   - Delegate the lookup to the quote service
//   - Map service errors to HTTP status codes
//   - Return structured JSON responses
type Handler struct {
	svc service.QuoteService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.QuoteService): Service used to build quotes.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.QuoteService) *Handler {
	return &Handler{svc: svc}
}

// GetQuote handles GET /api/stock/{symbol} requests.
//
// The symbol is passed to the service exactly as it appears in the path.
//
// Responses:
//   - 200 OK: QuoteResponse with snapshot, 30-day history and metrics.
//   - 404 Not Found: No snapshot or no history for the symbol.
//   - 500 Internal Server Error: Provider or conversion failure.
//
// GetQuote godoc
// @Summary      Get stock quote
// @Description  Returns current quote data, 30 days of daily history and summary metrics for a symbol
// @Tags         stock
// @Produce      json
// @Param        symbol  path      string  true  "Ticker symbol" example(AAPL)
// @Success      200     {object}  dto.QuoteResponse  "Success"
// @Failure      404     {object}  dto.ErrorResponse  "Not Found"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/stock/{symbol} [get]
func (h *Handler) GetQuote(c *gin.Context) {
	symbol := c.Param("symbol")
	if strings.TrimSpace(symbol) == "" {
		middleware.AbortWithError(c, http.StatusNotFound, "symbol is required", nil)
		return
	}

	quote, err := h.svc.GetQuote(c.Request.Context(), symbol)
	if err != nil {
		status := http.StatusInternalServerError
		if service.IsNotFound(err) {
			status = http.StatusNotFound
		}
		middleware.AbortWithError(c, status, "", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}
