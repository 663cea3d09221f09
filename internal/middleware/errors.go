package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quotepulse/internal/domain/dto"
	"github.com/guttosm/quotepulse/internal/logger"
)

// ErrorHandler turns errors attached with c.Error into a 500 response when
// the handler did not write one itself.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.Ctx(c.Request.Context()).Error().Err(err).Msg("unhandled request error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError aborts the chain with status and a {"detail": ...} body built from msg and err.
func AbortWithError(c *gin.Context, status int, msg string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(msg, err))
}
