package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/cafe-directory/internal/httperr"
)

// Recovery turns a panic into the usual JSON error body.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic recovered",
					zap.Any("error", rec),
					zap.String("request_id", RequestIDFromContext(c)),
				)
				httperr.Abort(c, http.StatusInternalServerError, httperr.TitleInternal, "Something went wrong.")
			}
		}()
		c.Next()
	}
}
