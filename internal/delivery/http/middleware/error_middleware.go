package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"simply-jobs-backend/internal/delivery/http/response"
	"simply-jobs-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors attached to the gin context into the
// response envelope. AppErrors keep their status and message; anything else
// is logged and reported as a generic 500 so internals never leak.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		reqID, _ := c.Get("RequestID")
		slog.Error("unhandled error",
			"error", err,
			"path", c.FullPath(),
			"method", c.Request.Method,
			"request_id", reqID,
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
