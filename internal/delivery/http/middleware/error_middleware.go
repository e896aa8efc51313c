package middleware

import (
	"errors"
	"net/http"
	"strings"

	"portfolio-site/internal/delivery/http/response"
	"portfolio-site/pkg/apperror"
	"portfolio-site/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorPage renders an HTML error page for non-API requests.
type ErrorPage func(c *gin.Context, status int, message string)

const genericErrorMessage = "An unexpected error occurred. Please try again later."

// ErrorHandler turns the last c.Error into a response. Paths under /api get
// the JSON envelope; everything else goes through page.
func ErrorHandler(page ErrorPage) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := http.StatusInternalServerError
		message := genericErrorMessage
		var details interface{}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status, message, details = appErr.Code, appErr.Message, appErr.Details
			if status >= 500 && appErr.Err != nil {
				logger.Log.Errorw("request failed", "status", status, "error", appErr.Err, "request_id", response.RequestID(c))
			}
		} else {
			// Never expose internal error details to clients.
			logger.Log.Errorw("internal server error", "error", err, "request_id", response.RequestID(c))
		}

		if IsAPIRequest(c) || page == nil {
			response.Error(c, status, message, details)
			return
		}
		page(c, status, message)
	}
}

// IsAPIRequest reports whether the request targets the JSON API.
func IsAPIRequest(c *gin.Context) bool {
	return strings.HasPrefix(c.Request.URL.Path, "/api/")
}
