package middleware

import (
	"log/slog"
	"net/http"

	"order-followup/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs the cause behind every 5xx the handlers produced and renders
// a public error when a handler aborted without writing a body.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		logServerErrors(c, logger)

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		resp := httperr.Response{Status: http.StatusInternalServerError}
		resp.Error.Message = "Internal server error"
		c.JSON(http.StatusInternalServerError, resp)
	}
}

func logServerErrors(c *gin.Context, logger *slog.Logger) {
	for _, err := range c.Errors {
		resp, ok := err.Meta.(httperr.Response)
		if !ok || resp.Status < http.StatusInternalServerError {
			continue
		}
		logger.Error("request failed",
			"request_id", GetRequestID(c),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", resp.Status,
			"message", resp.Error.Message,
			"error", err.Err,
		)
	}
}

func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("recovered from panic",
					"error", rec,
					"request_id", GetRequestID(c),
					"path", c.Request.URL.Path,
				)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
