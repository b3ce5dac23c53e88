package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voice-enhancer/internal/api/errors"
)

// ErrorHandler recovers from panics in handlers and answers with a generic
// internal error; the process keeps serving.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := c.GetString(RequestIDKey)

		var apiErr *errors.APIError

		switch err := recovered.(type) {
		case *errors.APIError:
			apiErr = err
		case error:
			logger.Error("Internal server error",
				zap.Error(err),
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			apiErr = errors.NewInternalError("")
		default:
			logger.Error("Unknown panic occurred",
				zap.Any("recovered", recovered),
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
			)
			apiErr = errors.NewInternalError("")
		}

		apiErr.RequestID = requestID
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
	})
}

// HandleError writes err as a JSON error response. Errors that are not
// APIErrors are recorded on the context and answered with a generic 500.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	apiErr, ok := errors.As(err)
	if !ok {
		_ = c.Error(err)
		apiErr = errors.NewInternalError("")
	}

	apiErr.RequestID = c.GetString(RequestIDKey)
	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
}
