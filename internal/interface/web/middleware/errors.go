package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-uploader/internal/domain"
)

// ErrorHandler renders errors pushed with c.Error as a generic page. The
// error text is logged, never shown.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := StatusFor(err)
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("url", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Error(err),
		)

		if c.Writer.Written() {
			return
		}

		u, _ := CurrentUser(c)
		c.HTML(status, "error.html", gin.H{
			"Title":   http.StatusText(status),
			"User":    u,
			"Status":  status,
			"Message": publicMessage(status),
		})
	}
}

func StatusFor(err error) int {
	var um *domain.UnsupportedMediaError
	switch {
	case errors.As(err, &um) && um.TooLarge:
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrUnsupportedMedia):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUpstreamStorage):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func publicMessage(status int) string {
	switch status {
	case http.StatusBadGateway:
		return "File storage is temporarily unavailable. Please try again later."
	case http.StatusNotFound:
		return "The page you are looking for does not exist."
	case http.StatusUnauthorized:
		return MsgUnauthorized
	case http.StatusInternalServerError:
		return "Something went wrong. Please try again later."
	default:
		return http.StatusText(status)
	}
}
