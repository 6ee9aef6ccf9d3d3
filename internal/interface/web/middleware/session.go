package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-uploader/internal/application/ports"
	"file-uploader/internal/domain/user"
)

const (
	SessionCookie = "session"

	ctxUser = "user"
)

type CookieConfig struct {
	TTL    time.Duration
	Secure bool
}

// Session attaches the user behind a valid session cookie. A stale cookie is
// cleared and the request continues anonymously.
func Session(authService ports.Auth, cookie CookieConfig, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		u, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Debug("session rejected", zap.Error(err))
			ClearSessionCookie(c, cookie)
			c.Next()
			return
		}

		c.Set(ctxUser, u)
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (*user.User, bool) {
	v, ok := c.Get(ctxUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*user.User)
	return u, ok && u != nil
}

func SetSessionCookie(c *gin.Context, token string, cookie CookieConfig) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(cookie.TTL.Seconds()), "/", "", cookie.Secure, true)
}

func ClearSessionCookie(c *gin.Context, cookie CookieConfig) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", cookie.Secure, true)
}
