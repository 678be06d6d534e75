package middleware

import (
	"net/http"

	"unit-codex/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// sessionKey is the gin context key carrying the resolved admin identity.
const sessionKey = "adminSession"

// LoginPath is where unauthenticated admin requests are sent.
const LoginPath = "/admin/login"

// RequireAdmin gates admin routes: a request without a valid session cookie
// is redirected to the login page. An invalid or expired cookie is cleared
// before redirecting. On success the resolved session is attached to the
// request context.
func RequireAdmin(sessions *auth.SessionManager, production bool) gin.HandlerFunc {
	cookieCfg := auth.SessionCookieConfig(production)

	return func(c *gin.Context) {
		cookie, err := c.Cookie(cookieCfg.Name)
		if err != nil || cookie == "" {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		data, err := sessions.Validate(cookie)
		if err != nil {
			logrus.Errorf("session lookup failed: %v", err)
			c.String(http.StatusInternalServerError, "internal error")
			c.Abort()
			return
		}
		if data == nil {
			clearSessionCookie(c, cookieCfg)
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		c.Set(sessionKey, data)
		c.Next()
	}
}

// AttachSession resolves the session when a cookie is present but never
// redirects. The login page uses it to bounce already-authenticated admins.
func AttachSession(sessions *auth.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(auth.SessionCookieName); err == nil && cookie != "" {
			if data, err := sessions.Validate(cookie); err == nil && data != nil {
				c.Set(sessionKey, data)
			}
		}
		c.Next()
	}
}

// RequireCsrf rejects mutating requests whose csrfToken form field does not
// match the session's token. Must run after RequireAdmin.
func RequireCsrf() gin.HandlerFunc {
	return func(c *gin.Context) {
		data := Session(c)
		if data == nil || !auth.ValidateCsrfToken(data.CsrfToken, c.PostForm("csrfToken")) {
			c.String(http.StatusForbidden, "invalid csrf token")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Session returns the identity attached by RequireAdmin or AttachSession,
// or nil.
func Session(c *gin.Context) *auth.SessionData {
	if v, ok := c.Get(sessionKey); ok {
		if data, ok := v.(*auth.SessionData); ok {
			return data
		}
	}
	return nil
}

func clearSessionCookie(c *gin.Context, cfg auth.CookieConfig) {
	c.SetSameSite(cfg.SameSite)
	c.SetCookie(cfg.Name, "", -1, cfg.Path, "", cfg.Secure, cfg.HTTPOnly)
}
