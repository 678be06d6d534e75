package handlers

import (
	"unit-codex/internal/middleware"

	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and exposes the logged-in admin and CSRF token to
// every template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if session := middleware.Session(c); session != nil {
		data["CurrentUsername"] = session.Username
		data["CsrfToken"] = session.CsrfToken
	}

	c.HTML(status, tmpl, data)
}
