package handlers

import (
	"errors"
	"net/http"

	"unit-codex/internal/auth"
	"unit-codex/internal/middleware"
	"unit-codex/internal/repo"
	"unit-codex/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const badCredentials = "Invalid username or password"

func (h *Handlers) ShowLogin(c *gin.Context) {
	if middleware.Session(c) != nil {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{"errors": map[string]string{}})
}

func (h *Handlers) Login(c *gin.Context) {
	raw := map[string]string{
		"username": c.PostForm("username"),
		"password": c.PostForm("password"),
	}

	in, errs := validation.ValidateLogin(raw)
	if !errs.Valid() {
		render(c, http.StatusBadRequest, "login.html", gin.H{"errors": errs, "username": raw["username"]})
		return
	}

	user, err := h.users.FindByUsername(in.Username)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		logrus.Errorf("find user: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	if user == nil || !auth.VerifyPassword(in.Password, user.PasswordHash) {
		render(c, http.StatusBadRequest, "login.html", gin.H{
			"errors":   map[string]string{"username": badCredentials},
			"username": in.Username,
		})
		return
	}

	sessionID, _, err := h.sessions.Create(user.ID)
	if err != nil {
		logrus.Errorf("create session: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	h.setSessionCookie(c, sessionID)
	c.Redirect(http.StatusFound, "/admin")
}

func (h *Handlers) Logout(c *gin.Context) {
	if session := middleware.Session(c); session != nil {
		if err := h.sessions.Destroy(session.SessionID); err != nil {
			logrus.Errorf("destroy session: %v", err)
		}
	}

	h.clearSessionCookie(c)
	c.Redirect(http.StatusFound, middleware.LoginPath)
}

func (h *Handlers) setSessionCookie(c *gin.Context, sessionID string) {
	cfg := auth.SessionCookieConfig(h.cfg.Production)
	c.SetSameSite(cfg.SameSite)
	c.SetCookie(cfg.Name, sessionID, cfg.MaxAge, cfg.Path, "", cfg.Secure, cfg.HTTPOnly)
}

func (h *Handlers) clearSessionCookie(c *gin.Context) {
	cfg := auth.SessionCookieConfig(h.cfg.Production)
	c.SetSameSite(cfg.SameSite)
	c.SetCookie(cfg.Name, "", -1, cfg.Path, "", cfg.Secure, cfg.HTTPOnly)
}
