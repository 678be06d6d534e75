package auth

import "net/http"

// SessionCookieName is the cookie carrying the opaque session id.
const SessionCookieName = "session_id"

type CookieConfig struct {
	Name     string
	Path     string
	MaxAge   int
	HTTPOnly bool
	Secure   bool
	SameSite http.SameSite
}

// SessionCookieConfig derives the cookie settings from the production flag.
// Everything but Secure is fixed.
func SessionCookieConfig(production bool) CookieConfig {
	return CookieConfig{
		Name:     SessionCookieName,
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		HTTPOnly: true,
		Secure:   production,
		SameSite: http.SameSiteStrictMode,
	}
}
