package auth

import (
	"errors"
	"time"

	"unit-codex/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionTTL is the absolute session lifetime. There is no sliding expiry.
const SessionTTL = 24 * time.Hour

// SessionData is the resolved identity attached to authenticated requests.
type SessionData struct {
	UserID    uint
	Username  string
	CsrfToken string
	SessionID string
}

// SessionManager owns the server-side session rows.
type SessionManager struct {
	db *gorm.DB
}

func NewSessionManager(db *gorm.DB) *SessionManager {
	return &SessionManager{db: db}
}

// Create issues a fresh session for the user and returns the opaque session
// id and its CSRF token.
func (m *SessionManager) Create(userID uint) (sessionID, csrfToken string, err error) {
	sessionID = uuid.NewString()
	csrfToken = GenerateCsrfToken()

	row := models.Session{
		SessionID: sessionID,
		UserID:    userID,
		CsrfToken: csrfToken,
		ExpiresAt: time.Now().Add(SessionTTL),
	}
	if err := m.db.Create(&row).Error; err != nil {
		return "", "", err
	}
	return sessionID, csrfToken, nil
}

// Validate resolves a session id. Unknown ids return (nil, nil); an expired
// session is destroyed as a side effect and also reported as absent.
func (m *SessionManager) Validate(sessionID string) (*SessionData, error) {
	var row struct {
		UserID    uint
		Username  string
		CsrfToken string
		SessionID string
		ExpiresAt time.Time
	}
	err := m.db.Model(&models.Session{}).
		Select("sessions.user_id, admin_users.username, sessions.csrf_token, sessions.session_id, sessions.expires_at").
		Joins("JOIN admin_users ON admin_users.id = sessions.user_id").
		Where("sessions.session_id = ?", sessionID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if row.ExpiresAt.Before(time.Now()) {
		if err := m.Destroy(sessionID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return &SessionData{
		UserID:    row.UserID,
		Username:  row.Username,
		CsrfToken: row.CsrfToken,
		SessionID: row.SessionID,
	}, nil
}

// Destroy removes the session unconditionally. Removing a nonexistent
// session is not an error.
func (m *SessionManager) Destroy(sessionID string) error {
	return m.db.Where("session_id = ?", sessionID).Delete(&models.Session{}).Error
}

// CleanExpired purges all sessions past their expiry and returns how many
// rows were removed.
func (m *SessionManager) CleanExpired() (int64, error) {
	res := m.db.Where("expires_at < ?", time.Now()).Delete(&models.Session{})
	return res.RowsAffected, res.Error
}
