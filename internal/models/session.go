package models

import "time"

// Session is a server-side login session. The opaque SessionID is what the
// cookie carries; rows are removed on logout, on first access past expiry,
// or by periodic cleanup.
type Session struct {
	ID        uint      `gorm:"primaryKey"`
	SessionID string    `gorm:"size:64;uniqueIndex;not null"`
	UserID    uint      `gorm:"index;not null"`
	CsrfToken string    `gorm:"size:64;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time

	User AdminUser `gorm:"constraint:OnDelete:CASCADE"`
}
