// Package repo contains the persistence layer. Every repository takes an
// explicit *gorm.DB so tests can run against isolated in-memory stores.
package repo

import "errors"

// ErrNotFound is returned when a requested entity does not exist. Callers
// branch on it with errors.Is to render 404 or empty states.
var ErrNotFound = errors.New("not found")
