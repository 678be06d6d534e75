// Package handlers wires HTTP requests to the repositories, forms and
// presenters, and renders the results.
package handlers

import (
	"net/http"
	"strconv"

	"unit-codex/internal/auth"
	"unit-codex/internal/config"
	"unit-codex/internal/repo"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handlers struct {
	cfg       *config.Config
	units     *repo.UnitRepository
	models    *repo.ModelRepository
	equipment *repo.EquipmentRepository
	users     *repo.UserRepository
	sessions  *auth.SessionManager
}

func New(db *gorm.DB, cfg *config.Config) *Handlers {
	return &Handlers{
		cfg:       cfg,
		units:     repo.NewUnitRepository(db),
		models:    repo.NewModelRepository(db),
		equipment: repo.NewEquipmentRepository(db),
		users:     repo.NewUserRepository(db),
		sessions:  auth.NewSessionManager(db),
	}
}

// paramID parses a positive integer path parameter. On bad input it writes
// a 400 and reports false.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.String(http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
