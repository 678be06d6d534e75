package handlers

import (
	"errors"
	"net/http"

	"unit-codex/internal/models"
	"unit-codex/internal/presenter"
	"unit-codex/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Index lists every unit alphabetically.
func (h *Handlers) Index(c *gin.Context) {
	units, err := h.units.GetAll()
	if err != nil {
		logrus.Errorf("list units: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	render(c, http.StatusOK, "index.html", gin.H{"units": units})
}

// UnitDetail renders the full datasheet for one unit.
func (h *Handlers) UnitDetail(c *gin.Context) {
	aggregate, err := h.units.GetFullBySlug(c.Param("slug"))
	if errors.Is(err, repo.ErrNotFound) {
		render(c, http.StatusNotFound, "not_found.html", nil)
		return
	}
	if err != nil {
		logrus.Errorf("load unit %q: %v", c.Param("slug"), err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	render(c, http.StatusOK, "unit_detail.html", gin.H{
		"presenter": presenter.NewUnitPresenter(aggregate),
	})
}

// Search matches units by name substring.
func (h *Handlers) Search(c *gin.Context) {
	query := c.Query("q")

	var units []models.Unit
	if query != "" {
		var err error
		units, err = h.units.Search(query)
		if err != nil {
			logrus.Errorf("search units %q: %v", query, err)
			c.String(http.StatusInternalServerError, "internal error")
			return
		}
	}

	render(c, http.StatusOK, "search.html", gin.H{
		"query": query,
		"units": units,
	})
}
