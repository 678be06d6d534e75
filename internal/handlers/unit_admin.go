package handlers

import (
	"errors"
	"net/http"

	"unit-codex/internal/forms"
	"unit-codex/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AdminUnits is the admin landing page: every unit with edit links.
func (h *Handlers) AdminUnits(c *gin.Context) {
	units, err := h.units.GetAll()
	if err != nil {
		logrus.Errorf("list units: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	render(c, http.StatusOK, "admin_units.html", gin.H{"units": units})
}

func (h *Handlers) ShowNewUnit(c *gin.Context) {
	form := forms.NewUnitForm(h.units)
	render(c, http.StatusOK, "unit_form.html", gin.H{"form": form})
}

func (h *Handlers) CreateUnit(c *gin.Context) {
	form := forms.NewUnitForm(h.units)
	h.submitUnitForm(c, form)
}

func (h *Handlers) ShowEditUnit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	form, err := forms.LoadUnitForm(h.units, id)
	if errors.Is(err, forms.ErrNotFound) {
		render(c, http.StatusNotFound, "not_found.html", nil)
		return
	}
	if err != nil {
		logrus.Errorf("load unit form: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	render(c, http.StatusOK, "unit_form.html", gin.H{"form": form})
}

func (h *Handlers) UpdateUnit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	form, err := forms.LoadUnitForm(h.units, id)
	if errors.Is(err, forms.ErrNotFound) {
		render(c, http.StatusNotFound, "not_found.html", nil)
		return
	}
	if err != nil {
		logrus.Errorf("load unit form: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	h.submitUnitForm(c, form)
}

func (h *Handlers) submitUnitForm(c *gin.Context, form *forms.UnitForm) {
	_ = c.Request.ParseForm()

	ok, err := form.Submit(c.Request.PostForm)
	if err != nil {
		logrus.Errorf("save unit: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	if !ok {
		render(c, http.StatusBadRequest, "unit_form.html", gin.H{"form": form})
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

func (h *Handlers) DeleteUnit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.units.Delete(id)
	if err != nil {
		logrus.Errorf("delete unit: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	if !deleted {
		render(c, http.StatusNotFound, "not_found.html", nil)
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// AdminUnitModels shows a unit's models with equipment summaries and the
// model/equipment management links.
func (h *Handlers) AdminUnitModels(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	unit, err := h.units.GetByID(id)
	if errors.Is(err, repo.ErrNotFound) {
		render(c, http.StatusNotFound, "not_found.html", nil)
		return
	}
	if err != nil {
		logrus.Errorf("load unit: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	modelRows, err := h.models.GetForUnit(id)
	if err != nil {
		logrus.Errorf("list models: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	modelIDs := make([]uint, len(modelRows))
	for i, m := range modelRows {
		modelIDs[i] = m.ID
	}
	summaries, err := h.equipment.SummariesForModels(modelIDs)
	if err != nil {
		logrus.Errorf("equipment summaries: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	render(c, http.StatusOK, "admin_unit_models.html", gin.H{
		"unit":      unit,
		"models":    modelRows,
		"summaries": summaries,
	})
}
