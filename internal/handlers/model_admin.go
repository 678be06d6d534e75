package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"unit-codex/internal/forms"
	"unit-codex/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func (h *Handlers) ShowNewModel(c *gin.Context) {
	unitID, ok := h.unitExists(c)
	if !ok {
		return
	}
	form := forms.NewModelForm(h.models, unitID)
	render(c, http.StatusOK, "model_form.html", gin.H{"form": form})
}

func (h *Handlers) CreateModel(c *gin.Context) {
	unitID, ok := h.unitExists(c)
	if !ok {
		return
	}
	form := forms.NewModelForm(h.models, unitID)
	h.submitModelForm(c, form)
}

func (h *Handlers) ShowEditModel(c *gin.Context) {
	form, ok := h.loadModelForm(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "model_form.html", gin.H{"form": form})
}

func (h *Handlers) UpdateModel(c *gin.Context) {
	form, ok := h.loadModelForm(c)
	if !ok {
		return
	}
	h.submitModelForm(c, form)
}

func (h *Handlers) DeleteModel(c *gin.Context) {
	unitID, ok := paramID(c, "id")
	if !ok {
		return
	}
	modelID, ok := paramID(c, "modelID")
	if !ok {
		return
	}

	deleted, err := h.models.Delete(modelID)
	if err != nil {
		logrus.Errorf("delete model: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	if !deleted {
		render(c, http.StatusNotFound, "not_found.html", nil)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/admin/units/%d/models", unitID))
}

func (h *Handlers) unitExists(c *gin.Context) (uint, bool) {
	unitID, ok := paramID(c, "id")
	if !ok {
		return 0, false
	}
	if _, err := h.units.GetByID(unitID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			render(c, http.StatusNotFound, "not_found.html", nil)
		} else {
			logrus.Errorf("load unit: %v", err)
			c.String(http.StatusInternalServerError, "internal error")
		}
		return 0, false
	}
	return unitID, true
}

func (h *Handlers) loadModelForm(c *gin.Context) (*forms.ModelForm, bool) {
	unitID, ok := paramID(c, "id")
	if !ok {
		return nil, false
	}
	modelID, ok := paramID(c, "modelID")
	if !ok {
		return nil, false
	}

	form, err := forms.LoadModelForm(h.models, unitID, modelID)
	if errors.Is(err, forms.ErrNotFound) {
		render(c, http.StatusNotFound, "not_found.html", nil)
		return nil, false
	}
	if err != nil {
		logrus.Errorf("load model form: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return nil, false
	}
	return form, true
}

func (h *Handlers) submitModelForm(c *gin.Context, form *forms.ModelForm) {
	_ = c.Request.ParseForm()

	ok, err := form.Submit(c.Request.PostForm)
	if err != nil {
		logrus.Errorf("save model: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	if !ok {
		render(c, http.StatusBadRequest, "model_form.html", gin.H{"form": form})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/admin/units/%d/models", form.UnitID()))
}
