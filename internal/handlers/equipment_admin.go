package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"unit-codex/internal/forms"
	"unit-codex/internal/models"
	"unit-codex/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ModelEquipment shows a model's attached equipment with default flags and
// the picker of options not yet associated.
func (h *Handlers) ModelEquipment(c *gin.Context) {
	modelID, model, ok := h.modelExists(c)
	if !ok {
		return
	}

	rows, err := h.equipment.GetForModel(modelID)
	if err != nil {
		logrus.Errorf("list equipment: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	available, err := h.equipment.UnassociatedOptions(modelID)
	if err != nil {
		logrus.Errorf("list unassociated options: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	render(c, http.StatusOK, "model_equipment.html", gin.H{
		"model":     model,
		"equipment": rows,
		"available": available,
	})
}

func (h *Handlers) ShowNewEquipment(c *gin.Context) {
	modelID, _, ok := h.modelExists(c)
	if !ok {
		return
	}
	form := forms.NewEquipmentOptionForm(h.equipment, modelID)
	render(c, http.StatusOK, "equipment_form.html", gin.H{"form": form})
}

func (h *Handlers) CreateEquipment(c *gin.Context) {
	modelID, _, ok := h.modelExists(c)
	if !ok {
		return
	}
	form := forms.NewEquipmentOptionForm(h.equipment, modelID)
	h.submitEquipmentForm(c, form)
}

func (h *Handlers) ShowEditEquipment(c *gin.Context) {
	form, ok := h.loadEquipmentForm(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "equipment_form.html", gin.H{"form": form})
}

func (h *Handlers) UpdateEquipment(c *gin.Context) {
	form, ok := h.loadEquipmentForm(c)
	if !ok {
		return
	}
	h.submitEquipmentForm(c, form)
}

// RemoveEquipment detaches an option from the model. The option itself is
// shared and survives.
func (h *Handlers) RemoveEquipment(c *gin.Context) {
	modelID, optionID, ok := h.equipmentParams(c)
	if !ok {
		return
	}

	removed, err := h.equipment.RemoveFromModel(modelID, optionID)
	if err != nil {
		logrus.Errorf("remove equipment: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	if !removed {
		render(c, http.StatusNotFound, "not_found.html", nil)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/admin/models/%d/equipment", modelID))
}

func (h *Handlers) AssociateEquipment(c *gin.Context) {
	modelID, _, ok := h.modelExists(c)
	if !ok {
		return
	}
	optionID, ok := paramID(c, "optionID")
	if !ok {
		return
	}

	if _, err := h.equipment.GetByID(optionID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			render(c, http.StatusNotFound, "not_found.html", nil)
		} else {
			logrus.Errorf("load option: %v", err)
			c.String(http.StatusInternalServerError, "internal error")
		}
		return
	}

	if err := h.equipment.Associate(modelID, optionID); err != nil {
		logrus.Errorf("associate equipment: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/admin/models/%d/equipment", modelID))
}

func (h *Handlers) SetDefaultEquipment(c *gin.Context) {
	h.toggleDefault(c, true)
}

func (h *Handlers) UnsetDefaultEquipment(c *gin.Context) {
	h.toggleDefault(c, false)
}

func (h *Handlers) toggleDefault(c *gin.Context, value bool) {
	modelID, optionID, ok := h.equipmentParams(c)
	if !ok {
		return
	}

	var err error
	if value {
		err = h.equipment.SetDefault(modelID, optionID)
	} else {
		err = h.equipment.UnsetDefault(modelID, optionID)
	}
	if err != nil {
		logrus.Errorf("toggle default equipment: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/admin/models/%d/equipment", modelID))
}

func (h *Handlers) modelExists(c *gin.Context) (uint, *models.Model, bool) {
	modelID, ok := paramID(c, "modelID")
	if !ok {
		return 0, nil, false
	}
	model, err := h.models.GetByID(modelID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			render(c, http.StatusNotFound, "not_found.html", nil)
		} else {
			logrus.Errorf("load model: %v", err)
			c.String(http.StatusInternalServerError, "internal error")
		}
		return 0, nil, false
	}
	return modelID, model, true
}

func (h *Handlers) equipmentParams(c *gin.Context) (modelID, optionID uint, ok bool) {
	modelID, ok = paramID(c, "modelID")
	if !ok {
		return 0, 0, false
	}
	optionID, ok = paramID(c, "optionID")
	if !ok {
		return 0, 0, false
	}
	return modelID, optionID, true
}

func (h *Handlers) loadEquipmentForm(c *gin.Context) (*forms.EquipmentOptionForm, bool) {
	modelID, optionID, ok := h.equipmentParams(c)
	if !ok {
		return nil, false
	}

	form, err := forms.LoadEquipmentOptionForm(h.equipment, modelID, optionID)
	if errors.Is(err, forms.ErrNotFound) {
		render(c, http.StatusNotFound, "not_found.html", nil)
		return nil, false
	}
	if err != nil {
		logrus.Errorf("load equipment form: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return nil, false
	}
	return form, true
}

func (h *Handlers) submitEquipmentForm(c *gin.Context, form *forms.EquipmentOptionForm) {
	_ = c.Request.ParseForm()

	ok, err := form.Submit(c.Request.PostForm)
	if err != nil {
		logrus.Errorf("save equipment option: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	if !ok {
		render(c, http.StatusBadRequest, "equipment_form.html", gin.H{"form": form})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/admin/models/%d/equipment", form.ModelID()))
}
