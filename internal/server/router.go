package server

import (
	"unit-codex/internal/auth"
	"unit-codex/internal/config"
	"unit-codex/internal/handlers"
	"unit-codex/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*.html")

	h := handlers.New(db, cfg)
	sessions := auth.NewSessionManager(db)

	// public catalog
	r.GET("/", h.Index)
	r.GET("/search", h.Search)
	r.GET("/units/:slug", h.UnitDetail)

	// login is under /admin but outside the session gate; a valid cookie
	// still resolves so logged-in admins get bounced to the dashboard
	login := r.Group("/admin", middleware.AttachSession(sessions))
	login.GET("/login", h.ShowLogin)
	login.POST("/login", h.Login)

	admin := r.Group("/admin", middleware.RequireAdmin(sessions, cfg.Production))
	admin.GET("", h.AdminUnits)

	// every admin mutation goes through the CSRF check
	mutate := admin.Group("", middleware.RequireCsrf())
	mutate.POST("/logout", h.Logout)

	admin.GET("/units/new", h.ShowNewUnit)
	mutate.POST("/units/new", h.CreateUnit)
	admin.GET("/units/:id/edit", h.ShowEditUnit)
	mutate.POST("/units/:id/edit", h.UpdateUnit)
	mutate.POST("/units/:id/delete", h.DeleteUnit)

	admin.GET("/units/:id/models", h.AdminUnitModels)
	admin.GET("/units/:id/models/new", h.ShowNewModel)
	mutate.POST("/units/:id/models/new", h.CreateModel)
	admin.GET("/units/:id/models/:modelID/edit", h.ShowEditModel)
	mutate.POST("/units/:id/models/:modelID/edit", h.UpdateModel)
	mutate.POST("/units/:id/models/:modelID/delete", h.DeleteModel)

	admin.GET("/models/:modelID/equipment", h.ModelEquipment)
	admin.GET("/models/:modelID/equipment/new", h.ShowNewEquipment)
	mutate.POST("/models/:modelID/equipment/new", h.CreateEquipment)
	admin.GET("/models/:modelID/equipment/:optionID/edit", h.ShowEditEquipment)
	mutate.POST("/models/:modelID/equipment/:optionID/edit", h.UpdateEquipment)
	mutate.POST("/models/:modelID/equipment/:optionID/remove", h.RemoveEquipment)
	mutate.POST("/models/:modelID/equipment/:optionID/associate", h.AssociateEquipment)
	mutate.POST("/models/:modelID/equipment/:optionID/set-default", h.SetDefaultEquipment)
	mutate.POST("/models/:modelID/equipment/:optionID/unset-default", h.UnsetDefaultEquipment)

	return r
}
