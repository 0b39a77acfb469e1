package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"betulabla_backend/internals/features/program/outreach/controller"
)

// OutreachUserRoutes: dashboard CRUD for authenticated staff
func OutreachUserRoutes(api fiber.Router, db *gorm.DB) {
	outreachCtrl := controller.NewOutreachController(db)

	outreach := api.Group("/outreach")
	outreach.Post("/", outreachCtrl.CreateOutreach)
	outreach.Get("/", outreachCtrl.GetAllOutreach)
	outreach.Get("/:id", outreachCtrl.GetOutreachByID)
	outreach.Patch("/:id", outreachCtrl.UpdateOutreach)
}

// OutreachAdminRoutes: destructive actions (admin group)
func OutreachAdminRoutes(api fiber.Router, db *gorm.DB) {
	outreachCtrl := controller.NewOutreachController(db)

	outreach := api.Group("/outreach")
	outreach.Delete("/:id", outreachCtrl.DeleteOutreach)
}

// OutreachPublicRoutes: read surface for the marketing site
func OutreachPublicRoutes(api fiber.Router, db *gorm.DB) {
	outreachCtrl := controller.NewOutreachController(db)

	outreach := api.Group("/outreach")
	outreach.Get("/", outreachCtrl.GetPublicOutreach)
}
