package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"betulabla_backend/internals/features/program/orphans/controller"
)

// OrphanUserRoutes: dashboard CRUD for authenticated staff
func OrphanUserRoutes(api fiber.Router, db *gorm.DB) {
	orphanCtrl := controller.NewOrphanController(db)

	orphans := api.Group("/orphans")
	orphans.Post("/", orphanCtrl.CreateOrphan)
	orphans.Get("/", orphanCtrl.GetAllOrphans)
	orphans.Get("/:id", orphanCtrl.GetOrphanByID)
	orphans.Patch("/:id", orphanCtrl.UpdateOrphan)
}

// OrphanAdminRoutes: destructive actions (admin group)
func OrphanAdminRoutes(api fiber.Router, db *gorm.DB) {
	orphanCtrl := controller.NewOrphanController(db)

	orphans := api.Group("/orphans")
	orphans.Delete("/:id", orphanCtrl.DeleteOrphan)
}

// OrphanPublicRoutes: read surface for the marketing site
func OrphanPublicRoutes(api fiber.Router, db *gorm.DB) {
	orphanCtrl := controller.NewOrphanController(db)

	orphans := api.Group("/orphans")
	orphans.Get("/", orphanCtrl.GetPublicOrphans)
}
