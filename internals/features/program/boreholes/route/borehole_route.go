package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"betulabla_backend/internals/features/program/boreholes/controller"
)

// BoreholeUserRoutes: dashboard CRUD for authenticated staff
func BoreholeUserRoutes(api fiber.Router, db *gorm.DB) {
	boreholeCtrl := controller.NewBoreholeController(db)

	boreholes := api.Group("/boreholes")
	boreholes.Post("/", boreholeCtrl.CreateBorehole)
	boreholes.Get("/", boreholeCtrl.GetAllBoreholes)
	boreholes.Get("/:id", boreholeCtrl.GetBoreholeByID)
	boreholes.Patch("/:id", boreholeCtrl.UpdateBorehole)
}

// BoreholeAdminRoutes: destructive actions (admin group)
func BoreholeAdminRoutes(api fiber.Router, db *gorm.DB) {
	boreholeCtrl := controller.NewBoreholeController(db)

	boreholes := api.Group("/boreholes")
	boreholes.Delete("/:id", boreholeCtrl.DeleteBorehole)
}

// BoreholePublicRoutes: read surface for the marketing site
func BoreholePublicRoutes(api fiber.Router, db *gorm.DB) {
	boreholeCtrl := controller.NewBoreholeController(db)

	boreholes := api.Group("/boreholes")
	boreholes.Get("/", boreholeCtrl.GetPublicBoreholes)
}
