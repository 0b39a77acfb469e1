package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"betulabla_backend/internals/features/overview/controller"
)

func OverviewRoutes(api fiber.Router, db *gorm.DB) {
	overviewCtrl := controller.NewOverviewController(db)

	api.Get("/overview", overviewCtrl.GetOverview)
}
