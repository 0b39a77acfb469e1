package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"betulabla_backend/internals/features/reports/controller"
)

// ReportRoutes: PDF downloads for the dashboard
func ReportRoutes(api fiber.Router, db *gorm.DB) {
	reportCtrl := controller.NewReportController(db)

	reports := api.Group("/reports")
	reports.Get("/orphans", reportCtrl.OrphanReport)
	reports.Get("/boreholes", reportCtrl.BoreholeReport)
	reports.Get("/outreach", reportCtrl.OutreachReport)
	reports.Get("/comprehensive", reportCtrl.ComprehensiveReport)
}
