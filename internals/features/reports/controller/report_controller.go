package controller

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	boreholeModel "betulabla_backend/internals/features/program/boreholes/model"
	orphanModel "betulabla_backend/internals/features/program/orphans/model"
	outreachModel "betulabla_backend/internals/features/program/outreach/model"
	"betulabla_backend/internals/features/reports/service"
	helper "betulabla_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

func sendPDF(c *fiber.Ctx, reportType string, pdfBytes []byte) error {
	filename := service.ReportFilename(reportType, time.Now())
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}

// =======================
// 📑 Orphan report
// =======================
func (ctrl *ReportController) OrphanReport(c *fiber.Ctx) error {
	var rows []orphanModel.OrphanModel
	if err := ctrl.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load orphans")
	}

	pdfBytes, err := service.RenderOrphanReport(rows, time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to render report")
	}
	return sendPDF(c, "orphans", pdfBytes)
}

// =======================
// 📑 Borehole report
// =======================
func (ctrl *ReportController) BoreholeReport(c *fiber.Ctx) error {
	var rows []boreholeModel.BoreholeModel
	if err := ctrl.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load boreholes")
	}

	pdfBytes, err := service.RenderBoreholeReport(rows, time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to render report")
	}
	return sendPDF(c, "boreholes", pdfBytes)
}

// =======================
// 📑 Outreach report
// =======================
func (ctrl *ReportController) OutreachReport(c *fiber.Ctx) error {
	var rows []outreachModel.OutreachModel
	if err := ctrl.DB.Order("date DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load outreach activities")
	}

	pdfBytes, err := service.RenderOutreachReport(rows, time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to render report")
	}
	return sendPDF(c, "outreach", pdfBytes)
}

// =======================
// 📑 Comprehensive report
// =======================
func (ctrl *ReportController) ComprehensiveReport(c *fiber.Ctx) error {
	var orphans []orphanModel.OrphanModel
	if err := ctrl.DB.Order("created_at DESC").Find(&orphans).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load orphans")
	}

	var boreholes []boreholeModel.BoreholeModel
	if err := ctrl.DB.Order("created_at DESC").Find(&boreholes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load boreholes")
	}

	var outreach []outreachModel.OutreachModel
	if err := ctrl.DB.Order("date DESC").Find(&outreach).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load outreach activities")
	}

	pdfBytes, err := service.RenderComprehensiveReport(orphans, boreholes, outreach, time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to render report")
	}
	return sendPDF(c, "comprehensive", pdfBytes)
}
