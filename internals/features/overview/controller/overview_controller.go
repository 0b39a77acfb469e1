package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	boreholeModel "betulabla_backend/internals/features/program/boreholes/model"
	orphanModel "betulabla_backend/internals/features/program/orphans/model"
	outreachModel "betulabla_backend/internals/features/program/outreach/model"
	helper "betulabla_backend/internals/helpers"
)

type OverviewController struct {
	DB *gorm.DB
}

func NewOverviewController(db *gorm.DB) *OverviewController {
	return &OverviewController{DB: db}
}

// =======================
// 📊 Dashboard stats
// =======================
// Any failed count fails the whole response. A dashboard showing a mix
// of real and missing numbers is worse than an error.
func (ctrl *OverviewController) GetOverview(c *fiber.Ctx) error {
	var orphanCount, boreholeCount, outreachCount int64
	if err := ctrl.DB.Model(&orphanModel.OrphanModel{}).Count(&orphanCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load overview stats")
	}
	if err := ctrl.DB.Model(&boreholeModel.BoreholeModel{}).Count(&boreholeCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load overview stats")
	}
	if err := ctrl.DB.Model(&outreachModel.OutreachModel{}).Count(&outreachCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load overview stats")
	}

	var pendingOrphans, pendingBoreholes, pendingOutreach int64
	if err := ctrl.DB.Model(&orphanModel.OrphanModel{}).
		Where("status = ?", orphanModel.OrphanStatusPending).
		Count(&pendingOrphans).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load overview stats")
	}
	if err := ctrl.DB.Model(&boreholeModel.BoreholeModel{}).
		Where("status = ?", boreholeModel.BoreholeStatusPending).
		Count(&pendingBoreholes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load overview stats")
	}
	if err := ctrl.DB.Model(&outreachModel.OutreachModel{}).
		Where("status = ?", outreachModel.OutreachStatusPending).
		Count(&pendingOutreach).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load overview stats")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"orphans":           orphanCount,
		"boreholes":         boreholeCount,
		"outreach":          outreachCount,
		"pending_approvals": pendingOrphans + pendingBoreholes + pendingOutreach,
	})
}
