package controller

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"betulabla_backend/internals/features/approval/dto"
	"betulabla_backend/internals/features/approval/service"
	boreholeModel "betulabla_backend/internals/features/program/boreholes/model"
	orphanModel "betulabla_backend/internals/features/program/orphans/model"
	outreachModel "betulabla_backend/internals/features/program/outreach/model"
	helper "betulabla_backend/internals/helpers"
)

var validateApproval = validator.New()

type ApprovalController struct {
	DB *gorm.DB
}

func NewApprovalController(db *gorm.DB) *ApprovalController {
	return &ApprovalController{DB: db}
}

// =======================
// 📋 Merged pending queue
// =======================
func (ctrl *ApprovalController) ListPending(c *fiber.Ctx) error {
	var orphans []orphanModel.OrphanModel
	if err := ctrl.DB.Where("status = ?", orphanModel.OrphanStatusPending).Find(&orphans).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load pending orphans")
	}

	var boreholes []boreholeModel.BoreholeModel
	if err := ctrl.DB.Where("status = ?", boreholeModel.BoreholeStatusPending).Find(&boreholes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load pending boreholes")
	}

	var activities []outreachModel.OutreachModel
	if err := ctrl.DB.Where("status = ?", outreachModel.OutreachStatusPending).Find(&activities).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load pending outreach activities")
	}

	orphanItems := make([]service.PendingItem, 0, len(orphans))
	for _, o := range orphans {
		orphanItems = append(orphanItems, service.OrphanPendingItem(o))
	}
	boreholeItems := make([]service.PendingItem, 0, len(boreholes))
	for _, b := range boreholes {
		boreholeItems = append(boreholeItems, service.BoreholePendingItem(b))
	}
	outreachItems := make([]service.PendingItem, 0, len(activities))
	for _, a := range activities {
		outreachItems = append(outreachItems, service.OutreachPendingItem(a))
	}

	merged := service.MergePending(orphanItems, boreholeItems, outreachItems)
	return helper.JsonOK(c, "", fiber.Map{
		"items": merged,
		"count": len(merged),
	})
}

// =======================
// ✅ Decide on a pending item
// =======================
// The status update is conditional on the row still being pending, so
// two reviewers racing on the same item cannot both win.
func (ctrl *ApprovalController) Decide(c *fiber.Ctx) error {
	var body dto.DecideRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateApproval.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	table, err := service.TableForItemType(body.ItemType)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	newStatus, err := service.DecisionStatus(body.Decision)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := ctrl.DB.Table(table).
		Where("id = ? AND status = ?", body.ID, "pending").
		Update("status", newStatus)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to apply decision")
	}
	if res.RowsAffected == 0 {
		// either the id does not exist or someone already decided
		return helper.JsonError(c, fiber.StatusConflict, "Item is no longer pending")
	}

	return helper.JsonUpdated(c, fmt.Sprintf("Item %s", newStatus), fiber.Map{
		"id":        body.ID,
		"item_type": body.ItemType,
		"status":    newStatus,
	})
}
