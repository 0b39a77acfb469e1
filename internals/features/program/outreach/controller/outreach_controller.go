package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"betulabla_backend/internals/features/program/outreach/dto"
	"betulabla_backend/internals/features/program/outreach/model"
	helper "betulabla_backend/internals/helpers"
	"betulabla_backend/internals/helpers/storage"
)

var validateOutreach = validator.New()

type OutreachController struct {
	DB *gorm.DB
}

func NewOutreachController(db *gorm.DB) *OutreachController {
	return &OutreachController{DB: db}
}

// =======================
// ➕ Create outreach activity
// =======================
func (ctrl *OutreachController) CreateOutreach(c *fiber.Ctx) error {
	var body dto.CreateOutreachRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateOutreach.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var objectName string
	activity := body.ToModel()
	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		publicURL, obj, err := storage.UploadPhoto(storage.BucketOutreachPhotos, fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		activity.PhotoURL = &publicURL
		objectName = obj
	}

	if err := ctrl.DB.Create(&activity).Error; err != nil {
		if objectName != "" {
			_ = storage.DeleteObject(storage.BucketOutreachPhotos, objectName)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create outreach activity")
	}

	return helper.JsonCreated(c, "Outreach activity created", dto.ToOutreachDTO(activity))
}

// =======================
// 📄 List outreach activities (paginated)
// =======================
func (ctrl *OutreachController) GetAllOutreach(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.OutreachModel{})
	if status := c.Query("status"); status != "" {
		if !model.IsValidOutreachStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown status filter")
		}
		q = q.Where("status = ?", status)
	}
	if at := c.Query("activity_type"); at != "" {
		if !model.IsValidActivityType(at) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown activity type filter")
		}
		q = q.Where("activity_type = ?", at)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count outreach activities")
	}

	var activities []model.OutreachModel
	if err := q.
		Order("date DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&activities).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve outreach activities")
	}

	resp := make([]dto.OutreachDTO, 0, len(activities))
	for _, a := range activities {
		resp = append(resp, dto.ToOutreachDTO(a))
	}

	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// 🔍 Get outreach by ID
// =======================
func (ctrl *OutreachController) GetOutreachByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var activity model.OutreachModel
	err := ctrl.DB.Where("id = ?", id).First(&activity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Outreach activity not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve outreach activity")
	}

	return helper.JsonOK(c, "", dto.ToOutreachDTO(activity))
}

// =======================
// ✏️ Update outreach activity
// =======================
func (ctrl *OutreachController) UpdateOutreach(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.UpdateOutreachRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateOutreach.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var activity model.OutreachModel
	err := ctrl.DB.Where("id = ?", id).First(&activity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Outreach activity not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve outreach activity")
	}

	body.Apply(&activity)

	var objectName string
	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		publicURL, obj, err := storage.UploadPhoto(storage.BucketOutreachPhotos, fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		activity.PhotoURL = &publicURL
		objectName = obj
	}

	if err := ctrl.DB.Save(&activity).Error; err != nil {
		if objectName != "" {
			_ = storage.DeleteObject(storage.BucketOutreachPhotos, objectName)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update outreach activity")
	}

	return helper.JsonUpdated(c, "Outreach activity updated", dto.ToOutreachDTO(activity))
}

// =======================
// 🗑️ Delete outreach activity (admin)
// =======================
func (ctrl *OutreachController) DeleteOutreach(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctrl.DB.Delete(&model.OutreachModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete outreach activity")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Outreach activity not found")
	}

	return helper.JsonDeleted(c, "Outreach activity deleted", fiber.Map{"id": id})
}

// =======================
// 🌍 Public list (marketing site)
// =======================
func (ctrl *OutreachController) GetPublicOutreach(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	visible := []string{
		model.OutreachStatusApproved,
		model.OutreachStatusPlanned,
		model.OutreachStatusOngoing,
		model.OutreachStatusCompleted,
	}
	q := ctrl.DB.Model(&model.OutreachModel{}).Where("status IN ?", visible)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count outreach activities")
	}

	var activities []model.OutreachModel
	if err := q.
		Order("date DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&activities).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve outreach activities")
	}

	resp := make([]dto.OutreachDTO, 0, len(activities))
	for _, a := range activities {
		resp = append(resp, dto.ToOutreachDTO(a))
	}

	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
