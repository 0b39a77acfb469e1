package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"betulabla_backend/internals/features/program/boreholes/dto"
	"betulabla_backend/internals/features/program/boreholes/model"
	helper "betulabla_backend/internals/helpers"
	"betulabla_backend/internals/helpers/storage"
)

var validateBorehole = validator.New()

type BoreholeController struct {
	DB *gorm.DB
}

func NewBoreholeController(db *gorm.DB) *BoreholeController {
	return &BoreholeController{DB: db}
}

// =======================
// ➕ Create borehole project
// =======================
func (ctrl *BoreholeController) CreateBorehole(c *fiber.Ctx) error {
	var body dto.CreateBoreholeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateBorehole.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var objectName string
	borehole := body.ToModel()
	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		publicURL, obj, err := storage.UploadPhoto(storage.BucketBoreholePhotos, fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		borehole.PhotoURL = &publicURL
		objectName = obj
	}

	if err := ctrl.DB.Create(&borehole).Error; err != nil {
		if objectName != "" {
			_ = storage.DeleteObject(storage.BucketBoreholePhotos, objectName)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create borehole project")
	}

	return helper.JsonCreated(c, "Borehole project created", dto.ToBoreholeDTO(borehole))
}

// =======================
// 📄 List boreholes (paginated)
// =======================
func (ctrl *BoreholeController) GetAllBoreholes(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.BoreholeModel{})
	if status := c.Query("status"); status != "" {
		if !model.IsValidBoreholeStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown status filter")
		}
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count boreholes")
	}

	var boreholes []model.BoreholeModel
	if err := q.
		Order("created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&boreholes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve boreholes")
	}

	resp := make([]dto.BoreholeDTO, 0, len(boreholes))
	for _, b := range boreholes {
		resp = append(resp, dto.ToBoreholeDTO(b))
	}

	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// 🔍 Get borehole by ID
// =======================
func (ctrl *BoreholeController) GetBoreholeByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var borehole model.BoreholeModel
	err := ctrl.DB.Where("id = ?", id).First(&borehole).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Borehole not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve borehole")
	}

	return helper.JsonOK(c, "", dto.ToBoreholeDTO(borehole))
}

// =======================
// ✏️ Update borehole
// =======================
func (ctrl *BoreholeController) UpdateBorehole(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.UpdateBoreholeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateBorehole.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var borehole model.BoreholeModel
	err := ctrl.DB.Where("id = ?", id).First(&borehole).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Borehole not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve borehole")
	}

	body.Apply(&borehole)

	var objectName string
	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		publicURL, obj, err := storage.UploadPhoto(storage.BucketBoreholePhotos, fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		borehole.PhotoURL = &publicURL
		objectName = obj
	}

	if err := ctrl.DB.Save(&borehole).Error; err != nil {
		if objectName != "" {
			_ = storage.DeleteObject(storage.BucketBoreholePhotos, objectName)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update borehole")
	}

	return helper.JsonUpdated(c, "Borehole project updated", dto.ToBoreholeDTO(borehole))
}

// =======================
// 🗑️ Delete borehole (admin)
// =======================
func (ctrl *BoreholeController) DeleteBorehole(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctrl.DB.Delete(&model.BoreholeModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete borehole")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Borehole not found")
	}

	return helper.JsonDeleted(c, "Borehole project deleted", fiber.Map{"id": id})
}

// =======================
// 🌍 Public list (marketing site)
// =======================
func (ctrl *BoreholeController) GetPublicBoreholes(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	// approved and anything past approval (progress statuses)
	visible := []string{
		model.BoreholeStatusApproved,
		model.BoreholeStatusPlanning,
		model.BoreholeStatusInProgress,
		model.BoreholeStatusCompleted,
	}
	q := ctrl.DB.Model(&model.BoreholeModel{}).Where("status IN ?", visible)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count boreholes")
	}

	var boreholes []model.BoreholeModel
	if err := q.
		Order("created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&boreholes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve boreholes")
	}

	resp := make([]dto.BoreholeDTO, 0, len(boreholes))
	for _, b := range boreholes {
		resp = append(resp, dto.ToBoreholeDTO(b))
	}

	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
