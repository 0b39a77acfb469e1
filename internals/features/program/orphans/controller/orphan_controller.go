package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"betulabla_backend/internals/features/program/orphans/dto"
	"betulabla_backend/internals/features/program/orphans/model"
	helper "betulabla_backend/internals/helpers"
	"betulabla_backend/internals/helpers/storage"
)

var validateOrphan = validator.New()

type OrphanController struct {
	DB *gorm.DB
}

func NewOrphanController(db *gorm.DB) *OrphanController {
	return &OrphanController{DB: db}
}

// =======================
// ➕ Create orphan profile
// =======================
func (ctrl *OrphanController) CreateOrphan(c *fiber.Ctx) error {
	var body dto.CreateOrphanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateOrphan.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// two-phase: upload first, compensate if the row write fails
	var objectName string
	orphan := body.ToModel()
	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		publicURL, obj, err := storage.UploadPhoto(storage.BucketOrphanPhotos, fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		orphan.PhotoURL = &publicURL
		objectName = obj
	}

	if err := ctrl.DB.Create(&orphan).Error; err != nil {
		if objectName != "" {
			_ = storage.DeleteObject(storage.BucketOrphanPhotos, objectName)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create orphan profile")
	}

	return helper.JsonCreated(c, "Orphan profile created", dto.ToOrphanDTO(orphan))
}

// =======================
// 📄 List orphans (paginated)
// Query: ?page=&per_page=&status=
// =======================
func (ctrl *OrphanController) GetAllOrphans(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.OrphanModel{})
	if status := c.Query("status"); status != "" {
		if !model.IsValidOrphanStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown status filter")
		}
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count orphans")
	}

	var orphans []model.OrphanModel
	if err := q.
		Order("created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&orphans).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve orphans")
	}

	resp := make([]dto.OrphanDTO, 0, len(orphans))
	for _, o := range orphans {
		resp = append(resp, dto.ToOrphanDTO(o))
	}

	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// 🔍 Get orphan by ID
// =======================
func (ctrl *OrphanController) GetOrphanByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var orphan model.OrphanModel
	err := ctrl.DB.Where("id = ?", id).First(&orphan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Orphan not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve orphan")
	}

	return helper.JsonOK(c, "", dto.ToOrphanDTO(orphan))
}

// =======================
// ✏️ Update orphan (edit modal)
// =======================
func (ctrl *OrphanController) UpdateOrphan(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.UpdateOrphanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateOrphan.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var orphan model.OrphanModel
	err := ctrl.DB.Where("id = ?", id).First(&orphan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Orphan not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve orphan")
	}

	body.Apply(&orphan)

	// optional photo replacement; the old object is kept (no GC)
	var objectName string
	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		publicURL, obj, err := storage.UploadPhoto(storage.BucketOrphanPhotos, fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		orphan.PhotoURL = &publicURL
		objectName = obj
	}

	if err := ctrl.DB.Save(&orphan).Error; err != nil {
		if objectName != "" {
			_ = storage.DeleteObject(storage.BucketOrphanPhotos, objectName)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update orphan")
	}

	return helper.JsonUpdated(c, "Orphan profile updated", dto.ToOrphanDTO(orphan))
}

// =======================
// 🗑️ Delete orphan (admin)
// =======================
func (ctrl *OrphanController) DeleteOrphan(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctrl.DB.Delete(&model.OrphanModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete orphan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Orphan not found")
	}

	return helper.JsonDeleted(c, "Orphan profile deleted", fiber.Map{"id": id})
}

// =======================
// 🌍 Public list (marketing site)
// =======================
func (ctrl *OrphanController) GetPublicOrphans(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.OrphanModel{}).Where("status = ?", model.OrphanStatusApproved)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count orphans")
	}

	var orphans []model.OrphanModel
	if err := q.
		Order("created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&orphans).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve orphans")
	}

	resp := make([]dto.OrphanDTO, 0, len(orphans))
	for _, o := range orphans {
		resp = append(resp, dto.ToOrphanDTO(o))
	}

	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
