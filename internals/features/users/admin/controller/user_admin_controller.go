package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	adminDTO "betulabla_backend/internals/features/users/admin/dto"
	authController "betulabla_backend/internals/features/users/auth/controller"
	authDTO "betulabla_backend/internals/features/users/auth/dto"
	authModel "betulabla_backend/internals/features/users/auth/model"
	userModel "betulabla_backend/internals/features/users/user/model"
	helper "betulabla_backend/internals/helpers"
)

var validateUserAdmin = validator.New()

type UserAdminController struct {
	DB *gorm.DB
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{DB: db}
}

// =======================
// 📄 List accounts
// =======================
func (ctrl *UserAdminController) ListUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []userModel.UserModel
	if err := ctrl.DB.
		Order("created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	resp := make([]authDTO.UserDTO, 0, len(users))
	for _, u := range users {
		resp = append(resp, authDTO.ToUserDTO(u))
	}

	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// ✏️ Update role
// =======================
func (ctrl *UserAdminController) UpdateUserRole(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var body adminDTO.UpdateRoleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUserAdmin.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res := ctrl.DB.Model(&userModel.UserModel{}).
		Where("id = ?", id).
		Update("role", body.Role)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update role")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonUpdated(c, "Role updated", fiber.Map{
		"id":   id,
		"role": body.Role,
	})
}

// =======================
// 🗑️ Delete account
// =======================
func (ctrl *UserAdminController) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	uid, err := uuid.Parse(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	// an admin cannot delete their own account from the dashboard
	if self, _ := c.Locals("user_id").(string); self == id {
		return helper.JsonError(c, fiber.StatusBadRequest, "You cannot delete your own account")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&userModel.UserModel{}, "id = ?", uid)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("user_id = ?", uid).Delete(&authModel.RefreshTokenModel{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", uid).Delete(&authModel.PasswordResetModel{}).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}

	return helper.JsonDeleted(c, "User deleted", fiber.Map{"id": id})
}

// =======================
// 🔑 Reset password (admin action)
// =======================
func (ctrl *UserAdminController) ResetUserPassword(c *fiber.Ctx) error {
	id := c.Params("id")
	uid, err := uuid.Parse(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user userModel.UserModel
	err = ctrl.DB.Where("id = ?", uid).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up user")
	}

	if err := authController.IssueResetToken(ctrl.DB, user.ID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue reset token")
	}

	return helper.JsonOK(c, "Password reset initiated", fiber.Map{"id": id})
}
