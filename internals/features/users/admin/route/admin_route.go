package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"betulabla_backend/internals/features/users/admin/controller"
)

// UserAdminRoutes: user-management section (admin group)
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserAdminController(db)

	users := api.Group("/users")
	users.Get("/", userCtrl.ListUsers)
	users.Patch("/:id/role", userCtrl.UpdateUserRole)
	users.Delete("/:id", userCtrl.DeleteUser)
	users.Post("/:id/reset-password", userCtrl.ResetUserPassword)
}
