package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"betulabla_backend/internals/features/approval/controller"
)

// ApprovalRoutes: review queue, mounted under the admin group
func ApprovalRoutes(api fiber.Router, db *gorm.DB) {
	approvalCtrl := controller.NewApprovalController(db)

	api.Get("/pending-approvals", approvalCtrl.ListPending)
	api.Post("/pending-approvals/decide", approvalCtrl.Decide)
}
