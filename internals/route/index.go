package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	approvalRoute "betulabla_backend/internals/features/approval/route"
	overviewRoute "betulabla_backend/internals/features/overview/route"
	boreholeRoute "betulabla_backend/internals/features/program/boreholes/route"
	orphanRoute "betulabla_backend/internals/features/program/orphans/route"
	outreachRoute "betulabla_backend/internals/features/program/outreach/route"
	reportRoute "betulabla_backend/internals/features/reports/route"
	adminRoute "betulabla_backend/internals/features/users/admin/route"
	authRoute "betulabla_backend/internals/features/users/auth/route"
	authMiddleware "betulabla_backend/internals/middlewares/auth"
)

// SetupRoutes wires the three API surfaces:
//
//	/api/auth   public auth endpoints (rate-limited tiers)
//	/api/public unauthenticated read surface for the marketing site
//	/api/u      authenticated dashboard endpoints
//	/api/a      admin-only endpoints
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)

	// ==================
	// 🌍 Public surface
	// ==================
	public := app.Group("/api/public")
	orphanRoute.OrphanPublicRoutes(public, db)
	boreholeRoute.BoreholePublicRoutes(public, db)
	outreachRoute.OutreachPublicRoutes(public, db)

	// ==================
	// 🔐 Authenticated surface
	// ==================
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	authRoute.SessionRoutes(user, db)
	orphanRoute.OrphanUserRoutes(user, db)
	boreholeRoute.BoreholeUserRoutes(user, db)
	outreachRoute.OutreachUserRoutes(user, db)
	reportRoute.ReportRoutes(user, db)
	overviewRoute.OverviewRoutes(user, db)

	// ==================
	// 🛡️ Admin surface
	// ==================
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Admin access required", "admin"),
	)
	orphanRoute.OrphanAdminRoutes(admin, db)
	boreholeRoute.BoreholeAdminRoutes(admin, db)
	outreachRoute.OutreachAdminRoutes(admin, db)
	approvalRoute.ApprovalRoutes(admin, db)
	adminRoute.UserAdminRoutes(admin, db)
}
