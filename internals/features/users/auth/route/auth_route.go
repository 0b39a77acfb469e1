package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"betulabla_backend/internals/features/users/auth/controller"
	middlewares "betulabla_backend/internals/middlewares"
	authMiddleware "betulabla_backend/internals/middlewares/auth"
)

// AuthRoutes mounts the public auth endpoints with their limiter tiers.
func AuthRoutes(app fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), authCtrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	auth.Post("/refresh-token", authCtrl.RefreshToken)
	auth.Post("/forgot-password", middlewares.ForgotPasswordRateLimiter(), authCtrl.ForgotPassword)
	auth.Post("/reset-password", authCtrl.ResetPassword)

	// logout needs a valid session to know what to revoke
	auth.Post("/logout", authMiddleware.AuthMiddleware(db), authCtrl.Logout)
}

// SessionRoutes mounts the authenticated self-service endpoints.
func SessionRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	api.Get("/me", authCtrl.Me)
	api.Post("/change-password", authCtrl.ChangePassword)
}
