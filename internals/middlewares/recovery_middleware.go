package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware turns panics into 500 responses instead of crashes
func RecoveryMiddleware() fiber.Handler {
	return recover.New()
}
