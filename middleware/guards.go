package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// Route guards compose after AuthMiddleware. Each is a pure predicate over
// the session role; on denial they answer 403 with the redirect target the
// console should navigate to (SupervisorOnly simply blocks).

func AdminOnly(ctx *fiber.Ctx) error {
	role := SessionRole(ctx)
	if role.IsAdmin() {
		return ctx.Next()
	}
	return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"message":  "Forbidden: admin access required",
		"redirect": "/app/halls",
	})
}

func UserOnly(ctx *fiber.Ctx) error {
	role := SessionRole(ctx)
	if role.CanAccessWarehouse() {
		return ctx.Next()
	}
	return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"message":  "Forbidden: warehouse access required",
		"redirect": "/app/users",
	})
}

func SupervisorOnly(ctx *fiber.Ctx) error {
	role := SessionRole(ctx)
	if role.CanSupervise() {
		return ctx.Next()
	}
	return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"message": "Forbidden: supervisor access required",
	})
}
