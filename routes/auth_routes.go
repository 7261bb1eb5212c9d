package routes

import (
	"warehouse-console/config"
	"warehouse-console/controllers"
	"warehouse-console/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controllers.NewAuthController(db)

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", authController.Login)
	// Logout stays unguarded: the console also calls it while tearing down a
	// session whose token no longer verifies.
	api.Get("/logout", authController.Logout)

	session := app.Group(config.MAIN_ROUTES+"/auth", middleware.AuthMiddleware)
	session.Get("/auto-login", authController.AutoLogin)
	session.Get("/logs", middleware.SupervisorOnly, authController.GetLoginLogs)
}
