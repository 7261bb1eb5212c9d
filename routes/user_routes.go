package routes

import (
	"warehouse-console/config"
	"warehouse-console/controllers"
	"warehouse-console/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	userController := controllers.NewUserController(db)

	api := app.Group(config.MAIN_ROUTES+"/auth/users", middleware.AuthMiddleware, middleware.AdminOnly)
	api.Get("/", userController.GetUsers)
	api.Post("/", userController.CreateUser)
	api.Put("/:uuid", userController.UpdateUser)
	api.Delete("/:uuid", userController.DeleteUser)
}
