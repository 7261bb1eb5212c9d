package routes

import (
	"warehouse-console/config"
	"warehouse-console/controllers"
	"warehouse-console/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupContractorRoutes(app *fiber.App, db *gorm.DB) {
	contractorController := controllers.NewContractorController(db)

	api := app.Group(config.MAIN_ROUTES+"/contractors", middleware.AuthMiddleware, middleware.UserOnly)
	api.Get("/", contractorController.GetAllContractors)
	api.Post("/", contractorController.CreateContractor)
	api.Put("/:id", contractorController.UpdateContractor)
	api.Delete("/:id", contractorController.DeleteContractor)
}
