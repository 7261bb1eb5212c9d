package routes

import (
	"warehouse-console/config"
	"warehouse-console/controllers"
	"warehouse-console/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupIssueRoutes(app *fiber.App, db *gorm.DB) {
	issueController := controllers.NewIssueController(db)

	api := app.Group(config.MAIN_ROUTES+"/productService/issues", middleware.AuthMiddleware, middleware.UserOnly)
	api.Get("/", issueController.GetAllIssues)
	api.Get("/:uuid", issueController.GetIssueByUUID)
	api.Post("/", issueController.CreateIssue)
	api.Put("/:uuid", issueController.UpdateIssue)
	api.Delete("/:uuid", issueController.DeleteIssue)
}
