package routes

import (
	"warehouse-console/config"
	"warehouse-console/controllers"
	"warehouse-console/middleware"
	"warehouse-console/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB, notifier *services.Notifier) {
	reportController := controllers.NewReportController(db, notifier)

	api := app.Group(config.MAIN_ROUTES+"/auth", middleware.AuthMiddleware)
	api.Get("/reports", reportController.GetReports)
	api.Post("/reports", reportController.CreateReport)
	api.Get("/notifications", reportController.GetNotification)
	api.Delete("/notifications", reportController.CloseNotification)
}
