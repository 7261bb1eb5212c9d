package routes

import (
	"warehouse-console/config"
	"warehouse-console/controllers"
	"warehouse-console/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReceiptRoutes(app *fiber.App, db *gorm.DB) {
	receiptController := controllers.NewReceiptController(db)

	api := app.Group(config.MAIN_ROUTES+"/productService/receipts", middleware.AuthMiddleware, middleware.UserOnly)
	api.Get("/", receiptController.GetAllReceipts)
	api.Get("/:uuid", receiptController.GetReceiptByUUID)
	api.Post("/", receiptController.CreateReceipt)
	api.Put("/:uuid", receiptController.UpdateReceipt)
	api.Delete("/:uuid", receiptController.DeleteReceipt)
}
