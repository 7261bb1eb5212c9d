package routes

import (
	"warehouse-console/config"
	"warehouse-console/controllers"
	"warehouse-console/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupProductRoutes(app *fiber.App, db *gorm.DB) {
	productController := controllers.NewProductController(db)

	api := app.Group(config.MAIN_ROUTES+"/products", middleware.AuthMiddleware, middleware.UserOnly)
	api.Get("/", productController.GetProducts)
	api.Get("/categories", productController.GetCategories)
	api.Get("/history/:uuid", productController.GetProductHistory)
	api.Get("/:uuid", productController.GetProductByUUID)
	api.Post("/", productController.CreateProduct)
	api.Put("/:uuid", productController.UpdateProduct)
	api.Delete("/:uuid", productController.DeleteProduct)
}
