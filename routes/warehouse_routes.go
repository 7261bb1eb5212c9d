package routes

import (
	"warehouse-console/config"
	"warehouse-console/controllers"
	"warehouse-console/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupWarehouseRoutes(app *fiber.App, db *gorm.DB) {
	warehouseController := controllers.NewWarehouseController(db)

	halls := app.Group(config.MAIN_ROUTES+"/halls", middleware.AuthMiddleware, middleware.UserOnly)
	halls.Get("/", warehouseController.GetHalls)

	api := app.Group(config.MAIN_ROUTES+"/warehouseManagement", middleware.AuthMiddleware, middleware.UserOnly)
	api.Get("/warehouses", warehouseController.GetWarehouseLocations)
	api.Get("/warehouses/:uuid", warehouseController.GetWarehouseLocations)
	api.Post("/halls", warehouseController.CreateHall)
	api.Delete("/halls/:uuid", warehouseController.DeleteHall)
	api.Post("/halls/:hallUuid/shelves", warehouseController.CreateShelf)
	api.Delete("/shelves/:uuid", warehouseController.DeleteShelf)
	api.Post("/shelves/:shelfUuid/spots", warehouseController.CreateSpot)
	api.Delete("/spots/:uuid", warehouseController.DeleteSpot)
}
