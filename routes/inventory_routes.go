package routes

import (
	"warehouse-console/config"
	"warehouse-console/controllers"
	"warehouse-console/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupInventoryRoutes must run before SetupProductRoutes so that
// /products/inventories does not get swallowed by the /products/:uuid param.
func SetupInventoryRoutes(app *fiber.App, db *gorm.DB) {
	inventoryController := controllers.NewInventoryController(db)

	api := app.Group(config.MAIN_ROUTES+"/products/inventories", middleware.AuthMiddleware, middleware.UserOnly)
	api.Get("/:hallUuid", inventoryController.GetInventory)
	api.Post("/:hallUuid", inventoryController.SaveInventory)
}
