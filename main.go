package main

import (
	"fmt"
	"log"

	"warehouse-console/config"
	"warehouse-console/controllers/idgen"
	"warehouse-console/database"
	"warehouse-console/routes"
	"warehouse-console/services"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	db, err := database.Open()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	database.RunSeeders(db)

	idgen.Init()

	notifier := services.NewNotifier()

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupUserRoutes(app, db)
	routes.SetupContractorRoutes(app, db)
	// Inventory before products: /products/inventories vs /products/:uuid.
	routes.SetupInventoryRoutes(app, db)
	routes.SetupProductRoutes(app, db)
	routes.SetupWarehouseRoutes(app, db)
	routes.SetupReceiptRoutes(app, db)
	routes.SetupIssueRoutes(app, db)
	routes.SetupReportRoutes(app, db, notifier)

	port := config.APP_PORT
	fmt.Println("🚀 Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
