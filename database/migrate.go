// database/migrate.go
package database

import (
	"warehouse-console/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.LoginLog{},
		&models.Warehouse{},
		&models.Hall{},
		&models.Shelf{},
		&models.Spot{},
		&models.Category{},
		&models.Product{},
		&models.ProductHistory{},
		&models.Contractor{},
		&models.Receipt{},
		&models.ReceiptItem{},
		&models.Issue{},
		&models.IssueItem{},
		&models.Report{},
		&models.InventoryEntry{},
	)
}
