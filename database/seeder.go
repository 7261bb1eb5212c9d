// database/seeder.go
package database

import (
	"errors"
	"fmt"
	"log"

	"warehouse-console/config"
	"warehouse-console/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedAdminUser(db)
	SeedCategories(db)
	SeedWarehouse(db)
}

func SeedAdminUser(db *gorm.DB) {
	var existing models.User
	err := db.Where("username = ?", "admin").First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Unexpected DB error: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	admin := models.User{
		UUID:     uuid.NewString(),
		Username: "admin",
		Name:     "Jan",
		Surname:  "Kowalski",
		Email:    "admin@warehouse.local",
		Password: string(hashed),
		UserType: models.UserTypeAdmin,
		Enabled:  true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
}

func SeedCategories(db *gorm.DB) {
	categories := []models.Category{
		{Name: "ELEKTRONIKA"},
		{Name: "AGD"},
		{Name: "NARZEDZIA"},
		{Name: "INNE"},
	}

	for _, category := range categories {
		var existing models.Category
		err := db.Where("name = ?", category.Name).First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := db.Create(&category).Error; err != nil {
					log.Fatalf("Failed to seed category %s: %v", category.Name, err)
				}
			} else {
				log.Fatalf("Unexpected DB error: %v", err)
			}
		}
	}
}

// SeedWarehouse creates the default warehouse with two halls, a few shelves
// each and free spots, so a fresh install renders a browsable tree.
func SeedWarehouse(db *gorm.DB) {
	var existing models.Warehouse
	err := db.Where("uuid = ?", config.WarehouseUUID).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Unexpected DB error: %v", err)
	}

	warehouse := models.Warehouse{
		UUID: config.WarehouseUUID,
		Name: "Magazyn Glowny",
	}
	if err := db.Create(&warehouse).Error; err != nil {
		log.Fatalf("Failed to seed warehouse: %v", err)
	}

	free := true
	for h := 1; h <= 2; h++ {
		hall := models.Hall{
			UUID:        uuid.NewString(),
			Name:        fmt.Sprintf("Hala %c", 'A'+h-1),
			WarehouseID: warehouse.ID,
		}
		if err := db.Create(&hall).Error; err != nil {
			log.Fatalf("Failed to seed hall: %v", err)
		}

		for s := 1; s <= 3; s++ {
			shelf := models.Shelf{
				UUID:   uuid.NewString(),
				Name:   fmt.Sprintf("Regal %d", s),
				HallID: hall.ID,
			}
			if err := db.Create(&shelf).Error; err != nil {
				log.Fatalf("Failed to seed shelf: %v", err)
			}

			for p := 1; p <= 4; p++ {
				spot := models.Spot{
					UUID:    uuid.NewString(),
					Name:    fmt.Sprintf("%s-%d-%d", hall.Name, s, p),
					ShelfID: shelf.ID,
					Free:    &free,
				}
				if err := db.Create(&spot).Error; err != nil {
					log.Fatalf("Failed to seed spot: %v", err)
				}
			}
		}
	}
}
