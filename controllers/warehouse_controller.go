package controllers

import (
	"errors"

	"warehouse-console/config"
	"warehouse-console/models"
	"warehouse-console/repositories"
	"warehouse-console/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WarehouseController struct {
	DB *gorm.DB
}

func NewWarehouseController(DB *gorm.DB) *WarehouseController {
	return &WarehouseController{DB: DB}
}

// GetHalls renders the storage topology as the hall -> shelf -> spot tree.
func (c *WarehouseController) GetHalls(ctx *fiber.Ctx) error {
	repo := repositories.NewWarehouseRepository(c.DB)
	records, err := repo.GetAllLocations()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"halls": services.BuildHalls(records),
	})
}

// GetWarehouseLocations returns the flat slot rows of one warehouse.
func (c *WarehouseController) GetWarehouseLocations(ctx *fiber.Ctx) error {
	warehouseUUID := ctx.Params("uuid")
	if warehouseUUID == "" {
		warehouseUUID = config.WarehouseUUID
	}

	repo := repositories.NewWarehouseRepository(c.DB)
	records, err := repo.GetLocations(warehouseUUID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"warehouse_uuid": warehouseUUID,
		"locations":      records,
	})
}

func (c *WarehouseController) CreateHall(ctx *fiber.Ctx) error {
	var input struct {
		Name string `json:"name"`
	}
	if err := ctx.BodyParser(&input); err != nil || input.Name == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Nazwa hali jest wymagana"})
	}

	var warehouse models.Warehouse
	if err := c.DB.Where("uuid = ?", config.WarehouseUUID).First(&warehouse).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	hall := models.Hall{
		UUID:        uuid.NewString(),
		Name:        input.Name,
		WarehouseID: warehouse.ID,
	}
	if err := c.DB.Create(&hall).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Hala zostala dodana.",
		"data":    hall,
	})
}

func (c *WarehouseController) DeleteHall(ctx *fiber.Ctx) error {
	repo := repositories.NewWarehouseRepository(c.DB)
	hall, err := repo.GetHallByUUID(ctx.Params("uuid"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Hall not found"})
	}

	var shelfCount int64
	c.DB.Model(&models.Shelf{}).Where("hall_id = ?", hall.ID).Count(&shelfCount)
	if shelfCount > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Hala zawiera regaly i nie moze zostac usunieta",
		})
	}

	if err := c.DB.Delete(hall).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Hala zostala usunieta."})
}

func (c *WarehouseController) CreateShelf(ctx *fiber.Ctx) error {
	repo := repositories.NewWarehouseRepository(c.DB)
	hall, err := repo.GetHallByUUID(ctx.Params("hallUuid"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Hall not found"})
	}

	var input struct {
		Name string `json:"name"`
	}
	if err := ctx.BodyParser(&input); err != nil || input.Name == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Nazwa regalu jest wymagana"})
	}

	shelf := models.Shelf{
		UUID:   uuid.NewString(),
		Name:   input.Name,
		HallID: hall.ID,
	}
	if err := c.DB.Create(&shelf).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Regal zostal dodany.",
		"data":    shelf,
	})
}

func (c *WarehouseController) DeleteShelf(ctx *fiber.Ctx) error {
	repo := repositories.NewWarehouseRepository(c.DB)
	shelf, err := repo.GetShelfByUUID(ctx.Params("uuid"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shelf not found"})
	}

	var spotCount int64
	c.DB.Model(&models.Spot{}).Where("shelf_id = ?", shelf.ID).Count(&spotCount)
	if spotCount > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Regal zawiera miejsca i nie moze zostac usuniety",
		})
	}

	if err := c.DB.Delete(shelf).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Regal zostal usuniety."})
}

func (c *WarehouseController) CreateSpot(ctx *fiber.Ctx) error {
	repo := repositories.NewWarehouseRepository(c.DB)
	shelf, err := repo.GetShelfByUUID(ctx.Params("shelfUuid"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shelf not found"})
	}

	var input struct {
		Name string `json:"name"`
	}
	if err := ctx.BodyParser(&input); err != nil || input.Name == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Nazwa miejsca jest wymagana"})
	}

	free := true
	spot := models.Spot{
		UUID:    uuid.NewString(),
		Name:    input.Name,
		ShelfID: shelf.ID,
		Free:    &free,
	}
	if err := c.DB.Create(&spot).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Miejsce zostalo dodane.",
		"data":    spot,
	})
}

// DeleteSpot refuses to drop a slot that still holds a product.
func (c *WarehouseController) DeleteSpot(ctx *fiber.Ctx) error {
	repo := repositories.NewWarehouseRepository(c.DB)
	spot, err := repo.GetSpotByUUID(ctx.Params("uuid"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Spot not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !spot.IsFree() {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Miejsce jest zajete i nie moze zostac usuniete",
		})
	}

	if err := c.DB.Delete(spot).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Miejsce zostalo usuniete."})
}
