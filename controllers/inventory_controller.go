package controllers

import (
	"fmt"
	"net/http"
	"time"

	"warehouse-console/models"
	"warehouse-console/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type InventoryController struct {
	DB *gorm.DB
}

func NewInventoryController(DB *gorm.DB) *InventoryController {
	return &InventoryController{DB: DB}
}

type inventoryRow struct {
	UUID       string `json:"uuid"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Spot       string `json:"spot"`
	Contractor string `json:"contractor"`
	UpdatedAt  string `json:"updated_at"`
	RFID       string `json:"rfid"`
	IsCorrect  bool   `json:"isCorrect"`
	Note       string `json:"note"`
}

// GetInventory returns the active products of a hall grouped by shelf, each
// row pre-marked correct so staff only flag the discrepancies.
func (c *InventoryController) GetInventory(ctx *fiber.Ctx) error {
	hallUUID := ctx.Params("hallUuid")

	repo := repositories.NewProductRepository(c.DB)
	byShelf, err := repo.GetByHall(hallUUID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	inventory := map[string][]inventoryRow{}
	for shelf, products := range byShelf {
		rows := make([]inventoryRow, 0, len(products))
		for _, product := range products {
			spotName := ""
			if product.Spot != nil {
				spotName = product.Spot.Name
			}
			rows = append(rows, inventoryRow{
				UUID:       product.UUID,
				Name:       product.Name,
				Category:   product.Category.Name,
				Spot:       spotName,
				Contractor: product.ContractorName(),
				UpdatedAt:  product.UpdatedAt.Format("2006-01-02 15:04:05"),
				RFID:       product.RFID,
				IsCorrect:  true,
			})
		}
		inventory[shelf] = rows
	}

	var last models.InventoryEntry
	note := ""
	if err := c.DB.Where("hall_uuid = ?", hallUUID).Order("created_at DESC").First(&last).Error; err == nil {
		note = last.GeneralNote
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"inventory": inventory,
		"note":      note,
	})
}

// SaveInventory persists the reconciliation result and streams back the
// spreadsheet the console downloads as inwentaryzacja.xlsx.
func (c *InventoryController) SaveInventory(ctx *fiber.Ctx) error {
	hallUUID := ctx.Params("hallUuid")
	userID := int(ctx.Locals("userID").(float64))

	var input struct {
		Inventory map[string][]inventoryRow `json:"inventory"`
		Note      string                    `json:"note"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	if _, err := repositories.NewWarehouseRepository(c.DB).GetHallByUUID(hallUUID); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Hall not found"})
	}

	now := time.Now()
	for shelf, rows := range input.Inventory {
		for _, row := range rows {
			entry := models.InventoryEntry{
				HallUUID:    hallUUID,
				ShelfName:   shelf,
				ProductUUID: row.UUID,
				IsCorrect:   row.IsCorrect,
				Note:        row.Note,
				GeneralNote: input.Note,
				CreatedBy:   userID,
				CreatedAt:   now,
			}
			if err := c.DB.Create(&entry).Error; err != nil {
				return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
			}
		}
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Regal")
	f.SetCellValue(sheet, "B1", "Produkt")
	f.SetCellValue(sheet, "C1", "Kategoria")
	f.SetCellValue(sheet, "D1", "Miejsce")
	f.SetCellValue(sheet, "E1", "RFID")
	f.SetCellValue(sheet, "F1", "Zgodny")
	f.SetCellValue(sheet, "G1", "Uwagi")

	rowNum := 2
	for shelf, rows := range input.Inventory {
		for _, row := range rows {
			correct := "TAK"
			if !row.IsCorrect {
				correct = "NIE"
			}
			f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), shelf)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), row.Name)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), row.Category)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), row.Spot)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), row.RFID)
			f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), correct)
			f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), row.Note)
			rowNum++
		}
	}
	f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum+1), "Uwagi ogolne:")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum+1), input.Note)

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="inwentaryzacja.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate spreadsheet")
	}

	return nil
}
