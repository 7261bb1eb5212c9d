package controllers

import (
	"fmt"
	"net/http"

	"warehouse-console/controllers/idgen"
	"warehouse-console/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"
)

type ReceiptController struct {
	DB *gorm.DB
}

func NewReceiptController(DB *gorm.DB) *ReceiptController {
	return &ReceiptController{DB: DB}
}

func (c *ReceiptController) GetAllReceipts(ctx *fiber.Ctx) error {
	var receipts []models.Receipt
	if err := c.DB.Preload("Contractor").Preload("Items").Order("id DESC").Find(&receipts).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(receipts)
}

func (c *ReceiptController) GetReceiptByUUID(ctx *fiber.Ctx) error {
	var receipt models.Receipt
	err := c.DB.Preload("Contractor").Preload("Items").
		Where("uuid = ?", ctx.Params("uuid")).First(&receipt).Error
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Receipt not found"})
	}
	return ctx.Status(fiber.StatusOK).JSON(receipt)
}

// CreateReceipt books the selected products in against a contractor and
// streams back the intake document (przyjecie.pdf).
func (c *ReceiptController) CreateReceipt(ctx *fiber.Ctx) error {
	var input struct {
		Contractor string   `json:"contractor"`
		Products   []string `json:"products"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}
	if input.Contractor == "" || len(input.Products) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Kontrahent i produkty sa wymagane",
		})
	}

	var contractor models.Contractor
	if err := c.DB.Where("id = ? OR uuid = ?", input.Contractor, input.Contractor).First(&contractor).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Nieznany kontrahent"})
	}

	products, err := FindProductsByUUIDs(c.DB, input.Products)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	for _, product := range products {
		if product.IsActive {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("Produkt %s jest juz na stanie", product.Name),
			})
		}
	}

	userID := int(ctx.Locals("userID").(float64))
	username, _ := ctx.Locals("username").(string)

	receipt := models.Receipt{
		UUID:         uuid.NewString(),
		Number:       idgen.DocumentNumber("PZ"),
		ContractorID: contractor.ID,
		CreatedBy:    userID,
	}

	tx := c.DB.Begin()
	if err := tx.Create(&receipt).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	for _, product := range products {
		item := models.ReceiptItem{
			ReceiptID:   receipt.ID,
			ProductUUID: product.UUID,
			ProductName: product.Name,
		}
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		contractorID := contractor.ID
		updates := map[string]interface{}{
			"is_active":     true,
			"issued":        false,
			"contractor_id": contractorID,
			"updated_by":    userID,
		}
		if err := tx.Model(&models.Product{}).Where("uuid = ?", product.UUID).Updates(updates).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		tx.Create(&models.ProductHistory{
			ProductUUID: product.UUID,
			Action:      "RECEIVED",
			Details:     fmt.Sprintf("Receipt %s from %s", receipt.Number, contractor.Name),
			PerformedBy: username,
		})
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return writeDocumentPDF(ctx, documentData{
		Title:      "PRZYJECIE ZEWNETRZNE",
		Number:     receipt.Number,
		Contractor: contractor,
		Products:   products,
		FileName:   "przyjecie.pdf",
	})
}

func (c *ReceiptController) UpdateReceipt(ctx *fiber.Ctx) error {
	var receipt models.Receipt
	if err := c.DB.Where("uuid = ?", ctx.Params("uuid")).First(&receipt).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Receipt not found"})
	}

	var input struct {
		Contractor string `json:"contractor"`
	}
	if err := ctx.BodyParser(&input); err != nil || input.Contractor == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Kontrahent jest wymagany"})
	}

	var contractor models.Contractor
	if err := c.DB.Where("id = ? OR uuid = ?", input.Contractor, input.Contractor).First(&contractor).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Nieznany kontrahent"})
	}

	receipt.ContractorID = contractor.ID
	if err := c.DB.Save(&receipt).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Przyjecie zostalo zaktualizowane."})
}

func (c *ReceiptController) DeleteReceipt(ctx *fiber.Ctx) error {
	var receipt models.Receipt
	if err := c.DB.Where("uuid = ?", ctx.Params("uuid")).First(&receipt).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Receipt not found"})
	}

	if err := c.DB.Where("receipt_id = ?", receipt.ID).Delete(&models.ReceiptItem{}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.DB.Delete(&receipt).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Przyjecie zostalo usuniete."})
}

type documentData struct {
	Title      string
	Number     string
	Contractor models.Contractor
	Products   []models.Product
	FileName   string
}

// writeDocumentPDF streams a warehouse document. The payload is opaque to the
// console, which just hands it to the browser's download mechanism.
func writeDocumentPDF(ctx *fiber.Ctx, data documentData) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, data.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, "Dokument: "+data.Number)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Kontrahent: "+data.Contractor.Name)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Telefon: "+data.Contractor.Phone+"  Email: "+data.Contractor.Email)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(10, 8, "#", "1", 0, "C", false, 0, "")
	pdf.CellFormat(90, 8, "Produkt", "1", 0, "L", false, 0, "")
	pdf.CellFormat(90, 8, "UUID", "1", 0, "L", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for i, product := range data.Products {
		pdf.CellFormat(10, 8, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(90, 8, product.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(90, 8, product.UUID, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	ctx.Set("Content-Type", "application/pdf")
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, data.FileName))

	if err := pdf.Output(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate document")
	}
	return nil
}
