package controllers

import (
	"fmt"

	"warehouse-console/controllers/idgen"
	"warehouse-console/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IssueController struct {
	DB *gorm.DB
}

func NewIssueController(DB *gorm.DB) *IssueController {
	return &IssueController{DB: DB}
}

func (c *IssueController) GetAllIssues(ctx *fiber.Ctx) error {
	var issues []models.Issue
	if err := c.DB.Preload("Contractor").Preload("Items").Order("id DESC").Find(&issues).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(issues)
}

func (c *IssueController) GetIssueByUUID(ctx *fiber.Ctx) error {
	var issue models.Issue
	err := c.DB.Preload("Contractor").Preload("Items").
		Where("uuid = ?", ctx.Params("uuid")).First(&issue).Error
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Issue not found"})
	}
	return ctx.Status(fiber.StatusOK).JSON(issue)
}

// CreateIssue releases the selected products to a contractor: each product is
// marked issued, its slot freed, and the release document (wydanie.pdf) is
// streamed back.
func (c *IssueController) CreateIssue(ctx *fiber.Ctx) error {
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
		if !product.IsActive || product.Issued {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("Produkt %s nie jest dostepny na stanie", product.Name),
			})
		}
	}

	userID := int(ctx.Locals("userID").(float64))
	username, _ := ctx.Locals("username").(string)

	issue := models.Issue{
		UUID:         uuid.NewString(),
		Number:       idgen.DocumentNumber("WZ"),
		ContractorID: contractor.ID,
		CreatedBy:    userID,
	}

	tx := c.DB.Begin()
	if err := tx.Create(&issue).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	for _, product := range products {
		item := models.IssueItem{
			IssueID:     issue.ID,
			ProductUUID: product.UUID,
			ProductName: product.Name,
		}
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		// release the slot before detaching it from the product
		if product.SpotID != nil {
			if err := tx.Model(&models.Spot{}).Where("id = ?", *product.SpotID).
				Update("free", true).Error; err != nil {
				tx.Rollback()
				return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
			}
		}

		updates := map[string]interface{}{
			"is_active":  false,
			"issued":     true,
			"spot_id":    nil,
			"updated_by": userID,
		}
		if err := tx.Model(&models.Product{}).Where("uuid = ?", product.UUID).Updates(updates).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		tx.Create(&models.ProductHistory{
			ProductUUID: product.UUID,
			Action:      "ISSUED",
			Details:     fmt.Sprintf("Issue %s to %s", issue.Number, contractor.Name),
			PerformedBy: username,
		})
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return writeDocumentPDF(ctx, documentData{
		Title:      "WYDANIE ZEWNETRZNE",
		Number:     issue.Number,
		Contractor: contractor,
		Products:   products,
		FileName:   "wydanie.pdf",
	})
}

func (c *IssueController) UpdateIssue(ctx *fiber.Ctx) error {
	var issue models.Issue
	if err := c.DB.Where("uuid = ?", ctx.Params("uuid")).First(&issue).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Issue not found"})
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

	issue.ContractorID = contractor.ID
	if err := c.DB.Save(&issue).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Wydanie zostalo zaktualizowane."})
}

func (c *IssueController) DeleteIssue(ctx *fiber.Ctx) error {
	var issue models.Issue
	if err := c.DB.Where("uuid = ?", ctx.Params("uuid")).First(&issue).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Issue not found"})
	}

	if err := c.DB.Where("issue_id = ?", issue.ID).Delete(&models.IssueItem{}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.DB.Delete(&issue).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Wydanie zostalo usuniete."})
}
