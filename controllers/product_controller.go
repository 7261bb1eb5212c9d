package controllers

import (
	"errors"
	"fmt"

	"warehouse-console/models"
	"warehouse-console/repositories"
	"warehouse-console/services"
	"warehouse-console/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(DB *gorm.DB) *ProductController {
	return &ProductController{DB: DB}
}

func parseBoolFilter(value string) *bool {
	switch value {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}

// GetProducts serves the search screen: filtered page of summaries, each row
// enriched with its detail fields concurrently. A failed detail lookup
// degrades that row to summary only.
func (c *ProductController) GetProducts(ctx *fiber.Ctx) error {
	page, size := utils.ParsePageRequest(ctx)

	filter := repositories.ProductFilter{
		UUID:       ctx.Query("uuid"),
		RFID:       ctx.Query("rfid"),
		Name:       ctx.Query("name"),
		Category:   ctx.Query("category"),
		Spot:       ctx.Query("spot"),
		Contractor: ctx.Query("contractor"),
		UpdatedAt:  ctx.Query("updated_at"),
		IsActive:   parseBoolFilter(ctx.Query("is_active")),
		Issued:     parseBoolFilter(ctx.Query("issued")),
	}

	repo := repositories.NewProductRepository(c.DB)

	total, err := repo.Count(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	totalPages := utils.TotalPages(total, size)
	if !utils.ValidPage(page, totalPages) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Page out of range",
		})
	}

	products, err := repo.GetPage(filter, page, size)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	products = services.EnrichProducts(products, repo.GetDetails)

	return ctx.Status(fiber.StatusOK).JSON(utils.NewPage(products, page, size, total))
}

func (c *ProductController) GetProductByUUID(ctx *fiber.Ctx) error {
	repo := repositories.NewProductRepository(c.DB)
	product, err := repo.GetByUUID(ctx.Params("uuid"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(product)
}

func (c *ProductController) GetCategories(ctx *fiber.Ctx) error {
	var categories []models.Category
	if err := c.DB.Order("id").Find(&categories).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(categories)
}

func (c *ProductController) GetProductHistory(ctx *fiber.Ctx) error {
	repo := repositories.NewProductRepository(c.DB)
	history, err := repo.GetHistory(ctx.Params("uuid"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"productHistory": history})
}

type productInput struct {
	RFID        string  `json:"rfid"`
	Name        string  `json:"name"`
	Category    uint    `json:"category"`
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`
	Height      float64 `json:"height"`
	Width       float64 `json:"width"`
	Contractor  uint    `json:"contractor"`
	Spot        uint    `json:"spot"`
}

func (c *ProductController) CreateProduct(ctx *fiber.Ctx) error {
	var input productInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if msg := utils.ValidateFields([]utils.Field{
		{Label: "Nazwa", Value: input.Name, Kind: utils.FieldText},
		{Label: "RFID", Value: input.RFID, Kind: utils.FieldText},
	}); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	var category models.Category
	if err := c.DB.First(&category, input.Category).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Nieznana kategoria"})
	}

	username, _ := ctx.Locals("username").(string)
	product := models.Product{
		UUID:        uuid.NewString(),
		RFID:        input.RFID,
		Name:        input.Name,
		CategoryID:  category.ID,
		Description: input.Description,
		Weight:      input.Weight,
		Height:      input.Height,
		Width:       input.Width,
		CreatedBy:   int(ctx.Locals("userID").(float64)),
	}

	if input.Contractor != 0 {
		contractorID := input.Contractor
		product.ContractorID = &contractorID
	}

	// pinning a spot claims it right away so two adds cannot race for it
	if input.Spot != 0 {
		var spot models.Spot
		if err := c.DB.First(&spot, input.Spot).Error; err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Nieznane miejsce"})
		}
		if !spot.IsFree() {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Miejsce jest juz zajete"})
		}
		occupied := false
		spot.Free = &occupied
		if err := c.DB.Save(&spot).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		spotID := spot.ID
		product.SpotID = &spotID
	}

	if err := c.DB.Create(&product).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewProductRepository(c.DB)
	repo.AddHistory(models.ProductHistory{
		ProductUUID: product.UUID,
		Action:      "CREATED",
		Details:     fmt.Sprintf("Product %s registered", product.Name),
		PerformedBy: username,
	})

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Produkt zostal dodany.",
		"data":    product,
	})
}

func (c *ProductController) UpdateProduct(ctx *fiber.Ctx) error {
	repo := repositories.NewProductRepository(c.DB)
	product, err := repo.GetByUUID(ctx.Params("uuid"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	var input productInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if msg := utils.ValidateFields([]utils.Field{
		{Label: "Nazwa", Value: input.Name, Kind: utils.FieldText},
		{Label: "RFID", Value: input.RFID, Kind: utils.FieldText},
	}); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	if input.Category != 0 {
		var category models.Category
		if err := c.DB.First(&category, input.Category).Error; err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Nieznana kategoria"})
		}
		product.CategoryID = category.ID
	}

	// moving to another spot frees the old one and claims the new one
	if input.Spot != 0 && (product.SpotID == nil || *product.SpotID != input.Spot) {
		var newSpot models.Spot
		if err := c.DB.First(&newSpot, input.Spot).Error; err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Nieznane miejsce"})
		}
		if !newSpot.IsFree() {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Miejsce jest juz zajete"})
		}

		if product.SpotID != nil {
			var oldSpot models.Spot
			if err := c.DB.First(&oldSpot, *product.SpotID).Error; err == nil {
				free := true
				oldSpot.Free = &free
				c.DB.Save(&oldSpot)
			}
		}

		occupied := false
		newSpot.Free = &occupied
		if err := c.DB.Save(&newSpot).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		spotID := newSpot.ID
		product.SpotID = &spotID
	}

	if input.Contractor != 0 {
		contractorID := input.Contractor
		product.ContractorID = &contractorID
	}

	product.RFID = input.RFID
	product.Name = input.Name
	product.Description = input.Description
	product.Weight = input.Weight
	product.Height = input.Height
	product.Width = input.Width
	product.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(product).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	username, _ := ctx.Locals("username").(string)
	repo.AddHistory(models.ProductHistory{
		ProductUUID: product.UUID,
		Action:      "UPDATED",
		Details:     fmt.Sprintf("Product %s edited", product.Name),
		PerformedBy: username,
	})

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Produkt zostal pomyslnie edytowany.",
		"data":    product,
	})
}

func (c *ProductController) DeleteProduct(ctx *fiber.Ctx) error {
	repo := repositories.NewProductRepository(c.DB)
	product, err := repo.GetByUUID(ctx.Params("uuid"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	if product.SpotID != nil {
		var spot models.Spot
		if err := c.DB.First(&spot, *product.SpotID).Error; err == nil {
			free := true
			spot.Free = &free
			c.DB.Save(&spot)
		}
	}

	if err := c.DB.Delete(product).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	username, _ := ctx.Locals("username").(string)
	repo.AddHistory(models.ProductHistory{
		ProductUUID: product.UUID,
		Action:      "DELETED",
		Details:     fmt.Sprintf("Product %s removed", product.Name),
		PerformedBy: username,
	})

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Produkt zostal pomyslnie usuniety.",
	})
}

// FindProductsByUUIDs resolves a document's product selection, failing when
// any uuid is unknown.
func FindProductsByUUIDs(db *gorm.DB, uuids []string) ([]models.Product, error) {
	var products []models.Product
	if err := db.Where("uuid IN ?", uuids).Find(&products).Error; err != nil {
		return nil, err
	}

	found := make([]string, 0, len(products))
	for _, p := range products {
		found = append(found, p.UUID)
	}
	for _, id := range uuids {
		if !slices.Contains(found, id) {
			return nil, fmt.Errorf("unknown product: %s", id)
		}
	}
	return products, nil
}
