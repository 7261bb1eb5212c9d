package controllers

import (
	"errors"

	"warehouse-console/models"
	"warehouse-console/repositories"
	"warehouse-console/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContractorController struct {
	DB *gorm.DB
}

func NewContractorController(DB *gorm.DB) *ContractorController {
	return &ContractorController{DB: DB}
}

// validateContractor is the submit gate: every missing field is reported by
// name first; format checks run only once nothing is missing. A non-empty
// result aborts the request before any DB write.
func validateContractor(name, phone, email string) string {
	return utils.ValidateFields([]utils.Field{
		{Label: "Nazwa", Value: name, Kind: utils.FieldText},
		{Label: "Telefon", Value: phone, Kind: utils.FieldPhone},
		{Label: "Email", Value: email, Kind: utils.FieldEmail},
	})
}

func (c *ContractorController) GetAllContractors(ctx *fiber.Ctx) error {
	repo := repositories.NewContractorRepository(c.DB)
	contractors, err := repo.GetAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(contractors)
}

func (c *ContractorController) CreateContractor(ctx *fiber.Ctx) error {
	var input struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Email string `json:"email"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if msg := validateContractor(input.Name, input.Phone, input.Email); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	username, _ := ctx.Locals("username").(string)
	contractor := models.Contractor{
		UUID:                   uuid.NewString(),
		Name:                   input.Name,
		Phone:                  input.Phone,
		Email:                  input.Email,
		AccountManagerUsername: username,
		CreatedBy:              int(ctx.Locals("userID").(float64)),
	}

	repo := repositories.NewContractorRepository(c.DB)
	if err := repo.Create(&contractor); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Kontrahent zostal dodany.",
		"data":    contractor,
	})
}

func (c *ContractorController) UpdateContractor(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	repo := repositories.NewContractorRepository(c.DB)
	contractor, err := repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Contractor not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Email string `json:"email"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if msg := validateContractor(input.Name, input.Phone, input.Email); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	contractor.Name = input.Name
	contractor.Phone = input.Phone
	contractor.Email = input.Email
	contractor.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := repo.Update(contractor); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Kontrahent zostal zaktualizowany.",
		"data":    contractor,
	})
}

func (c *ContractorController) DeleteContractor(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	repo := repositories.NewContractorRepository(c.DB)
	if _, err := repo.GetByID(uint(id)); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Contractor not found"})
	}

	if err := repo.Delete(uint(id)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Kontrahent zostal usuniety.",
	})
}
