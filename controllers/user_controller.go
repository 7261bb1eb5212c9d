package controllers

import (
	"errors"

	"warehouse-console/models"
	"warehouse-console/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(DB *gorm.DB) *UserController {
	return &UserController{DB: DB}
}

// GetUsers lists accounts page by page; uuid and surname filters narrow the
// result. Out-of-range pages are rejected after the count, before any row
// query.
func (c *UserController) GetUsers(ctx *fiber.Ctx) error {
	page, size := utils.ParsePageRequest(ctx)

	query := c.DB.Model(&models.User{})
	if v := ctx.Query("uuid"); v != "" {
		query = query.Where("uuid = ?", v)
	}
	if v := ctx.Query("surname"); v != "" {
		query = query.Where("surname LIKE ?", "%"+v+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	totalPages := utils.TotalPages(total, size)
	if !utils.ValidPage(page, totalPages) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Page out of range",
		})
	}

	var users []models.User
	if err := query.Order("id").Offset(page * size).Limit(size).Find(&users).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(utils.NewPage(users, page, size, total))
}

func (c *UserController) CreateUser(ctx *fiber.Ctx) error {
	var userInput struct {
		Username string `json:"username" validate:"required,min=3"`
		Name     string `json:"name" validate:"required"`
		Surname  string `json:"surname" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		UserType string `json:"userType" validate:"required"`
	}

	if err := ctx.BodyParser(&userInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(userInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userType := models.UserType(userInput.UserType)
	if !userType.Valid() {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userType"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(userInput.Password), bcrypt.DefaultCost)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to hash password"})
	}

	user := models.User{
		UUID:      uuid.NewString(),
		Username:  userInput.Username,
		Name:      userInput.Name,
		Surname:   userInput.Surname,
		Email:     userInput.Email,
		Password:  string(hashedPassword),
		UserType:  userType,
		Enabled:   true,
		CreatedBy: int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&user).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User created successfully",
	})
}

func (c *UserController) UpdateUser(ctx *fiber.Ctx) error {
	userUUID := ctx.Params("uuid")

	var user models.User
	if err := c.DB.Where("uuid = ?", userUUID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		Name     string `json:"name"`
		Surname  string `json:"surname"`
		Email    string `json:"email"`
		UserType string `json:"userType"`
		Enabled  *bool  `json:"enabled"`
		Lock     *bool  `json:"lock"`
		Password string `json:"password"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Surname != "" {
		user.Surname = input.Surname
	}
	if input.Email != "" {
		if !utils.ValidEmail(input.Email) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid email"})
		}
		user.Email = input.Email
	}
	if input.UserType != "" {
		userType := models.UserType(input.UserType)
		if !userType.Valid() {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userType"})
		}
		user.UserType = userType
	}
	if input.Enabled != nil {
		user.Enabled = *input.Enabled
	}
	if input.Lock != nil {
		user.Lock = *input.Lock
	}
	if input.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to hash password"})
		}
		user.Password = string(hashedPassword)
	}
	user.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&user).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "User updated successfully",
	})
}

func (c *UserController) DeleteUser(ctx *fiber.Ctx) error {
	userUUID := ctx.Params("uuid")

	var user models.User
	if err := c.DB.Where("uuid = ?", userUUID).First(&user).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	// an admin cannot delete their own account mid-session
	if sessionUUID, ok := ctx.Locals("userUUID").(string); ok && sessionUUID == user.UUID {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot delete the active account"})
	}

	if err := c.DB.Delete(&user).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "User deleted successfully",
	})
}
