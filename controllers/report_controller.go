package controllers

import (
	"warehouse-console/models"
	"warehouse-console/services"
	"warehouse-console/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReportController struct {
	DB       *gorm.DB
	Notifier *services.Notifier
}

func NewReportController(DB *gorm.DB, notifier *services.Notifier) *ReportController {
	return &ReportController{DB: DB, Notifier: notifier}
}

// GetReports lists help tickets newest first.
func (c *ReportController) GetReports(ctx *fiber.Ctx) error {
	var reports []models.Report
	if err := c.DB.Order("created_at DESC").Find(&reports).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(reports)
}

// CreateReport stores a help ticket and forwards it to the support inbox in
// the background; the mail outcome lands in the process notifier rather than
// in this response.
func (c *ReportController) CreateReport(ctx *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Content  string `json:"content"`
		Type     string `json:"type"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	if msg := utils.ValidateFields([]utils.Field{
		{Label: "Uzytkownik", Value: input.Username, Kind: utils.FieldText},
		{Label: "Email", Value: input.Email, Kind: utils.FieldEmail},
		{Label: "Tresc", Value: input.Content, Kind: utils.FieldText},
	}); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	if input.Type == "" {
		input.Type = "NORMAL"
	}

	var userID uint
	if id, ok := ctx.Locals("userID").(float64); ok {
		userID = uint(id)
	}

	report := models.Report{
		UserID:   userID,
		UserName: input.Username,
		Email:    input.Email,
		Type:     input.Type,
		Content:  input.Content,
	}
	if err := c.DB.Create(&report).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	go func(r models.Report) {
		if err := services.SendReportMail(r.UserName, r.Email, r.Type, r.Content); err != nil {
			c.Notifier.Show(services.NotificationError, "Blad",
				"Nie udalo sie przeslac zgloszenia do skrzynki wsparcia", 0)
			return
		}
		c.Notifier.Show(services.NotificationSuccess, "Sukces",
			"Zgloszenie zostalo przekazane do wsparcia", 0)
	}(report)

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Zgloszenie zostalo wyslane!",
	})
}

// GetNotification exposes the process-wide notification slot.
func (c *ReportController) GetNotification(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(c.Notifier.Current())
}

func (c *ReportController) CloseNotification(ctx *fiber.Ctx) error {
	c.Notifier.Close()
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
