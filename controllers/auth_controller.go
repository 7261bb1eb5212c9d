package controllers

import (
	"errors"
	"time"

	"warehouse-console/config"
	"warehouse-console/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(DB *gorm.DB) *AuthController {
	return &AuthController{DB: DB}
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
		})
	}

	if input.Username == "" || input.Password == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields",
		})
	}

	sessionID := uuid.NewString()
	now := time.Now()

	// default log FAILED
	loginLog := models.LoginLog{
		SessionID:   sessionID,
		Username:    input.Username,
		LoginAt:     &now,
		IPAddress:   ctx.IP(),
		UserAgent:   ctx.Get("User-Agent"),
		LoginStatus: "FAILED",
		CreatedAt:   now,
	}

	var user models.User
	result := c.DB.Where("username = ? OR email = ?", input.Username, input.Username).First(&user)
	if result.Error != nil {
		reason := "USER_NOT_FOUND"
		loginLog.FailureReason = &reason
		c.DB.Create(&loginLog)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Nieprawidlowy login lub haslo.",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": result.Error.Error(),
		})
	}

	if !user.Enabled || user.Lock {
		reason := "ACCOUNT_DISABLED"
		uid := uint64(user.ID)
		loginLog.UserID = &uid
		loginLog.FailureReason = &reason
		c.DB.Create(&loginLog)

		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Konto jest zablokowane.",
		})
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		reason := "WRONG_PASSWORD"
		uid := uint64(user.ID)
		loginLog.UserID = &uid
		loginLog.FailureReason = &reason
		c.DB.Create(&loginLog)

		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Nieprawidlowy login lub haslo.",
		})
	}

	uid := uint64(user.ID)
	loginLog.UserID = &uid
	loginLog.LoginStatus = "SUCCESS"
	loginLog.FailureReason = nil
	c.DB.Create(&loginLog)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    user.ID,
		"uuid":       user.UUID,
		"username":   user.Username,
		"name":       user.Name,
		"surname":    user.Surname,
		"userType":   string(user.UserType),
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Duration(config.JWTExpiration) * time.Second).Unix(),
		"jti":        uuid.NewString(),
	})

	tokenString, err := token.SignedString([]byte(config.JWTSecret))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to generate token",
		})
	}

	ctx.Cookie(config.GetTokenCookie(tokenString))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"token":    tokenString,
		"userType": user.UserType,
		"redirect": user.UserType.LandingRoute(),
	})
}

// AutoLogin is the session bootstrap round-trip: the guard layer has already
// resolved the cookie, this just echoes the session identity back.
func (c *AuthController) AutoLogin(ctx *fiber.Ctx) error {
	name, _ := ctx.Locals("name").(string)
	surname, _ := ctx.Locals("surname").(string)
	userType, _ := ctx.Locals("userType").(models.UserType)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"name":     name,
		"surname":  surname,
		"userType": userType,
	})
}

// Logout tolerates a dead session: the console also calls it while tearing
// down after a 401, so a bad cookie still gets cleared instead of erroring.
func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	now := time.Now()

	if tokenString := ctx.Cookies(config.CookieName); tokenString != "" {
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte(config.JWTSecret), nil
		})
		if err == nil {
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if sessionID, ok := claims["session_id"].(string); ok && sessionID != "" {
					c.DB.Model(&models.LoginLog{}).
						Where("session_id = ? AND logout_at IS NULL", sessionID).
						Update("logout_at", &now)
				}
			}
		}
	}

	ctx.Cookie(config.GetTokenCookie(""))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logout successful",
	})
}

// GetLoginLogs lists recent sign-in attempts, newest first. Supervisor view.
func (c *AuthController) GetLoginLogs(ctx *fiber.Ctx) error {
	var logs []models.LoginLog
	if err := c.DB.Order("created_at DESC").Limit(200).Find(&logs).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"logs": logs})
}
