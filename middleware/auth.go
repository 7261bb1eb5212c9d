package middleware

import (
	"strings"

	"warehouse-console/config"
	"warehouse-console/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware resolves the session from the credentialed cookie (or a
// bearer header, which the console sends right after login) and hydrates the
// request locals. It is the only writer of the session locals; any failure
// ends with 401 and a redirect hint to the login screen.
func AuthMiddleware(ctx *fiber.Ctx) error {
	tokenString := ctx.Cookies(config.CookieName)

	if tokenString == "" {
		authHeader := ctx.Get("Authorization")
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) == 2 && strings.EqualFold(tokenParts[0], "bearer") {
			tokenString = tokenParts[1]
		}
	}

	if tokenString == "" {
		return unauthorized(ctx, "Missing session token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: Invalid signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil {
		return unauthorized(ctx, "Unauthorized: Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return unauthorized(ctx, "Unauthorized: Invalid token")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return unauthorized(ctx, "Unauthorized: Invalid user ID")
	}

	userUUID, ok := claims["uuid"].(string)
	if !ok || userUUID == "" {
		return unauthorized(ctx, "Unauthorized: Invalid user UUID")
	}

	userType, ok := claims["userType"].(string)
	if !ok || !models.UserType(userType).Valid() {
		return unauthorized(ctx, "Unauthorized: Invalid user type")
	}

	name, _ := claims["name"].(string)
	surname, _ := claims["surname"].(string)
	username, _ := claims["username"].(string)
	sessionID, _ := claims["session_id"].(string)

	ctx.Locals("userID", userID)
	ctx.Locals("sessionID", sessionID)
	ctx.Locals("userUUID", userUUID)
	ctx.Locals("username", username)
	ctx.Locals("name", name)
	ctx.Locals("surname", surname)
	ctx.Locals("userType", models.UserType(userType))

	return ctx.Next()
}

// unauthorized clears the session cookie and points the console at the login
// screen. Authorization failures always terminate the session.
func unauthorized(ctx *fiber.Ctx, message string) error {
	ctx.Cookie(config.GetTokenCookie(""))
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message":  message,
		"redirect": "/",
	})
}

// SessionRole reads the role written by AuthMiddleware. Guards never write it
// back.
func SessionRole(ctx *fiber.Ctx) models.UserType {
	role, ok := ctx.Locals("userType").(models.UserType)
	if !ok {
		return ""
	}
	return role
}
