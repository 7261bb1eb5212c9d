package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"warehouse-console/config"
	"warehouse-console/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func init() {
	config.LoadConfig()
}

func signedToken(t *testing.T, userType models.UserType, mutate func(jwt.MapClaims)) string {
	t.Helper()

	claims := jwt.MapClaims{
		"user_id":    float64(7),
		"uuid":       "11111111-2222-3333-4444-555555555555",
		"username":   "jkowalski",
		"name":       "Jan",
		"surname":    "Kowalski",
		"userType":   string(userType),
		"session_id": "sess-1",
		"exp":        time.Now().Add(time.Hour).Unix(),
	}
	if mutate != nil {
		mutate(claims)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.JWTSecret))
	require.NoError(t, err)
	return token
}

func sessionApp() *fiber.App {
	app := fiber.New()
	app.Get("/session", AuthMiddleware, func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"username": ctx.Locals("username"),
			"userType": ctx.Locals("userType"),
		})
	})
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestAuthMiddlewareAcceptsCookie(t *testing.T) {
	app := sessionApp()

	req := httptest.NewRequest("GET", "/session", nil)
	req.AddCookie(&http.Cookie{Name: config.CookieName, Value: signedToken(t, models.UserTypeUser, nil)})

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, "jkowalski", body["username"])
	require.Equal(t, "USER", body["userType"])
}

func TestAuthMiddlewareAcceptsBearerHeader(t *testing.T) {
	app := sessionApp()

	req := httptest.NewRequest("GET", "/session", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, models.UserTypeAdmin, nil))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	app := sessionApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/session", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, "/", body["redirect"])
}

func TestAuthMiddlewareRejectsBadSignature(t *testing.T) {
	app := sessionApp()

	claims := jwt.MapClaims{
		"user_id":  float64(7),
		"uuid":     "11111111-2222-3333-4444-555555555555",
		"userType": "USER",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("not-the-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/session", nil)
	req.AddCookie(&http.Cookie{Name: config.CookieName, Value: forged})

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	app := sessionApp()

	expired := signedToken(t, models.UserTypeUser, func(claims jwt.MapClaims) {
		claims["exp"] = time.Now().Add(-time.Hour).Unix()
	})

	req := httptest.NewRequest("GET", "/session", nil)
	req.AddCookie(&http.Cookie{Name: config.CookieName, Value: expired})

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsUnknownRole(t *testing.T) {
	app := sessionApp()

	req := httptest.NewRequest("GET", "/session", nil)
	req.AddCookie(&http.Cookie{Name: config.CookieName, Value: signedToken(t, "INTRUDER", nil)})

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, "/", body["redirect"])
}

func TestAuthMiddlewareClearsCookieOnFailure(t *testing.T) {
	app := sessionApp()

	req := httptest.NewRequest("GET", "/session", nil)
	req.AddCookie(&http.Cookie{Name: config.CookieName, Value: "garbage"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var cleared bool
	for _, c := range resp.Cookies() {
		if c.Name == config.CookieName && c.Expires.Before(time.Now()) {
			cleared = true
		}
	}
	require.True(t, cleared, "expected an expired session cookie in the response")
}
