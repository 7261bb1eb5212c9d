package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"warehouse-console/config"
	"warehouse-console/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func guardedApp(guard fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/guarded", AuthMiddleware, guard, func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"ok": true})
	})
	return app
}

func requestAs(t *testing.T, app *fiber.App, role models.UserType) *http.Response {
	t.Helper()
	req := httptest.NewRequest("GET", "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: config.CookieName, Value: signedToken(t, role, nil)})
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAdminOnly(t *testing.T) {
	app := guardedApp(AdminOnly)

	resp := requestAs(t, app, models.UserTypeAdmin)
	resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	for _, role := range []models.UserType{models.UserTypeUser, models.UserTypeSupervisor} {
		resp := requestAs(t, app, role)
		require.Equal(t, fiber.StatusForbidden, resp.StatusCode, string(role))
		body := decodeBody(t, resp)
		require.Equal(t, "/app/halls", body["redirect"], string(role))
	}
}

func TestUserOnly(t *testing.T) {
	app := guardedApp(UserOnly)

	for _, role := range []models.UserType{models.UserTypeUser, models.UserTypeSupervisor} {
		resp := requestAs(t, app, role)
		resp.Body.Close()
		require.Equal(t, fiber.StatusOK, resp.StatusCode, string(role))
	}

	resp := requestAs(t, app, models.UserTypeAdmin)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	body := decodeBody(t, resp)
	require.Equal(t, "/app/users", body["redirect"])
}

func TestSupervisorOnlyBlocksWithoutRedirect(t *testing.T) {
	app := guardedApp(SupervisorOnly)

	resp := requestAs(t, app, models.UserTypeSupervisor)
	resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	for _, role := range []models.UserType{models.UserTypeUser, models.UserTypeAdmin} {
		resp := requestAs(t, app, role)
		require.Equal(t, fiber.StatusForbidden, resp.StatusCode, string(role))
		body := decodeBody(t, resp)
		_, hasRedirect := body["redirect"]
		require.False(t, hasRedirect, string(role))
	}
}

func TestGuardsDoNotChangeSessionRole(t *testing.T) {
	app := fiber.New()
	app.Get("/guarded", AuthMiddleware, UserOnly, func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"userType": SessionRole(ctx)})
	})

	resp := requestAs(t, app, models.UserTypeSupervisor)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	require.Equal(t, "SUPERVISOR", body["userType"])
}
