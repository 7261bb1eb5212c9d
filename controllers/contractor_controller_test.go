package controllers

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func contractorsApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	controller := NewContractorController(db)

	app := fiber.New()
	app.Post("/contractors", func(ctx *fiber.Ctx) error {
		ctx.Locals("username", "jkowalski")
		ctx.Locals("userID", float64(7))
		return controller.CreateContractor(ctx)
	})
	return app, mock
}

func TestCreateContractorRejectsMissingFieldsWithoutDBWrite(t *testing.T) {
	app, mock := contractorsApp(t)

	resp, err := app.Test(jsonRequest("POST", "/contractors", fiber.Map{
		"name":  "",
		"phone": "",
		"email": "biuro@acme.pl",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, "Brakujace pola: Nazwa, Telefon", body["message"])

	// no INSERT was expected and none may have happened
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContractorRejectsBadFormatsWithoutDBWrite(t *testing.T) {
	app, mock := contractorsApp(t)

	resp, err := app.Test(jsonRequest("POST", "/contractors", fiber.Map{
		"name":  "Acme",
		"phone": "abc",
		"email": "zly-adres",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, "Nieprawidlowy format: Telefon, Email", body["message"])

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContractorHalfEmptyFormReportsOnlyMissing(t *testing.T) {
	app, mock := contractorsApp(t)

	resp, err := app.Test(jsonRequest("POST", "/contractors", fiber.Map{
		"name":  "Acme",
		"phone": "",
		"email": "zly-adres",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, "Brakujace pola: Telefon", body["message"])

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContractorPersistsCleanForm(t *testing.T) {
	app, mock := contractorsApp(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "contractors"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	resp, err := app.Test(jsonRequest("POST", "/contractors", fiber.Map{
		"name":  "Acme Sp. z o.o.",
		"phone": "+48 123 456 789",
		"email": "biuro@acme.pl",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, true, body["success"])
	require.Equal(t, "Kontrahent zostal dodany.", body["message"])

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "jkowalski", data["accountMaganerUsername"])

	require.NoError(t, mock.ExpectationsWereMet())
}
