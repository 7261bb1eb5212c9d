package controllers

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func usersApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	app := fiber.New()
	app.Get("/auth/users", NewUserController(db).GetUsers)
	return app, mock
}

func TestGetUsersFirstPage(t *testing.T) {
	app, mock := usersApp(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."deleted_at" IS NULL ORDER BY id LIMIT \$1`).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "uuid", "username", "surname"}).
			AddRow(1, "u1", "jkowalski", "Kowalski").
			AddRow(2, "u2", "anowak", "Nowak"))

	resp, err := app.Test(jsonRequest("GET", "/auth/users", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, float64(2), body["totalPages"])
	require.Equal(t, float64(12), body["totalElements"])
	require.Equal(t, []interface{}{float64(0), float64(1)}, body["pages"])
	require.Len(t, body["content"], 2)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUsersOutOfRangePageSkipsRowQuery(t *testing.T) {
	app, mock := usersApp(t)

	// Only the COUNT runs; the row query must never be issued for a page
	// past the end.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	resp, err := app.Test(jsonRequest("GET", "/auth/users?page=5", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, "Page out of range", body["message"])

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUsersSurnameFilter(t *testing.T) {
	app, mock := usersApp(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE surname LIKE \$1`).
		WithArgs("%Kowal%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE surname LIKE \$1`).
		WithArgs("%Kowal%", 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "surname"}).AddRow(1, "Kowalski"))

	resp, err := app.Test(jsonRequest("GET", "/auth/users?surname=Kowal", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, mock.ExpectationsWereMet())
}
