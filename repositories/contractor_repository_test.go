package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestContractorRepositoryGetAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContractorRepository(db)

	rows := sqlmock.NewRows([]string{"id", "uuid", "name", "phone", "email"}).
		AddRow(1, "u1", "Acme", "+48 123 456 789", "biuro@acme.pl").
		AddRow(2, "u2", "Budmex", "+48 987 654 321", "kontakt@budmex.pl")

	mock.ExpectQuery(`SELECT \* FROM "contractors" WHERE "contractors"\."deleted_at" IS NULL ORDER BY id`).
		WillReturnRows(rows)

	contractors, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, contractors, 2)
	require.Equal(t, "Acme", contractors[0].Name)
	require.Equal(t, "kontakt@budmex.pl", contractors[1].Email)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContractorRepositoryGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContractorRepository(db)

	rows := sqlmock.NewRows([]string{"id", "uuid", "name"}).
		AddRow(5, "u5", "Acme")

	mock.ExpectQuery(`SELECT \* FROM "contractors" WHERE "contractors"\."id" = \$1`).
		WithArgs(5, 1).
		WillReturnRows(rows)

	contractor, err := repo.GetByID(5)
	require.NoError(t, err)
	require.Equal(t, uint(5), contractor.ID)
	require.Equal(t, "Acme", contractor.Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContractorRepositoryGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContractorRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "contractors" WHERE "contractors"\."id" = \$1`).
		WithArgs(99, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(99)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestContractorRepositoryDeleteIsSoft(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContractorRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "contractors" SET "deleted_at"=\$1 WHERE "contractors"\."id" = \$2`).
		WithArgs(sqlmock.AnyArg(), 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(3))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWarehouseRepositoryGetLocationsFlatRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWarehouseRepository(db)

	free := true
	rows := sqlmock.NewRows([]string{
		"id", "spot_uuid", "spot_name", "free",
		"shelf_id", "shelf_uuid", "shelf_name",
		"hall_id", "hall_uuid", "hall_name", "warehouse_uuid",
	}).AddRow(1, "sp1", "A-1-1", free, 1, "sh1", "Regal 1", 1, "h1", "Hala A", "w1")

	mock.ExpectQuery(`FROM "spots" JOIN shelves ON shelves\.id = spots\.shelf_id JOIN halls`).
		WithArgs("w1").
		WillReturnRows(rows)

	records, err := repo.GetLocations("w1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Hala A", records[0].HallName)
	require.Equal(t, "sp1", records[0].SpotUUID)
	require.NotNil(t, records[0].Free)
	require.True(t, *records[0].Free)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepositoryCountAppliesFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" LEFT JOIN categories .+ WHERE products\.name LIKE \$1`).
		WithArgs("%paleta%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(17))

	total, err := repo.Count(ProductFilter{Name: "paleta"})
	require.NoError(t, err)
	require.Equal(t, int64(17), total)

	require.NoError(t, mock.ExpectationsWereMet())
}
