package repositories

import (
	"testing"

	"backend/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
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

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestIngredientCreateTranslatesDuplicateKey(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIngredientRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "ingredients"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_ingredients_name"})
	mock.ExpectRollback()

	err := repo.Create(&models.Ingredient{
		Name:      "Chicken Breast",
		Nutrients: models.NutrientMap{"Protein": 31},
	})
	assert.ErrorIs(t, err, ErrIngredientExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIngredientSearchIsCaseInsensitive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIngredientRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "description", "reference_quantity", "reference_unit", "nutrients"}).
		AddRow("id-1", "Chicken Breast", "", 100.0, "g", []byte(`{"Protein":31}`))
	mock.ExpectQuery(`SELECT \* FROM "ingredients" WHERE name ILIKE \$1 ORDER BY name`).
		WithArgs("%CHICKEN%").
		WillReturnRows(rows)

	found, err := repo.Search("CHICKEN")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Chicken Breast", found[0].Name)
	assert.Equal(t, 31.0, found[0].Nutrients["Protein"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIngredientFindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIngredientRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "ingredients" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID("missing-id")
	assert.ErrorIs(t, err, ErrIngredientNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
