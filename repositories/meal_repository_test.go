package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealListByUserPaginatedPastEnd(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMealRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "meals" WHERE user_id = \$1`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery(`SELECT \* FROM "meals" WHERE user_id = \$1 ORDER BY timestamp DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	meals, total, err := repo.ListByUserPaginated(7, 4, 10)
	require.NoError(t, err)
	assert.Empty(t, meals)
	assert.EqualValues(t, 25, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMealLastByUserNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMealRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "meals" WHERE user_id = \$1 ORDER BY timestamp DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.LastByUser(7)
	assert.ErrorIs(t, err, ErrMealNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMealGetByIDAndUserNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMealRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "meals" WHERE id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByIDAndUser("meal-1", 7)
	assert.ErrorIs(t, err, ErrMealNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
