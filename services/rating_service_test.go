package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

func testDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestUpdateRestroomRating(t *testing.T) {
	db, mock := testDB(t)

	mock.ExpectQuery(`SELECT COALESCE\(AVG\(rating\), 0\) FROM "reviews"`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(4.25))
	mock.ExpectExec(`UPDATE "restrooms" SET "rating"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, UpdateRestroomRating(db, 7))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRestroomRatingNoReviews(t *testing.T) {
	db, mock := testDB(t)

	mock.ExpectQuery(`SELECT COALESCE\(AVG\(rating\), 0\) FROM "reviews"`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))
	mock.ExpectExec(`UPDATE "restrooms" SET "rating"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, UpdateRestroomRating(db, 3))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecomputeAllRatings(t *testing.T) {
	db, mock := testDB(t)

	mock.ExpectQuery(`SELECT "id" FROM "restrooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

	for _, id := range []int64{1, 2} {
		mock.ExpectQuery(`SELECT COALESCE\(AVG\(rating\), 0\) FROM "reviews"`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(3.5))
		mock.ExpectExec(`UPDATE "restrooms" SET "rating"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	require.NoError(t, RecomputeAllRatings(db))
	require.NoError(t, mock.ExpectationsWereMet())
}
