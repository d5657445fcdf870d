package services

import (
	"testing"

	"cleverloo/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, CheckPassword("hunter22", hash))
	assert.False(t, CheckPassword("hunter23", hash))
	assert.False(t, CheckPassword("hunter22", "not-a-hash"))
}

func TestCreateUserDuplicatePhone(t *testing.T) {
	db, mock := testDB(t)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := CreateUser(db, "Asha", "9876543210", "hunter22")
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodePhoneExists, appErr.Code)
	assert.Equal(t, "User with this phone number already exists.", appErr.Message)
}

func TestAuthenticateUser(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		db, mock := testDB(t)
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE phone =`).
			WithArgs("9876543210", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "password_hash"}).
				AddRow(1, "Asha", "9876543210", hash))

		user, err := AuthenticateUser(db, "9876543210", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
		assert.Equal(t, "Asha", user.Name)
	})

	t.Run("wrong password", func(t *testing.T) {
		db, mock := testDB(t)
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE phone =`).
			WithArgs("9876543210", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "password_hash"}).
				AddRow(1, "Asha", "9876543210", hash))

		_, err := AuthenticateUser(db, "9876543210", "wrong")
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "Invalid phone number or password.", appErr.Message)
	})

	t.Run("unknown phone reads the same as wrong password", func(t *testing.T) {
		db, mock := testDB(t)
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE phone =`).
			WithArgs("0000000000", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := AuthenticateUser(db, "0000000000", "hunter22")
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "Invalid phone number or password.", appErr.Message)
	})
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(assert.AnError))
	assert.False(t, isUniqueViolation(nil))
}
