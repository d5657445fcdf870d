package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cleverloo/services"
	"cleverloo/validator"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

func controllerTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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

func authRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validator.RegisterCustomValidations())

	ac := NewAuthController(db)
	router := gin.New()
	router.POST("/signup/user", ac.UserSignup)
	router.POST("/signin/user", ac.UserSignin)
	router.POST("/signup/restroom", ac.RestroomSignup)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUserSignin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := services.HashPassword("hunter22")
	require.NoError(t, err)

	t.Run("valid credentials return a token", func(t *testing.T) {
		db, mock := controllerTestDB(t)
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE phone =`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "password_hash"}).
				AddRow(1, "Asha", "9876543210", hash))

		w := postJSON(authRouter(t, db), "/signin/user",
			`{"phone":"9876543210","password":"hunter22"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "User signed in successfully!")
		assert.Contains(t, w.Body.String(), "token")
		assert.NotContains(t, w.Body.String(), "password_hash")
	})

	t.Run("wrong password is a 401", func(t *testing.T) {
		db, mock := controllerTestDB(t)
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE phone =`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "password_hash"}).
				AddRow(1, "Asha", "9876543210", hash))

		w := postJSON(authRouter(t, db), "/signin/user",
			`{"phone":"9876543210","password":"nope"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid phone number or password.")
	})

	t.Run("missing fields are a 400", func(t *testing.T) {
		db, _ := controllerTestDB(t)

		w := postJSON(authRouter(t, db), "/signin/user", `{"phone":"9876543210"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserSignup(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("duplicate phone is a 409", func(t *testing.T) {
		db, mock := controllerTestDB(t)
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnError(&pq.Error{Code: "23505"})

		w := postJSON(authRouter(t, db), "/signup/user",
			`{"name":"Asha","phone":"9876543210","password":"hunter22"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "User with this phone number already exists.")
	})

	t.Run("malformed phone is rejected by binding", func(t *testing.T) {
		db, _ := controllerTestDB(t)

		w := postJSON(authRouter(t, db), "/signup/user",
			`{"name":"Asha","phone":"abc","password":"hunter22"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("short password is rejected by binding", func(t *testing.T) {
		db, _ := controllerTestDB(t)

		w := postJSON(authRouter(t, db), "/signup/user",
			`{"name":"Asha","phone":"9876543210","password":"12345"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRestroomSignup(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("out of range coordinates are a 400", func(t *testing.T) {
		db, _ := controllerTestDB(t)

		w := postJSON(authRouter(t, db), "/signup/restroom",
			`{"name":"Central Station","address":"MG Road","phone":"9876543210","password":"hunter22","latitude":999,"longitude":77.59}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Latitude or longitude is out of range.")
	})

	t.Run("longitude past 180 is a 400", func(t *testing.T) {
		db, _ := controllerTestDB(t)

		w := postJSON(authRouter(t, db), "/signup/restroom",
			`{"name":"Central Station","address":"MG Road","phone":"9876543210","password":"hunter22","latitude":12.97,"longitude":-200}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Latitude or longitude is out of range.")
	})
}
