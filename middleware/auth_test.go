package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cleverloo/constants"
	"cleverloo/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

func authTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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

func authTestRouter(db *gorm.DB, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(db, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": ActorID(c), "role": ActorRole(c)})
	})
	return router
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func userCountRows(count int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(count)
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	router := authTestRouter(nil, constants.RoleUser)

	w := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication token required")
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := authTestRouter(nil, constants.RoleUser)

	w := doRequest(router, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := services.GenerateToken(services.UserInfo{ID: 5, Role: constants.RoleUser, Phone: "9876543210"})
	require.NoError(t, err)

	db, mock := authTestDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(userCountRows(1))

	w := doRequest(authTestRouter(db, constants.RoleUser), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":5`)
}

func TestAuthMiddlewareDeletedAccount(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := services.GenerateToken(services.UserInfo{ID: 5, Role: constants.RoleUser})
	require.NoError(t, err)

	db, mock := authTestDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(userCountRows(0))

	w := doRequest(authTestRouter(db, constants.RoleUser), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestAuthMiddlewareRoleMismatch(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := services.GenerateToken(services.UserInfo{ID: 2, Role: constants.RoleRestroom})
	require.NoError(t, err)

	db, mock := authTestDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "restrooms"`).
		WillReturnRows(userCountRows(1))

	w := doRequest(authTestRouter(db, constants.RoleUser), token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Access denied. Users only.")
}
