package controllers

import (
	"net/http"
	"testing"

	"cleverloo/constants"
	"cleverloo/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func restroomRouter(db *gorm.DB, actorID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.CtxActorID, actorID)
		c.Set(middleware.CtxActorRole, constants.RoleRestroom)
	})
	rc := NewRestroomController(db, nil, nil)
	router.POST("/restrooms/:id/pictures", rc.AddPicture)
	return router
}

func TestAddPictureCap(t *testing.T) {
	t.Run("adding the fifth picture is rejected", func(t *testing.T) {
		db, mock := controllerTestDB(t)
		mock.ExpectQuery(`SELECT \* FROM "restrooms" WHERE`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "pictures"}).
				AddRow(1, "Central Station", "9876543210", "{u1,u2,u3,u4}"))

		w := postJSON(restroomRouter(db, 1), "/restrooms/1/pictures", `{"imageUrl":"u5"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Maximum 4 pictures allowed. Please delete some pictures first.")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("adding under the cap succeeds", func(t *testing.T) {
		db, mock := controllerTestDB(t)
		mock.ExpectQuery(`SELECT \* FROM "restrooms" WHERE`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "pictures"}).
				AddRow(1, "Central Station", "9876543210", "{u1,u2,u3}"))
		mock.ExpectExec(`UPDATE "restrooms" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		w := postJSON(restroomRouter(db, 1), "/restrooms/1/pictures", `{"imageUrl":"u4"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Picture uploaded successfully!")
		assert.Contains(t, w.Body.String(), "u4")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign facility is a 403 before any lookup", func(t *testing.T) {
		db, _ := controllerTestDB(t)

		w := postJSON(restroomRouter(db, 2), "/restrooms/1/pictures", `{"imageUrl":"u1"}`)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "You can only modify your own restroom.")
	})
}
