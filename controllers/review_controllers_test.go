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

func reviewRouter(db *gorm.DB, actorID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.CtxActorID, actorID)
		c.Set(middleware.CtxActorRole, constants.RoleUser)
	})
	rc := NewReviewController(db, nil)
	router.POST("/restrooms/:id/reviews", rc.CreateReview)
	return router
}

func TestCreateReview(t *testing.T) {
	t.Run("author reload failure still returns the created review", func(t *testing.T) {
		db, mock := controllerTestDB(t)

		mock.ExpectQuery(`SELECT \* FROM "restrooms" WHERE`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		mock.ExpectQuery(`INSERT INTO "reviews"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		mock.ExpectQuery(`SELECT COALESCE\(AVG\(rating\), 0\) FROM "reviews"`).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(4.0))
		mock.ExpectExec(`UPDATE "restrooms" SET "rating"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT \* FROM "reviews" WHERE`).
			WillReturnError(assert.AnError)

		w := postJSON(reviewRouter(db, 5), "/restrooms/2/reviews", `{"rating":4,"comment":"clean"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Review submitted successfully!")
		assert.Contains(t, w.Body.String(), `"user_name":""`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid rating is a 400", func(t *testing.T) {
		db, _ := controllerTestDB(t)

		w := postJSON(reviewRouter(db, 5), "/restrooms/2/reviews", `{"rating":6}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Rating must be between 1 and 5.")
	})

	t.Run("more than one picture is a 400", func(t *testing.T) {
		db, _ := controllerTestDB(t)

		w := postJSON(reviewRouter(db, 5), "/restrooms/2/reviews",
			`{"rating":4,"pictures":["p1","p2"]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "You can only upload 1 picture per review.")
	})
}
