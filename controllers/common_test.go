package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cleverloo/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ownershipContext(t *testing.T, actorID uint, pathID string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/restrooms/"+pathID+"/settings", nil)
	c.Params = gin.Params{{Key: "id", Value: pathID}}
	c.Set(middleware.CtxActorID, actorID)
	return c, w
}

func TestRequireOwnership(t *testing.T) {
	t.Run("matching id passes", func(t *testing.T) {
		c, _ := ownershipContext(t, 7, "7")
		id, ok := requireOwnership(c)
		assert.True(t, ok)
		assert.Equal(t, uint(7), id)
	})

	t.Run("foreign id is a 403", func(t *testing.T) {
		c, w := ownershipContext(t, 7, "8")
		_, ok := requireOwnership(c)
		assert.False(t, ok)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "You can only modify your own restroom.")
	})

	t.Run("malformed id is a 400", func(t *testing.T) {
		c, w := ownershipContext(t, 7, "abc")
		_, ok := requireOwnership(c)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid restroom ID.")
	})
}

func TestParseRestroomID(t *testing.T) {
	c, _ := ownershipContext(t, 1, "42")
	id, ok := parseRestroomID(c)
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	c, w := ownershipContext(t, 1, "0")
	_, ok = parseRestroomID(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
