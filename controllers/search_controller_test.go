package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func searchTestRouter(sc *SearchController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", Root)
	router.GET("/health", Health)
	router.GET("/restrooms/search", sc.Search)
	return router
}

func TestRootAndHealth(t *testing.T) {
	router := searchTestRouter(&SearchController{})

	for _, path := range []string{"/", "/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "timestamp")
	}
}

func TestSearchRequiresCoordinates(t *testing.T) {
	router := searchTestRouter(&SearchController{})

	tests := []struct {
		name string
		path string
	}{
		{"no parameters", "/restrooms/search"},
		{"latitude only", "/restrooms/search?latitude=12.97"},
		{"longitude only", "/restrooms/search?longitude=77.59"},
		{"non-numeric latitude", "/restrooms/search?latitude=abc&longitude=77.59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "User latitude and longitude are required.")
		})
	}
}
