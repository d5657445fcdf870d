package response

import (
	"net/http"

	"cleverloo/errors"

	"github.com/gin-gonic/gin"
)

// Every response carries at least a "message" field; extra payload fields
// (user, restroom, token, bookmarks, ...) are merged in at the top level.

func withMessage(message string, data gin.H) gin.H {
	body := gin.H{"message": message}
	for k, v := range data {
		body[k] = v
	}
	return body
}

// OK returns 200 with a message and optional payload fields
func OK(c *gin.Context, message string, data gin.H) {
	c.JSON(http.StatusOK, withMessage(message, data))
}

// Created returns 201 with a message and optional payload fields
func Created(c *gin.Context, message string, data gin.H) {
	c.JSON(http.StatusCreated, withMessage(message, data))
}

// JSON returns 200 with a raw body, for list endpoints that respond with a
// bare array or object without a message envelope
func JSON(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}

// BadRequest returns 400 validation errors
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

// Unauthorized returns 401 authentication errors
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"message": message})
}

// Forbidden returns 403 role/ownership errors
func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, gin.H{"message": message})
}

// NotFound returns 404
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}

// Conflict returns 409 uniqueness violations
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, gin.H{"message": message})
}

// ServerError returns a generic 500 without leaking internals
func ServerError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": message})
}

// FromError maps an error to its taxonomy status; non-AppError values fall
// through to a generic 500
func FromError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.HTTPStatus(), gin.H{"message": appErr.Message})
		return
	}
	ServerError(c, "Internal server error")
}
