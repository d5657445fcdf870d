package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode defines application error codes
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"
	ErrCodeOwnership       ErrorCode = "OWNERSHIP_MISMATCH"

	// Entity errors
	ErrCodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	ErrCodeRestroomNotFound ErrorCode = "RESTROOM_NOT_FOUND"
	ErrCodeRoomNotFound     ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrCodePhoneExists      ErrorCode = "PHONE_EXISTS"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidPhone  ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidRating ErrorCode = "INVALID_RATING"
	ErrCodeInvalidCoords ErrorCode = "INVALID_COORDS"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"
	ErrCodePictureLimit  ErrorCode = "PICTURE_LIMIT"
)

// AppError is the application error carried between services and handlers
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps an error code onto the response taxonomy:
// 400 validation, 401 authentication, 403 authorization, 404 not-found,
// 409 conflict, 500 everything else.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeValidation, ErrCodeRequiredField, ErrCodeInvalidFormat,
		ErrCodeInvalidPhone, ErrCodeInvalidRating, ErrCodeInvalidCoords,
		ErrCodeInvalidStatus, ErrCodePictureLimit:
		return http.StatusBadRequest
	case ErrCodeUnauthorized, ErrCodeInvalidToken, ErrCodeMissingToken,
		ErrCodeInvalidPassword:
		return http.StatusUnauthorized
	case ErrCodeInvalidRole, ErrCodeOwnership:
		return http.StatusForbidden
	case ErrCodeUserNotFound, ErrCodeRestroomNotFound, ErrCodeRoomNotFound,
		ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodePhoneExists, ErrCodeDBDuplicate:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts an AppError from err, nil if it is not one
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrRestroomNotFound = errors.New("restroom not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrPhoneAlreadyUsed = errors.New("phone number already in use")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidInput     = errors.New("invalid input")
	ErrMissingRequired  = errors.New("missing required field")
)
