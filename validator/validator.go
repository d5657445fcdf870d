package validator

import (
	"regexp"

	"cleverloo/constants"
	"cleverloo/errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var phoneRegex = regexp.MustCompile(`^[0-9]{8,15}$`)

// RegisterCustomValidations installs the custom binding rules on gin's
// validator engine. Called once at startup.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.NewAppError(errors.ErrCodeValidation, "validator engine unavailable", nil)
	}
	return v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
}

// ValidatePhone checks the phone number shape
func ValidatePhone(phone string) error {
	if phone == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Phone number is required.", nil)
	}
	if !phoneRegex.MatchString(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Phone number is not valid.", nil)
	}
	return nil
}

// ValidatePassword enforces the minimum credential length
func ValidatePassword(password string) error {
	if password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password is required.", nil)
	}
	if len(password) < constants.MinPasswordLength {
		return errors.NewAppError(errors.ErrCodeValidation, "New password must be at least 6 characters long.", nil)
	}
	return nil
}

// ValidateRating rejects non-integer-range review ratings
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errors.NewAppError(errors.ErrCodeInvalidRating, "Rating must be between 1 and 5.", nil)
	}
	return nil
}

// ValidateCoordinates bounds-checks decimal-degree coordinates
func ValidateCoordinates(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return errors.NewAppError(errors.ErrCodeInvalidCoords, "Latitude or longitude is out of range.", nil)
	}
	return nil
}

// ValidateQueueStatus rejects statuses outside the enumeration
func ValidateQueueStatus(status string) error {
	if !constants.IsValidQueueStatus(status) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus,
			"Invalid queue status. Must be one of: Vacant, In Use, Cleaning, Under Maintenance.", nil)
	}
	return nil
}

// ValidateFeatures rejects unknown description feature flags
func ValidateFeatures(features []string) error {
	for _, feature := range features {
		if !constants.IsValidFeature(feature) {
			return errors.NewAppError(errors.ErrCodeValidation,
				"Invalid features. Valid features are: cctv, handicap_accessible, baby_changing_station.", nil)
		}
	}
	return nil
}
