package services

import (
	goerrors "errors"

	"cleverloo/constants"
	"cleverloo/errors"
	"cleverloo/models"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

// HashPassword hashes a plaintext credential; the raw password is never stored.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword verifies a plaintext credential against its stored hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// isUniqueViolation reports whether err is the store's unique-constraint
// signal (Postgres 23505). The constraint is the only phone-uniqueness
// check; there is no pre-insert SELECT.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if goerrors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return goerrors.Is(err, gorm.ErrDuplicatedKey)
}

// CreateUser inserts a user account with a hashed credential.
func CreateUser(db *gorm.DB, name, phone, password string) (models.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Internal server error during sign-up.", err)
	}

	user := models.User{
		Name:         name,
		Phone:        &phone,
		PasswordHash: hash,
		Bookmarks:    pq.Int64Array{},
	}
	if err := db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return models.User{}, errors.NewAppError(errors.ErrCodePhoneExists, "User with this phone number already exists.", err)
		}
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Internal server error during sign-up.", err)
	}
	return user, nil
}

// CreateRestroom inserts a restroom account with a hashed credential.
func CreateRestroom(db *gorm.DB, input models.Restroom, password string) (models.Restroom, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return models.Restroom{}, errors.NewAppError(errors.ErrCodeDBError, "Internal server error during sign-up.", err)
	}

	input.PasswordHash = hash
	if input.Type == "" {
		input.Type = constants.TypePublic
	}
	if input.Pictures == nil {
		input.Pictures = pq.StringArray{}
	}
	if err := db.Create(&input).Error; err != nil {
		if isUniqueViolation(err) {
			return models.Restroom{}, errors.NewAppError(errors.ErrCodePhoneExists, "Restroom with this phone number already exists.", err)
		}
		return models.Restroom{}, errors.NewAppError(errors.ErrCodeDBError, "Internal server error during sign-up.", err)
	}
	return input, nil
}

// AuthenticateUser resolves phone+password to a user account. Unknown phone
// and wrong password are indistinguishable to the caller.
func AuthenticateUser(db *gorm.DB, phone, password string) (models.User, error) {
	var user models.User
	if err := db.Where("phone = ?", phone).First(&user).Error; err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeInvalidPassword, "Invalid phone number or password.", err)
	}
	if !CheckPassword(password, user.PasswordHash) {
		return models.User{}, errors.NewAppError(errors.ErrCodeInvalidPassword, "Invalid phone number or password.", nil)
	}
	return user, nil
}

// AuthenticateRestroom resolves phone+password to a restroom account.
func AuthenticateRestroom(db *gorm.DB, phone, password string) (models.Restroom, error) {
	var restroom models.Restroom
	if err := db.Where("phone = ?", phone).First(&restroom).Error; err != nil {
		return models.Restroom{}, errors.NewAppError(errors.ErrCodeInvalidPassword, "Invalid phone number or password.", err)
	}
	if !CheckPassword(password, restroom.PasswordHash) {
		return models.Restroom{}, errors.NewAppError(errors.ErrCodeInvalidPassword, "Invalid phone number or password.", nil)
	}
	return restroom, nil
}

// FindOrCreateGoogleUser matches a verified Google identity to a user
// account by email, creating one on first sign-in. Google accounts carry no
// phone and no credential; they authenticate through Google only.
func FindOrCreateGoogleUser(db *gorm.DB, name, email string) (models.User, error) {
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return user, nil
	}
	if !goerrors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Internal server error during sign-in.", err)
	}

	user = models.User{
		Name:      name,
		Email:     &email,
		Bookmarks: pq.Int64Array{},
	}
	if err := db.Create(&user).Error; err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Internal server error during sign-in.", err)
	}
	return user, nil
}
