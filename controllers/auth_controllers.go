package controllers

import (
	"context"
	"os"

	"cleverloo/constants"
	"cleverloo/dto"
	"cleverloo/models"
	"cleverloo/response"
	"cleverloo/services"
	"cleverloo/validator"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) issueToken(id uint, role, phone string) (string, error) {
	return services.GenerateToken(services.UserInfo{
		ID:    id,
		Role:  role,
		Phone: phone,
	})
}

// UserSignup handles POST /signup/user
func (ac *AuthController) UserSignup(c *gin.Context) {
	var input dto.UserSignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Name, phone number, and password are required.")
		return
	}

	user, err := services.CreateUser(ac.DB, input.Name, input.Phone, input.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}

	token, err := ac.issueToken(user.ID, constants.RoleUser, user.PhoneString())
	if err != nil {
		response.ServerError(c, "Internal server error during sign-up.")
		return
	}

	response.Created(c, "User signed up successfully!", gin.H{
		"user": dto.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Phone: user.PhoneString(),
		},
		"token": token,
	})
}

// UserSignin handles POST /signin/user
func (ac *AuthController) UserSignin(c *gin.Context) {
	var input dto.SigninInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Phone number and password are required.")
		return
	}

	user, err := services.AuthenticateUser(ac.DB, input.Phone, input.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}

	token, err := ac.issueToken(user.ID, constants.RoleUser, user.PhoneString())
	if err != nil {
		response.ServerError(c, "Internal server error during sign-in.")
		return
	}

	response.OK(c, "User signed in successfully!", gin.H{
		"user": dto.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Phone: user.PhoneString(),
		},
		"token": token,
	})
}

// RestroomSignup handles POST /signup/restroom
func (ac *AuthController) RestroomSignup(c *gin.Context) {
	var input dto.RestroomSignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Name, address, phone, password, latitude, and longitude are required.")
		return
	}
	if err := validator.ValidateCoordinates(*input.Latitude, *input.Longitude); err != nil {
		response.FromError(c, err)
		return
	}

	restroom, err := services.CreateRestroom(ac.DB, models.Restroom{
		Name:      input.Name,
		Address:   input.Address,
		Phone:     input.Phone,
		Latitude:  *input.Latitude,
		Longitude: *input.Longitude,
		Type:      input.Type,
		Pictures:  input.Pictures,
	}, input.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}

	token, err := ac.issueToken(restroom.ID, constants.RoleRestroom, restroom.Phone)
	if err != nil {
		response.ServerError(c, "Internal server error during sign-up.")
		return
	}

	response.Created(c, "Restroom signed up successfully!", gin.H{
		"restroom": dto.RestroomAuthResponse{
			ID:    restroom.ID,
			Name:  restroom.Name,
			Phone: restroom.Phone,
			Type:  restroom.Type,
		},
		"token": token,
	})
}

// RestroomSignin handles POST /signin/restroom
func (ac *AuthController) RestroomSignin(c *gin.Context) {
	var input dto.SigninInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Phone number and password are required.")
		return
	}

	restroom, err := services.AuthenticateRestroom(ac.DB, input.Phone, input.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}

	token, err := ac.issueToken(restroom.ID, constants.RoleRestroom, restroom.Phone)
	if err != nil {
		response.ServerError(c, "Internal server error during sign-in.")
		return
	}

	response.OK(c, "Restroom signed in successfully!", gin.H{
		"restroom": dto.RestroomAuthResponse{
			ID:    restroom.ID,
			Name:  restroom.Name,
			Phone: restroom.Phone,
			Type:  restroom.Type,
		},
		"token": token,
	})
}

// AuthGoogle handles POST /auth/google: verifies a Google ID token and signs
// the user in, creating the account on first use.
func (ac *AuthController) AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Google token is required.")
		return
	}

	payload, err := verifyGoogleIDToken(c.Request.Context(), input.TokenID)
	if err != nil {
		response.Unauthorized(c, "Invalid Google token.")
		return
	}

	googleUser := dto.GoogleUser{
		Name:          asString(payload.Claims["name"]),
		Email:         asString(payload.Claims["email"]),
		VerifiedEmail: asBool(payload.Claims["email_verified"]),
	}
	if !googleUser.VerifiedEmail {
		response.BadRequest(c, "Email has not been verified.")
		return
	}

	user, err := services.FindOrCreateGoogleUser(ac.DB, googleUser.Name, googleUser.Email)
	if err != nil {
		response.FromError(c, err)
		return
	}

	token, err := ac.issueToken(user.ID, constants.RoleUser, user.PhoneString())
	if err != nil {
		response.ServerError(c, "Internal server error during sign-in.")
		return
	}

	response.OK(c, "User signed in successfully!", gin.H{
		"user": dto.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Phone: user.PhoneString(),
		},
		"token": token,
	})
}

func verifyGoogleIDToken(ctx context.Context, tokenID string) (*idtoken.Payload, error) {
	return idtoken.Validate(ctx, tokenID, os.Getenv("GOOGLE_CLIENT_ID"))
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}
