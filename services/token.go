package services

import (
	"os"
	"time"

	"cleverloo/errors"

	"github.com/dgrijalva/jwt-go"
)

// TokenTTL is the fixed bearer token lifetime.
const TokenTTL = 24 * time.Hour

// UserInfo is the identity embedded in every token.
type UserInfo struct {
	ID    uint   `json:"id"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func secretKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateToken issues a signed HS256 token for the given identity.
func GenerateToken(userInfo UserInfo) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(TokenTTL).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ParseToken verifies the signature and expiry and returns the embedded
// identity. Expired, malformed or tampered tokens are rejected.
func ParseToken(tokenString string) (UserInfo, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid or expired token", nil)
		}
		return secretKey(), nil
	})
	if err != nil || !token.Valid {
		return UserInfo{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid or expired token", err)
	}
	return claims.UserInfo, nil
}
