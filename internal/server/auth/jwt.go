// Package auth issues and verifies the HS256 tokens that authenticate
// employer API calls. Candidates never hold a JWT; their access goes
// through single-use offer tokens instead.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tajaa/matcha-recruit-sub001/internal/common"
)

// Claims extends the registered claims with the authenticated employer id.
type Claims struct {
	jwt.RegisteredClaims
	EmployerID string
}

func GenerateToken(employerID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		EmployerID: employerID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetEmployerIDFromToken verifies the signature and expiry and returns the
// employer id. Any failure collapses into common.ErrUnauthorized; callers
// do not get to distinguish a forged token from an expired one.
func GetEmployerIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", common.ErrUnauthorized
	}

	return claims.EmployerID, nil
}
