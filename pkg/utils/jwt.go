package utils

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/alimikegami/pettech-microservices/pkg/errs"
	"github.com/golang-jwt/jwt"
)

type JWTClaims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

func CreateJWTToken(userID int64, username string, jwtSecretKey string, expiresIn time.Duration) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		Username: username,
		StandardClaims: jwt.StandardClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(expiresIn).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(jwtSecretKey))
}

// CreateServiceToken issues a token for calls made by a service on its own behalf.
func CreateServiceToken(serviceName string, jwtSecretKey string, expiresIn time.Duration) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		Username: serviceName,
		StandardClaims: jwt.StandardClaims{
			Subject:   serviceName,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(expiresIn).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(jwtSecretKey))
}

// ParseJWTToken verifies signature and expiry. It returns errs.ErrExpiredToken
// or errs.ErrInvalidToken on failure.
func ParseJWTToken(tokenString string, jwtSecretKey string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return []byte(jwtSecretKey), nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, errs.ErrExpiredToken
		}
		return nil, errs.ErrInvalidToken
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errs.ErrInvalidToken
	}

	return claims, nil
}

// ExtractBearerToken returns the credential part of an Authorization header
// value, or "" when there is none. The scheme is not checked.
func ExtractBearerToken(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) < 2 {
		return ""
	}

	return parts[1]
}

// ParseBearerHeader is the strict form used by guards: exactly "Bearer <token>".
func ParseBearerHeader(header string) (string, error) {
	if header == "" {
		return "", errs.ErrNotLoggedIn
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errs.ErrInvalidToken
	}

	return parts[1], nil
}
