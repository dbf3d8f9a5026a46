package utils

import (
	"errors"
	"time"

	"github.com/rightguydaniel/deluxconex-BE/config"

	"github.com/golang-jwt/jwt"
)

// GenerateToken creates a signed JWT for the given user with its role baked
// into the claims. The token expires after the given duration.
func GenerateToken(userID, email, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// GenerateResetToken creates a short-lived token that authorizes a single
// password reset. A purpose claim keeps it from being accepted as a
// session token.
func GenerateResetToken(userID string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":     userID,
		"purpose": "password_reset",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ExtractResetClaims validates a password reset token and returns the user
// ID it was issued for.
func ExtractResetClaims(tokenString string) (string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	if purpose, _ := claims["purpose"].(string); purpose != "password_reset" {
		return "", errors.New("not a password reset token")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}
	return sub, nil
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
}

// ExtractClaimsFromToken extracts the user ID, email and role from a valid
// token string.
func ExtractClaimsFromToken(tokenString string) (userID, email, role string, err error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", "", errors.New("invalid token")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", "", errors.New("token does not contain a valid 'sub' claim")
	}
	em, _ := claims["email"].(string)
	rl, _ := claims["role"].(string)
	return sub, em, rl, nil
}
