package auth

import (
	"errors"
	"time"

	"khe/config"
	"khe/repository"

	"github.com/golang-jwt/jwt/v5"
)

const tokenLifetime = 24 * time.Hour * 7

type Claims struct {
	UserId int             `json:"user_id"`
	Role   repository.Role `json:"role"`
	jwt.RegisteredClaims
}

func CreateToken(user *repository.User) (string, error) {
	return createToken(user, time.Now().Add(tokenLifetime))
}

func createToken(user *repository.User, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserId: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
	return token.SignedString([]byte(config.Env().JWTSecret))
}

// ParseToken verifies signature and expiry and returns the claims.
func ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.Env().JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// HasRole reports whether the claims grant one of roles. An empty list only
// requires a valid token.
func (c *Claims) HasRole(roles ...repository.Role) bool {
	if len(roles) == 0 {
		return true
	}
	for _, role := range roles {
		if c.Role == role {
			return true
		}
	}
	return false
}
