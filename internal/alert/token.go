package alert

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	tokenIssuer = "fulfillment-audit"
	tokenTTL    = 5 * time.Minute
)

type Claims struct {
	jwt.RegisteredClaims
	Unfulfilled int `json:"unfulfilled"`
}

func BuildJWTString(unfulfilled int, secret []byte, now time.Time) (string, error) {

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},

		Unfulfilled: unfulfilled,
	})

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseJWTString verifies a token built by BuildJWTString. It is exported for
// webhook receivers written in Go; nothing in this module receives webhooks.
func ParseJWTString(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("token invalid")
	}
	if claims.Issuer != tokenIssuer {
		return nil, fmt.Errorf("unexpected issuer %q", claims.Issuer)
	}

	return claims, nil
}
