package auth

import (
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v4"
	"strings"
	"time"
)

type Claims struct {
	jwt.RegisteredClaims
	Username string
}

func (c Claims) SessionID() string {
	return c.ID
}

// BuildJWTString signs a token bound to a session. The token has no expiry of
// its own: it stays usable exactly as long as the session it names.
func BuildJWTString(username, sessionID, secretKey string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       sessionID,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		Username: username,
	})

	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetClaimsFromAuthHeader checks the signature only. Whether the session is
// still alive is up to the session manager.
func GetClaimsFromAuthHeader(header, secretKey string) (Claims, error) {
	tokenString := strings.TrimPrefix(header, "Bearer ")

	if tokenString == "" {
		return Claims{}, errors.New("empty authorization header")
	}

	claims := Claims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secretKey), nil
		})

	if err != nil {
		return Claims{}, err
	}

	if !token.Valid {
		return Claims{}, fmt.Errorf("token is not valid")
	}

	if claims.ID == "" || claims.Username == "" {
		return Claims{}, errors.New("token has no session")
	}

	return claims, nil
}
