package jwt

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/alzin/comy-chatsync/pkg/errcode"
)

// Claims represents the session token claims. The viewer identity for
// a sync session comes out of UserId.
type Claims struct {
	UserId     string `json:"user_id"`
	PlatformId int    `json:"platform_id"`
	jwt.RegisteredClaims
}

// ParseToken parses and validates a session token
func ParseToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errcode.ErrTokenExpired.Wrap(err)
		}
		return nil, errcode.ErrTokenInvalid.Wrap(err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errcode.ErrTokenInvalid
}

// ViewerId extracts the viewer identifier from a session token.
func ViewerId(tokenString, secret string) (string, error) {
	claims, err := ParseToken(tokenString, secret)
	if err != nil {
		return "", err
	}
	if claims.UserId == "" {
		return "", errcode.ErrTokenInvalid
	}
	return claims.UserId, nil
}
