package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alzin/comy-chatsync/pkg/errcode"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims Claims) string {
	t.Helper()
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func sessionClaims(userId string, ttl time.Duration) Claims {
	return Claims{
		UserId:     userId,
		PlatformId: 5,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
}

func TestParseToken(t *testing.T) {
	token := signToken(t, sessionClaims("u1", time.Hour))

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserId)
	assert.Equal(t, 5, claims.PlatformId)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token := signToken(t, sessionClaims("u1", time.Hour))

	_, err := ParseToken(token, "other-secret")
	assert.ErrorIs(t, err, errcode.ErrTokenInvalid)
}

func TestParseToken_Expired(t *testing.T) {
	token := signToken(t, sessionClaims("u1", -time.Hour))

	_, err := ParseToken(token, testSecret)
	assert.ErrorIs(t, err, errcode.ErrTokenExpired)
}

func TestViewerId(t *testing.T) {
	token := signToken(t, sessionClaims("u1", time.Hour))

	viewerId, err := ViewerId(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "u1", viewerId)
}

func TestViewerId_EmptyUser(t *testing.T) {
	token := signToken(t, sessionClaims("", time.Hour))

	_, err := ViewerId(token, testSecret)
	assert.ErrorIs(t, err, errcode.ErrTokenInvalid)
}
