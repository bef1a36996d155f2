package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return signed
}

func TestDecodeJWT(t *testing.T) {
	secret := []byte("test-secret")
	token := signToken(t, secret, jwt.MapClaims{
		"id":  "9b9eb972-2d40-44e1-b45c-2b53f80c4a6b",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := DecodeJWT(token, secret)
	require.NoError(t, err)
	require.Equal(t, "9b9eb972-2d40-44e1-b45c-2b53f80c4a6b", claims["id"])
}

func TestDecodeJWTWrongSecret(t *testing.T) {
	token := signToken(t, []byte("test-secret"), jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := DecodeJWT(token, []byte("other-secret"))
	require.Error(t, err)
}

func TestDecodeJWTExpired(t *testing.T) {
	secret := []byte("test-secret")
	token := signToken(t, secret, jwt.MapClaims{
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := DecodeJWT(token, secret)
	require.Error(t, err)
}

func TestDecodeJWTGarbage(t *testing.T) {
	_, err := DecodeJWT("not-a-token", []byte("test-secret"))
	require.Error(t, err)
}
