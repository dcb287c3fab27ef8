package util

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signHS256(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestValidateJWT(t *testing.T) {
	t.Parallel()

	valid := Claims{
		Email: "admin@habeshaexpat.com",
		Role:  "Author",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	t.Run("accepts HMAC token signed with the secret", func(t *testing.T) {
		claims, err := ValidateJWT(signHS256(t, "s3cret", valid), "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "42", claims.Subject)
		assert.Equal(t, "Author", claims.Role)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		_, err := ValidateJWT(signHS256(t, "other", valid), "s3cret")
		assert.Error(t, err)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := valid
		expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		_, err := ValidateJWT(signHS256(t, "s3cret", expired), "s3cret")
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ValidateJWT("not-a-token", "s3cret")
		assert.Error(t, err)
	})
}

func publicKeyPEM(t *testing.T, pub crypto.PublicKey) string {
	t.Helper()
	der, err := x509.MarshalPKIXPublicKey(pub)
	require.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func TestValidateJWTPublicKey(t *testing.T) {
	t.Parallel()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	rsaPEM := publicKeyPEM(t, &rsaKey.PublicKey)

	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	ecPEM := publicKeyPEM(t, &ecKey.PublicKey)

	t.Run("accepts RS256 token", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(rsaKey)
		require.NoError(t, err)
		got, err := ValidateJWT(token, rsaPEM)
		require.NoError(t, err)
		assert.Equal(t, "7", got.Subject)
	})

	t.Run("accepts ES256 token", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodES256, claims).SignedString(ecKey)
		require.NoError(t, err)
		got, err := ValidateJWT(token, ecPEM)
		require.NoError(t, err)
		assert.Equal(t, "7", got.Subject)
	})

	t.Run("rejects HS256 token signed with the public key as secret", func(t *testing.T) {
		forged := Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "attacker",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		for _, pub := range []string{rsaPEM, ecPEM} {
			token := signHS256(t, pub, forged)
			got, err := ValidateJWT(token, pub)
			assert.Error(t, err)
			assert.Nil(t, got)
		}
	})

	t.Run("rejects RS256 token when configured with a shared secret", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(rsaKey)
		require.NoError(t, err)
		_, err = ValidateJWT(token, "s3cret")
		assert.Error(t, err)
	})
}
