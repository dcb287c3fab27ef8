package util

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the bearer-token claims issued by the platform's auth router.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// parsePublicKey decodes a PEM-encoded PKIX public key.
func parsePublicKey(pemKey string) (any, error) {
	block, _ := pem.Decode([]byte(pemKey))
	if block == nil {
		return nil, errors.New("failed to decode PEM block containing public key")
	}
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	return pub, nil
}

var (
	hmacMethods       = []string{"HS256", "HS384", "HS512"}
	publicKeyMethods  = []string{"RS256", "RS384", "RS512", "ES256", "ES384", "ES512"}
	errHMACWithPubKey = errors.New("HMAC tokens are not accepted when verifying with a public key")
)

// isPublicKey reports whether keyMaterial is a PEM public key rather than a
// shared secret.
func isPublicKey(keyMaterial string) bool {
	return strings.Contains(keyMaterial, "PUBLIC KEY")
}

// keyFuncFor returns the verification key for keyMaterial. A PEM public key
// only verifies RSA and ECDSA tokens; any other material is an HMAC secret
// and only verifies HMAC tokens.
func keyFuncFor(keyMaterial string) jwt.Keyfunc {
	if isPublicKey(keyMaterial) {
		return func(token *jwt.Token) (any, error) {
			switch token.Method.(type) {
			case *jwt.SigningMethodRSA, *jwt.SigningMethodECDSA:
				return parsePublicKey(keyMaterial)
			case *jwt.SigningMethodHMAC:
				return nil, errHMACWithPubKey
			default:
				return nil, fmt.Errorf("unsupported signing algorithm: %v", token.Header["alg"])
			}
		}
	}
	return func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("signing method %v requires a PEM public key", token.Header["alg"])
		}
		return []byte(keyMaterial), nil
	}
}

// validMethodsFor lists the algorithms keyMaterial may verify.
func validMethodsFor(keyMaterial string) []string {
	if isPublicKey(keyMaterial) {
		return publicKeyMethods
	}
	return hmacMethods
}

// ValidateJWT verifies tokenString against keyMaterial and returns its claims.
func ValidateJWT(tokenString string, keyMaterial string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, keyFuncFor(keyMaterial),
		jwt.WithValidMethods(validMethodsFor(keyMaterial)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
