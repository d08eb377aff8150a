package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"detailify/config"

	"github.com/golang-jwt/jwt"
)

const tokenIssuer = "detailify"

var (
	secretOnce sync.Once
	secretKey  []byte
)

// signingKey resolves the HS256 secret on first use, after config has
// loaded. The env var is checked directly as well because viper only
// surfaces env-backed keys that have defaults. A dev fallback keeps a
// bare checkout bootable; set JWT_SECRET in any real deployment.
func signingKey() []byte {
	secretOnce.Do(func() {
		s := config.AppConfig.JWTSecret
		if s == "" {
			s = os.Getenv("JWT_SECRET")
		}
		if s == "" {
			s = "detailify-dev-secret"
		}
		secretKey = []byte(s)
	})
	return secretKey
}

// GenerateToken signs an HS256 token for an owner session.
func GenerateToken(subject, email string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   tokenIssuer,
		"sub":   subject,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(duration).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey())
}

// HashToken returns the hex SHA-256 of a token. Sessions are keyed by
// this hash so raw tokens never land in Redis.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses a token and verifies its signature and expiry.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return signingKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return token, nil
}

// ExtractIDFromToken validates a token and returns its subject claim.
func ExtractIDFromToken(tokenString string) (string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.New("token has no subject")
	}
	return sub, nil
}
