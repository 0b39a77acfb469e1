// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	userModel "betulabla_backend/internals/features/users/user/model"
)

const (
	AccessTTLDefault  = 24 * time.Hour
	RefreshTTLDefault = 7 * 24 * time.Hour
	ResetTTLDefault   = 1 * time.Hour
)

/* ==========================
   Access / refresh JWT
========================== */

// SignAccessToken issues the HS256 access token. Role is baked into the
// claims, so it is read once per token lifetime.
func SignAccessToken(secret string, u userModel.UserModel, now time.Time) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret not set")
	}
	claims := jwt.MapClaims{
		"sub":       u.ID.String(),
		"full_name": u.FullName,
		"role":      u.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTTLDefault).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// SignRefreshToken issues the refresh token carrying only the subject.
func SignRefreshToken(secret string, userID uuid.UUID, now time.Time) (string, error) {
	if secret == "" {
		return "", errors.New("refresh secret not set")
	}
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(RefreshTTLDefault).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry and returns the claims.
func ParseToken(secret, tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// SubjectFromClaims extracts and parses the sub claim.
func SubjectFromClaims(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, _ := claims["sub"].(string)
	return uuid.Parse(sub)
}

// ComputeRefreshHash is what gets persisted instead of the raw token.
func ComputeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

/* ==========================
   Password reset tokens
========================== */

// GenerateResetToken returns the plaintext token (sent to the user) and
// its SHA-256 hash (persisted).
func GenerateResetToken() (plain string, hash []byte, err error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", nil, err
	}
	plain = hex.EncodeToString(buf)
	return plain, HashResetToken(plain), nil
}

func HashResetToken(plain string) []byte {
	sum := sha256.Sum256([]byte(plain))
	return sum[:]
}
