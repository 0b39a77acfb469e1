package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userModel "betulabla_backend/internals/features/users/user/model"
)

const testSecret = "test-secret"

func testUser() userModel.UserModel {
	return userModel.UserModel{
		ID:       uuid.New(),
		FullName: "Ngozi Okafor",
		Email:    "ngozi@example.org",
		Role:     userModel.RoleAdmin,
	}
}

func TestSignAccessToken_RoundTrip(t *testing.T) {
	u := testUser()
	tok, err := SignAccessToken(testSecret, u, time.Now())
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, tok)
	require.NoError(t, err)

	sub, err := SubjectFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, u.ID, sub)
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "Ngozi Okafor", claims["full_name"])
}

func TestParseToken_WrongSecret(t *testing.T) {
	tok, err := SignAccessToken(testSecret, testUser(), time.Now())
	require.NoError(t, err)

	_, err = ParseToken("other-secret", tok)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	// issued far enough in the past that exp is behind us
	tok, err := SignAccessToken(testSecret, testUser(), time.Now().Add(-2*AccessTTLDefault))
	require.NoError(t, err)

	_, err = ParseToken(testSecret, tok)
	assert.Error(t, err)
}

func TestSignAccessToken_EmptySecret(t *testing.T) {
	_, err := SignAccessToken("", testUser(), time.Now())
	assert.Error(t, err)
}

func TestComputeRefreshHash_Deterministic(t *testing.T) {
	a := ComputeRefreshHash("token", "secret")
	b := ComputeRefreshHash("token", "secret")
	c := ComputeRefreshHash("token", "another-secret")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 32)
}

func TestGenerateResetToken(t *testing.T) {
	plain, hash, err := GenerateResetToken()
	require.NoError(t, err)
	assert.Len(t, plain, 64) // 32 random bytes hex-encoded
	assert.Equal(t, HashResetToken(plain), hash)

	plain2, _, err := GenerateResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, plain, plain2)
}
