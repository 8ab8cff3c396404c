package helper

import (
	"testing"

	"lottery_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminAuth(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	t.Setenv("JWT_SECRET", "")
	assert.False(t, AdminAuthEnabled())

	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	t.Setenv("ADMIN_PASSWORD_HASH", hash)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_USERNAME", "")
	assert.True(t, AdminAuthEnabled())

	assert.True(t, CheckAdminCredentials("admin", "s3cret"))
	assert.False(t, CheckAdminCredentials("admin", "wrong"))
	assert.False(t, CheckAdminCredentials("root", "s3cret"))

	token, err := GenerateAccessToken(model.TokenClaim{Username: "admin", Role: ROLE_ADMIN})
	require.NoError(t, err)

	claim, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claim.Username)

	_, err = ParseAccessToken(token + "x")
	assert.Error(t, err)

	userToken, err := GenerateAccessToken(model.TokenClaim{Username: "someone", Role: "user"})
	require.NoError(t, err)
	_, err = ParseAccessToken(userToken)
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "rotated")
	_, err = ParseAccessToken(token)
	assert.Error(t, err)
}
