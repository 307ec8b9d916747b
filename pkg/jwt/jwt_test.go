package jwtPkg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	t.Setenv("SESSION_TOKEN_SECRET", "test-secret")

	claims := map[string]interface{}{
		"sid":  "session-123",
		"id":   "user-456",
		"role": "admin",
	}

	token, expiredAt, err := Sign(claims, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiredAt, time.Now().Unix())

	parsed, err := Parse(token, "SESSION_TOKEN_SECRET")
	require.NoError(t, err)
	assert.Equal(t, "session-123", parsed["sid"])
	assert.Equal(t, "user-456", parsed["id"])
	assert.Equal(t, "admin", parsed["role"])
}

func TestParseRejectsWrongSecret(t *testing.T) {
	t.Setenv("SESSION_TOKEN_SECRET", "test-secret")

	token, _, err := Sign(map[string]interface{}{"sid": "s"}, time.Hour)
	require.NoError(t, err)

	t.Setenv("SESSION_TOKEN_SECRET", "a-different-secret")

	_, err = Parse(token, "SESSION_TOKEN_SECRET")
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	t.Setenv("SESSION_TOKEN_SECRET", "test-secret")

	token, _, err := Sign(map[string]interface{}{"sid": "s"}, -time.Minute)
	require.NoError(t, err)

	_, err = Parse(token, "SESSION_TOKEN_SECRET")
	assert.Error(t, err)
}

func TestSignRequiresSecret(t *testing.T) {
	t.Setenv("SESSION_TOKEN_SECRET", "")

	_, _, err := Sign(map[string]interface{}{"sid": "s"}, time.Hour)
	assert.Error(t, err)
}
