package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kevin6098/roomi-sub001/internal/domain"
)

func testIdentity() domain.Identity {
	return domain.Identity{
		ID:    "3f0c6f1e-0000-4000-8000-000000000001",
		Email: "owner@example.com",
		Role:  domain.RoleOwner,
	}
}

func TestTokenManager_SignAndVerify(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, expiresAt, err := tm.Sign(testIdentity())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "3f0c6f1e-0000-4000-8000-000000000001", claims.ID)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, domain.RoleOwner, claims.Role)
}

func TestTokenManager_PayloadCarriesOnlyIdentityAndExpiry(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, _, err := tm.Sign(testIdentity())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.ElementsMatch(t, []string{"id", "email", "role", "exp"}, keysOf(payload))
}

func keysOf(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func TestTokenManager_VerifyIsRepeatable(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, _, err := tm.Sign(testIdentity())
	require.NoError(t, err)

	first, err := tm.Verify(token)
	require.NoError(t, err)
	second, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Email, second.Email)
	assert.Equal(t, first.Role, second.Role)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	signer := NewTokenManager("secret-one", time.Hour)
	verifier := NewTokenManager("secret-two", time.Hour)

	token, _, err := signer.Sign(testIdentity())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	token, _, err := tm.Sign(testIdentity())
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_Malformed(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := tm.Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", token)
	}
}
