package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	m := NewManager("test-secret", 3600)

	tok, err := m.Generate("user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestVerifyExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -60)

	tok, err := m.Generate("user@example.com")
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.Error(t, err)
}

func TestVerifyWrongSecret(t *testing.T) {
	tok, err := NewManager("secret-a", 3600).Generate("user@example.com")
	require.NoError(t, err)

	_, err = NewManager("secret-b", 3600).Verify(tok)
	assert.Error(t, err)
}

func TestVerifyGarbage(t *testing.T) {
	m := NewManager("test-secret", 3600)

	_, err := m.Verify("not.a.token")
	assert.Error(t, err)
}
