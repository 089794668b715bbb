package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnsubscribeTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateUnsubscribeToken("b5c7a6f2-1111-2222-3333-444455556666", "user@example.com")
	require.NoError(t, err)

	claims, err := ValidateUnsubscribeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "b5c7a6f2-1111-2222-3333-444455556666", claims.SubscriberID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "dualink-api", claims.Issuer)
}

func TestUnsubscribeTokenMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateUnsubscribeToken("id", "user@example.com")
	assert.Error(t, err)
}

func TestUnsubscribeTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateUnsubscribeToken("id", "user@example.com")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = ValidateUnsubscribeToken(token)
	assert.Error(t, err)
}

func TestUnsubscribeTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ValidateUnsubscribeToken("not.a.token")
	assert.Error(t, err)
}
