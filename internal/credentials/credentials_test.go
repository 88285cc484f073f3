package credentials_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/academia-accounts/internal/credentials"
)

func TestHashAndVerify(t *testing.T) {
	first, err := credentials.Hash("secret1")
	require.NoError(t, err)

	second, err := credentials.Hash("secret1")
	require.NoError(t, err)

	// salt aleatório: hashes diferentes, ambos verificam
	assert.NotEqual(t, first, second)
	assert.True(t, credentials.Verify("secret1", first))
	assert.True(t, credentials.Verify("secret1", second))
}

func TestVerifyWrongPassword(t *testing.T) {
	hash, err := credentials.Hash("secret1")
	require.NoError(t, err)

	assert.False(t, credentials.Verify("secret2", hash))
}

func TestVerifyMalformedHash(t *testing.T) {
	assert.False(t, credentials.Verify("secret1", "not-a-bcrypt-hash"))
	assert.False(t, credentials.Verify("secret1", ""))
}
