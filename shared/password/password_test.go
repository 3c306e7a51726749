package password_test

import (
	"errors"
	"testing"

	"agenda/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.HashWithCost("barber-secret", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "barber-secret", hash)

	assert.NoError(t, password.Verify("barber-secret", hash))
	assert.True(t, errors.Is(password.Verify("wrong", hash), password.ErrInvalidPassword))
}

func TestHash_Empty(t *testing.T) {
	_, err := password.Hash("")

	assert.True(t, errors.Is(err, password.ErrEmptyPassword))
}

func TestVerify_EmptyInputs(t *testing.T) {
	assert.True(t, errors.Is(password.Verify("", "hash"), password.ErrInvalidPassword))
	assert.True(t, errors.Is(password.Verify("pw", ""), password.ErrInvalidPassword))
}

func TestVerify_MalformedHash(t *testing.T) {
	err := password.Verify("pw", "not-a-bcrypt-hash")

	assert.Error(t, err)
	assert.False(t, errors.Is(err, password.ErrInvalidPassword))
}
