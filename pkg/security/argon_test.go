package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFromPassword(t *testing.T) {
	a := New()

	encoded, err := a.GenerateFromPassword("hunter22")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))
	assert.True(t, a.VerifyPasswd("hunter22", encoded))
	assert.False(t, a.VerifyPasswd("hunter23", encoded))
}

func TestGenerateFromPasswordSaltsDiffer(t *testing.T) {
	a := New()

	first, err := a.GenerateFromPassword("same-password")
	require.NoError(t, err)

	second, err := a.GenerateFromPassword("same-password")
	require.NoError(t, err)

	// A fresh salt per call means two digests of the same password
	// never match each other
	assert.NotEqual(t, first, second)
	assert.True(t, a.VerifyPasswd("same-password", first))
	assert.True(t, a.VerifyPasswd("same-password", second))
}

func TestVerifyPasswdMalformedDigest(t *testing.T) {
	a := New()

	for _, digest := range []string{
		"",
		"not-a-digest",
		"$argon2id$v=19$m=65536,t=3,p=2$short",
		"$argon2id$v=19$garbage$AAAA$BBBB",
		"$argon2id$v=19$m=65536,t=3,p=2$!!!$AAAA",
	} {
		assert.False(t, a.VerifyPasswd("whatever", digest), "digest %q", digest)
	}
}
