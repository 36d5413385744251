package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHasherConfig keeps argon2 cheap for tests.
func testHasherConfig(pepper string) HasherConfig {
	cfg := DefaultHasherConfig(pepper)
	cfg.Time = 1
	cfg.Memory = 64
	return cfg
}

func TestNewHasher_RequiresPepper(t *testing.T) {
	h, err := NewHasher(testHasherConfig(""))
	assert.Nil(t, h)
	assert.ErrorIs(t, err, ErrEmptyPepper)
}

func TestHasher_HashAndVerify(t *testing.T) {
	h, err := NewHasher(testHasherConfig("pepper"))
	require.NoError(t, err)

	digest, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "$argon2id$v=19$m=64,t=1,p=1$"))
	assert.NotContains(t, digest, "secret1")

	other, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, digest, other, "salts must differ")

	tests := []struct {
		name      string
		plaintext string
		want      bool
	}{
		{name: "match", plaintext: "secret1", want: true},
		{name: "wrong password", plaintext: "secret2", want: false},
		{name: "empty", plaintext: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := h.Verify(digest, tt.plaintext)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestHasher_PepperIsMixedIn(t *testing.T) {
	a, err := NewHasher(testHasherConfig("pepper-a"))
	require.NoError(t, err)
	b, err := NewHasher(testHasherConfig("pepper-b"))
	require.NoError(t, err)

	digest, err := a.Hash("secret1")
	require.NoError(t, err)

	ok, err := b.Verify(digest, "secret1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasher_VerifyMalformed(t *testing.T) {
	h, err := NewHasher(testHasherConfig("pepper"))
	require.NoError(t, err)

	for _, digest := range []string{
		"",
		"plain",
		"$argon2i$v=19$m=64,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=64,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=x,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=64,t=1,p=1$!!!$aGFzaA",
	} {
		ok, err := h.Verify(digest, "secret1")
		assert.False(t, ok, digest)
		assert.ErrorIs(t, err, ErrMalformedHash, digest)
	}
}
