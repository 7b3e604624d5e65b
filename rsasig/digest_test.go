package rsasig

import (
	"crypto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDigest(t *testing.T) {
	tests := []struct {
		name string
		want Digest
	}{
		{"sha1", DigestSHA1},
		{"sha256", DigestSHA256},
		{"sha512", DigestSHA512},
		{"rsa-sha1", DigestSHA1},
		{"rsa-sha256", DigestSHA256},
		{"rsa-sha512", DigestSHA512},
		{"RSA-SHA256", DigestSHA256},
		{"hmac-sha512", DigestSHA512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDigest(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unrecognized names fail hard", func(t *testing.T) {
		for _, name := range []string{"", "md5", "rsa", "sha384", "ed25519"} {
			_, err := ParseDigest(name)
			assert.ErrorIs(t, err, ErrUnknownDigest, "name %q", name)
		}
	})
}

func TestDigestHash(t *testing.T) {
	assert.Equal(t, crypto.SHA1, DigestSHA1.Hash())
	assert.Equal(t, crypto.SHA256, DigestSHA256.Hash())
	assert.Equal(t, crypto.SHA512, DigestSHA512.Hash())
	assert.Equal(t, crypto.Hash(0), Digest(0).Hash())
}

func TestDigestString(t *testing.T) {
	assert.Equal(t, "sha1", DigestSHA1.String())
	assert.Equal(t, "sha256", DigestSHA256.String())
	assert.Equal(t, "sha512", DigestSHA512.String())
	assert.Equal(t, "unknown", Digest(42).String())
}
