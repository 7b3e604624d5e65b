package rsasig

import (
	"crypto"
	"fmt"
	"strings"

	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"
)

// Digest selects the hash function applied to the data before the RSA
// signature operation.
type Digest int

const (
	// DigestSHA1 uses SHA-1. Supported for interoperability with legacy
	// peers; prefer SHA-256 or SHA-512 for new deployments.
	DigestSHA1 Digest = iota + 1

	// DigestSHA256 uses SHA-256.
	DigestSHA256

	// DigestSHA512 uses SHA-512.
	DigestSHA512
)

// ParseDigest maps a free-form algorithm name to a Digest. Matching is
// substring-based against the lowercased name, so "rsa-sha256" and
// "RSA-SHA256" both select DigestSHA256. An unrecognized name is a hard
// failure; no default digest is ever selected.
func ParseDigest(name string) (Digest, error) {
	lower := strings.ToLower(name)

	switch {
	case strings.Contains(lower, "sha512"):
		return DigestSHA512, nil
	case strings.Contains(lower, "sha256"):
		return DigestSHA256, nil
	case strings.Contains(lower, "sha1"):
		return DigestSHA1, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDigest, name)
	}
}

// Hash returns the crypto.Hash for the digest.
func (d Digest) Hash() crypto.Hash {
	switch d {
	case DigestSHA1:
		return crypto.SHA1
	case DigestSHA256:
		return crypto.SHA256
	case DigestSHA512:
		return crypto.SHA512
	default:
		return 0
	}
}

// String returns the canonical lowercase name of the digest.
func (d Digest) String() string {
	switch d {
	case DigestSHA1:
		return "sha1"
	case DigestSHA256:
		return "sha256"
	case DigestSHA512:
		return "sha512"
	default:
		return "unknown"
	}
}

func (d Digest) valid() bool {
	switch d {
	case DigestSHA1, DigestSHA256, DigestSHA512:
		return true
	default:
		return false
	}
}

// sum hashes data with the digest's hash function.
func (d Digest) sum(data []byte) []byte {
	h := d.Hash().New()
	h.Write(data)

	return h.Sum(nil)
}
