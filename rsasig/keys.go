package rsasig

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

// KeyRole tags key material as the private or public half of an RSA
// key pair.
type KeyRole int

const (
	// RolePrivate marks key material usable for signing.
	RolePrivate KeyRole = iota + 1

	// RolePublic marks key material usable for verification.
	RolePublic
)

// String returns "private" or "public".
func (r KeyRole) String() string {
	switch r {
	case RolePrivate:
		return "private"
	case RolePublic:
		return "public"
	default:
		return "unknown"
	}
}

// KeyMaterial is an RSA key handle tagged with its role. A handle is
// constructed either from an in-memory key or from a PEM-encoded string;
// malformed input fails at construction rather than producing a handle
// in an indeterminate state.
type KeyMaterial struct {
	role    KeyRole
	private *rsa.PrivateKey
	public  *rsa.PublicKey
}

// PrivateKey wraps an in-memory RSA private key.
func PrivateKey(key *rsa.PrivateKey) (*KeyMaterial, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: private key must not be nil", ErrMissingKey)
	}

	return &KeyMaterial{role: RolePrivate, private: key}, nil
}

// PublicKey wraps an in-memory RSA public key.
func PublicKey(key *rsa.PublicKey) (*KeyMaterial, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: public key must not be nil", ErrMissingKey)
	}

	return &KeyMaterial{role: RolePublic, public: key}, nil
}

// PrivateKeyFromPEM parses a PEM-encoded RSA private key. Both PKCS#1
// ("RSA PRIVATE KEY") and PKCS#8 ("PRIVATE KEY") blocks are accepted.
// A block of any other type, including a public key block, is ErrKeyParse.
func PrivateKeyFromPEM(data string) (*KeyMaterial, error) {
	block, _ := pem.Decode([]byte(data))
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrKeyParse)
	}

	switch block.Type {
	case "RSA PRIVATE KEY":
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyParse, err)
		}

		return &KeyMaterial{role: RolePrivate, private: key}, nil

	case "PRIVATE KEY":
		parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyParse, err)
		}

		key, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an RSA private key", ErrKeyParse)
		}

		return &KeyMaterial{role: RolePrivate, private: key}, nil

	default:
		return nil, fmt.Errorf("%w: unexpected PEM block type %q for a private key", ErrKeyParse, block.Type)
	}
}

// PublicKeyFromPEM parses a PEM-encoded RSA public key. Both PKIX
// ("PUBLIC KEY") and PKCS#1 ("RSA PUBLIC KEY") blocks are accepted.
// A block of any other type, including a private key block, is ErrKeyParse.
func PublicKeyFromPEM(data string) (*KeyMaterial, error) {
	block, _ := pem.Decode([]byte(data))
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrKeyParse)
	}

	switch block.Type {
	case "PUBLIC KEY":
		parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyParse, err)
		}

		key, ok := parsed.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an RSA public key", ErrKeyParse)
		}

		return &KeyMaterial{role: RolePublic, public: key}, nil

	case "RSA PUBLIC KEY":
		key, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyParse, err)
		}

		return &KeyMaterial{role: RolePublic, public: key}, nil

	default:
		return nil, fmt.Errorf("%w: unexpected PEM block type %q for a public key", ErrKeyParse, block.Type)
	}
}

// Role returns the role the key material was constructed for.
func (k *KeyMaterial) Role() KeyRole {
	return k.role
}
