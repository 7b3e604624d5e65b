package rsasig

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"fmt"
	"strings"
)

// Config configures a Method.
//
// Exactly one key source is consulted per operation: when Key is set it
// takes precedence and Resolver is never invoked. When only Resolver is
// set, it is called with KeyID and must return PEM-encoded key material
// of the role the operation requires (private for Sign, public for
// Verify).
type Config struct {
	// Key is inline key material. Optional when Resolver is set.
	Key *KeyMaterial

	// Resolver lazily fetches PEM key material by key identifier.
	Resolver KeyResolver

	// KeyID is the key identifier passed to Resolver.
	KeyID string

	// Digest selects the hash algorithm. Required.
	Digest Digest

	// Data is the byte string to sign or verify. Required.
	Data []byte
}

// Method produces and checks RSA signatures over a fixed byte string,
// typically the signing string derived from an HTTP request.
//
// A Method is immutable after construction and carries no state across
// calls, so it is safe for concurrent use provided a shared resolver is.
// Key material is resolved and parsed fresh on every operation; see
// MemoResolver for opt-in caching.
type Method struct {
	key      *KeyMaterial
	resolver KeyResolver
	keyID    string
	digest   Digest
	data     []byte
}

// New creates a Method. Empty data and an unrecognized digest are
// rejected here rather than at operation time.
func New(cfg Config) (*Method, error) {
	if len(cfg.Data) == 0 {
		return nil, ErrMissingData
	}

	if !cfg.Digest.valid() {
		return nil, fmt.Errorf("%w: digest not set or out of range", ErrUnknownDigest)
	}

	data := make([]byte, len(cfg.Data))
	copy(data, cfg.Data)

	return &Method{
		key:      cfg.Key,
		resolver: cfg.Resolver,
		keyID:    cfg.KeyID,
		digest:   cfg.Digest,
		data:     data,
	}, nil
}

// Sign signs the data with the resolved private key and returns the
// signature as single-line standard base64. The encoding never inserts
// line breaks: the value is embedded verbatim in an HTTP header.
func (m *Method) Sign() (string, error) {
	key, err := m.resolveKey(RolePrivate)
	if err != nil {
		return "", err
	}

	sig, err := rsa.SignPKCS1v15(rand.Reader, key.private, m.digest.Hash(), m.digest.sum(m.data))
	if err != nil {
		return "", fmt.Errorf("rsasig: sign: %w", err)
	}

	return base64.StdEncoding.EncodeToString(sig), nil
}

// Verify checks a base64-encoded signature against the data using the
// resolved public key. A well-formed signature that does not match
// yields (false, nil); errors are reserved for missing or malformed
// inputs.
func (m *Method) Verify(signature string) (bool, error) {
	if signature == "" {
		return false, ErrMissingSignature
	}

	// The wire format is canonical single-line base64. The base64
	// decoder silently skips line breaks, so reject them up front.
	if strings.ContainsAny(signature, "\r\n") {
		return false, fmt.Errorf("%w: embedded line break", ErrVerification)
	}

	key, err := m.resolveKey(RolePublic)
	if err != nil {
		return false, err
	}

	raw, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false, fmt.Errorf("%w: invalid base64: %v", ErrVerification, err)
	}

	if err := rsa.VerifyPKCS1v15(key.public, m.digest.Hash(), m.digest.sum(m.data), raw); err != nil {
		return false, nil
	}

	return true, nil
}

// resolveKey obtains key material of the required role. The inline key
// takes precedence; the resolver is consulted only when no inline key
// is configured, and at most once.
func (m *Method) resolveKey(role KeyRole) (*KeyMaterial, error) {
	if m.key != nil {
		if m.key.role != role {
			return nil, fmt.Errorf("%w: %s key supplied where a %s key is required", ErrKeyTypeMismatch, m.key.role, role)
		}

		return m.key, nil
	}

	if m.resolver == nil {
		return nil, fmt.Errorf("%w: no key and no resolver configured", ErrMissingKey)
	}

	pemData, err := m.resolver(m.keyID)
	if err != nil {
		return nil, fmt.Errorf("rsasig: resolve key %q: %w", m.keyID, err)
	}

	if pemData == "" {
		return nil, fmt.Errorf("%w: resolver returned no key material for %q", ErrMissingKey, m.keyID)
	}

	if role == RolePrivate {
		return PrivateKeyFromPEM(pemData)
	}

	return PublicKeyFromPEM(pemData)
}
