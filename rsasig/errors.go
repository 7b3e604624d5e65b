package rsasig

import "errors"

// Construction errors.
var (
	// ErrMissingData is returned when a Method is constructed without
	// any data to sign or verify.
	ErrMissingData = errors.New("rsasig: data must not be empty")

	// ErrUnknownDigest is returned when a digest algorithm name matches
	// none of the supported digests.
	ErrUnknownDigest = errors.New("rsasig: unknown digest algorithm")
)

// Key material errors.
var (
	// ErrMissingKey is returned when no key material and no resolver are
	// configured, or when the resolver returns empty key material.
	ErrMissingKey = errors.New("rsasig: no key material available")

	// ErrKeyTypeMismatch is returned when the supplied key's role does
	// not match the operation: signing requires a private key,
	// verification requires a public key.
	ErrKeyTypeMismatch = errors.New("rsasig: key role does not match operation")

	// ErrKeyParse is returned when PEM-encoded key material cannot be
	// parsed into a key of the required role.
	ErrKeyParse = errors.New("rsasig: malformed key material")
)

// Verification errors.
var (
	// ErrMissingSignature is returned when Verify is called with an
	// empty signature.
	ErrMissingSignature = errors.New("rsasig: signature must not be empty")

	// ErrVerification is returned when the signature argument is not
	// structurally valid (e.g. malformed base64). A well-formed
	// signature that simply does not match yields (false, nil) instead.
	ErrVerification = errors.New("rsasig: malformed signature")
)
