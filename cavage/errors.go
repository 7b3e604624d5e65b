package cavage

import "errors"

// Signing errors.
var (
	// ErrNoKey is returned when SignConfig has no private key configured.
	ErrNoKey = errors.New("cavage: signing key must not be nil")

	// ErrMissingHeader is returned when a covered header is not present
	// on the request being signed or verified.
	ErrMissingHeader = errors.New("cavage: covered header not present in request")

	// ErrInvalidHeaderName is returned when a covered header name is not
	// a valid HTTP field name.
	ErrInvalidHeaderName = errors.New("cavage: invalid header field name")

	// ErrUnknownComponent is returned when a parenthesized component
	// other than (request-target) appears in the covered headers list.
	ErrUnknownComponent = errors.New("cavage: unknown derived component")
)

// Verification errors.
var (
	// ErrNoResolver is returned when VerifyConfig has no Resolver configured.
	ErrNoResolver = errors.New("cavage: key resolver must not be nil")

	// ErrNoSignature is returned when neither an Authorization header
	// with the Signature scheme nor a Signature header is present.
	ErrNoSignature = errors.New("cavage: signature not found")

	// ErrMalformedHeader is returned when the signature header parameters
	// cannot be parsed.
	ErrMalformedHeader = errors.New("cavage: malformed signature header")

	// ErrUnknownAlgorithm is returned when the algorithm parameter names
	// no supported digest.
	ErrUnknownAlgorithm = errors.New("cavage: unknown signature algorithm")

	// ErrAlgorithmNotAllowed is returned when the algorithm parameter is
	// not in the policy's allow list.
	ErrAlgorithmNotAllowed = errors.New("cavage: signature algorithm not allowed by policy")

	// ErrHeaderNotCovered is returned when a header the policy requires
	// is absent from the signature's covered headers.
	ErrHeaderNotCovered = errors.New("cavage: required header not covered by signature")

	// ErrDateRequired is returned when the policy sets a maximum clock
	// skew but the request carries no Date header.
	ErrDateRequired = errors.New("cavage: date header required when max clock skew is set")

	// ErrClockSkew is returned when the request Date header is outside
	// the policy's maximum clock skew.
	ErrClockSkew = errors.New("cavage: date header outside allowed clock skew")

	// ErrSignatureInvalid is returned when signature verification fails.
	ErrSignatureInvalid = errors.New("cavage: signature verification failed")
)
