package cavage

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/strandsec/reqsig/rsasig"
)

// VerifyConfig configures request signature verification.
type VerifyConfig struct {
	// Resolver looks up PEM-encoded public key material by the keyId
	// parameter of the incoming signature. Required.
	Resolver rsasig.KeyResolver

	// Policy constrains which signatures are acceptable. The zero value
	// imposes no constraints beyond a valid signature.
	Policy Policy
}

// VerifyRequest verifies the signature on r: it parses the signature
// parameters, enforces the policy, rebuilds the signing string from the
// covered headers, resolves the public key, and checks the signature.
func VerifyRequest(r *http.Request, cfg VerifyConfig) error {
	if cfg.Resolver == nil {
		return ErrNoResolver
	}

	raw, err := signatureFromRequest(r)
	if err != nil {
		return err
	}

	params, err := parseSigParams(raw)
	if err != nil {
		return err
	}

	if len(cfg.Policy.Algorithms) > 0 && !slices.Contains(cfg.Policy.Algorithms, params.algorithm) {
		return fmt.Errorf("%w: %q", ErrAlgorithmNotAllowed, params.algorithm)
	}

	digest, err := rsasig.ParseDigest(params.algorithm)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, params.algorithm)
	}

	for _, required := range cfg.Policy.RequiredHeaders {
		if !containsFold(params.headers, required) {
			return fmt.Errorf("%w: %q", ErrHeaderNotCovered, required)
		}
	}

	if skew := time.Duration(cfg.Policy.MaxClockSkew); skew > 0 {
		if err := checkClockSkew(r, skew); err != nil {
			return err
		}
	}

	base, err := buildSigningString(r, params.headers)
	if err != nil {
		return err
	}

	method, err := rsasig.New(rsasig.Config{
		Resolver: cfg.Resolver,
		KeyID:    params.keyID,
		Digest:   digest,
		Data:     base,
	})
	if err != nil {
		return err
	}

	ok, err := method.Verify(params.signature)
	if err != nil {
		return err
	}

	if !ok {
		return ErrSignatureInvalid
	}

	return nil
}

// checkClockSkew rejects requests whose Date header is more than skew
// away from the local clock, in either direction.
func checkClockSkew(r *http.Request, skew time.Duration) error {
	dateHeader := r.Header.Get("Date")
	if dateHeader == "" {
		return ErrDateRequired
	}

	date, err := http.ParseTime(dateHeader)
	if err != nil {
		return fmt.Errorf("%w: invalid date header: %v", ErrMalformedHeader, err)
	}

	if delta := time.Since(date); delta > skew || delta < -skew {
		return fmt.Errorf("%w: %s off local time", ErrClockSkew, delta)
	}

	return nil
}

func containsFold(haystack []string, needle string) bool {
	return slices.ContainsFunc(haystack, func(s string) bool {
		return strings.EqualFold(s, needle)
	})
}
