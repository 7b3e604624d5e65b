package cavage

import (
	"net/http"

	"github.com/strandsec/reqsig/rsasig"
)

// SignConfig configures request signing.
type SignConfig struct {
	// KeyID names the signing key in the signature parameters, so the
	// verifying side can resolve the matching public key. Required.
	KeyID string

	// Key is the private key material. Required.
	Key *rsasig.KeyMaterial

	// Digest selects the hash algorithm. Required.
	Digest rsasig.Digest

	// Headers lists the covered headers, in signing order. The derived
	// ComponentRequestTarget pseudo-header may appear anywhere in the
	// list. Defaults to ["date"].
	Headers []string

	// UseSignatureHeader places the parameters in a bare Signature
	// header instead of the Authorization header.
	UseSignatureHeader bool
}

// SignRequest signs r in place: it builds the signing string from the
// covered headers, signs it, and sets the Authorization (or Signature)
// header. Every covered header must already be present on the request;
// in particular, set the Date header first (see EnsureDate) when it is
// covered.
func SignRequest(r *http.Request, cfg SignConfig) error {
	if cfg.Key == nil {
		return ErrNoKey
	}

	headers := cfg.Headers
	if len(headers) == 0 {
		headers = defaultCoveredHeaders
	}

	base, err := buildSigningString(r, headers)
	if err != nil {
		return err
	}

	method, err := rsasig.New(rsasig.Config{
		Key:    cfg.Key,
		Digest: cfg.Digest,
		Data:   base,
	})
	if err != nil {
		return err
	}

	sig, err := method.Sign()
	if err != nil {
		return err
	}

	params := sigParams{
		keyID:     cfg.KeyID,
		algorithm: "rsa-" + cfg.Digest.String(),
		headers:   headers,
		signature: sig,
	}

	if cfg.UseSignatureHeader {
		r.Header.Set(headerSignature, params.encode())
	} else {
		r.Header.Set(headerAuthorization, authScheme+" "+params.encode())
	}

	return nil
}
