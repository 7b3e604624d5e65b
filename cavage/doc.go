// Package cavage implements the legacy "Signature" HTTP authorization
// scheme: a signing string is derived from the request target and a
// declared list of covered headers, signed with RSA (package rsasig),
// and carried base64-encoded in a parameterized header:
//
//	Authorization: Signature keyId="service-a",algorithm="rsa-sha256",
//	    headers="(request-target) date",signature="Base64(...)"
//
// # Signing Requests
//
// SignRequest signs a request in place. Covered headers must already be
// present; EnsureDate produces a header set with a Date header without
// touching the original:
//
//	req.Header = cavage.EnsureDate(req.Header)
//
//	err := cavage.SignRequest(req, cavage.SignConfig{
//	    KeyID:   "service-a",
//	    Key:     privateKey,
//	    Digest:  rsasig.DigestSHA256,
//	    Headers: []string{cavage.ComponentRequestTarget, "date"},
//	})
//
// # Verifying Requests
//
// VerifyRequest resolves the public key through an rsasig.KeyResolver
// keyed by the keyId parameter and checks the signature, optionally
// constrained by a Policy:
//
//	err := cavage.VerifyRequest(req, cavage.VerifyConfig{
//	    Resolver: func(keyID string) (string, error) {
//	        return fetchPublicPEM(keyID)
//	    },
//	    Policy: cavage.Policy{
//	        RequiredHeaders: []string{"date"},
//	        MaxClockSkew:    cavage.Duration(5 * time.Minute),
//	    },
//	})
//
// Policies are plain data and can be loaded from YAML with LoadPolicy.
//
// # Client Transport
//
// NewTransport creates an http.RoundTripper that signs all outgoing
// requests, injecting a Date header on the clone when absent:
//
//	client := &http.Client{
//	    Transport: cavage.NewTransport(nil, cavage.SignConfig{
//	        KeyID:  "service-a",
//	        Key:    privateKey,
//	        Digest: rsasig.DigestSHA256,
//	    }),
//	}
//
// # Server Middleware
//
// Middleware returns a net/http middleware that rejects requests whose
// signature does not verify, responding 401 by default.
package cavage
