// Package rsasig produces and verifies RSA signatures over an arbitrary
// byte string, the cryptographic core of the legacy "Signature" HTTP
// authorization scheme implemented by package cavage.
//
// # Signing
//
// Construct a Method with the data, a digest selection, and a key
// source, then call Sign:
//
//	key, err := rsasig.PrivateKeyFromPEM(pemString)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	method, err := rsasig.New(rsasig.Config{
//	    Key:    key,
//	    Digest: rsasig.DigestSHA256,
//	    Data:   signingString,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	signature, err := method.Sign()
//
// The signature is returned as single-line standard base64, suitable
// for embedding in an HTTP header value.
//
// # Verifying
//
// Verification uses the same Method with a public key source:
//
//	method, err := rsasig.New(rsasig.Config{
//	    Key:    publicKey,
//	    Digest: rsasig.DigestSHA256,
//	    Data:   signingString,
//	})
//
//	ok, err := method.Verify(signature)
//
// A cryptographically wrong signature is (false, nil); errors are
// reserved for missing or malformed inputs.
//
// # Deferred key lookup
//
// Instead of an inline key, a KeyResolver can fetch PEM key material by
// key identifier at operation time:
//
//	method, err := rsasig.New(rsasig.Config{
//	    Resolver: func(keyID string) (string, error) {
//	        return fetchPEM(keyID)
//	    },
//	    KeyID:  "service-a",
//	    Digest: rsasig.DigestSHA256,
//	    Data:   signingString,
//	})
//
// The resolver runs at most once per operation and only when no inline
// key is set. Results are never cached by default so that key rotation
// stays live; wrap with MemoResolver to opt in to caching.
package rsasig
