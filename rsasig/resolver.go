package rsasig

import "sync"

// KeyResolver fetches PEM-encoded key material for a key identifier.
// It is invoked at most once per Sign or Verify call, and only when no
// inline key is configured. The resolver may block on network or disk
// I/O; no timeout is imposed here, so a caller that needs one must wrap
// the resolver accordingly.
//
// A resolver shared between Methods used concurrently must itself be
// safe for concurrent invocation.
type KeyResolver func(keyID string) (string, error)

// MemoResolver wraps a resolver with a cache keyed by key identifier.
// Successful results are cached forever; errors are not cached, so a
// failed lookup is retried on the next call.
//
// Memoization is strictly opt-in. A bare resolver re-fetches on every
// operation, which keeps key rotation live; wrap only when the key set
// is known to be static. The returned resolver is safe for concurrent
// use.
func MemoResolver(resolve KeyResolver) KeyResolver {
	var (
		mu    sync.Mutex
		cache = make(map[string]string)
	)

	return func(keyID string) (string, error) {
		mu.Lock()
		cached, ok := cache[keyID]
		mu.Unlock()

		if ok {
			return cached, nil
		}

		// The lock is not held across the inner resolve: it may block
		// on I/O.
		pemData, err := resolve(keyID)
		if err != nil {
			return "", err
		}

		mu.Lock()
		cache[keyID] = pemData
		mu.Unlock()

		return pemData, nil
	}
}
