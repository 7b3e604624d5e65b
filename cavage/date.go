package cavage

import (
	"net/http"
	"time"
)

// EnsureDate returns a copy of h with a Date header set to the current
// UTC time in RFC 7231 format when none is present. The argument is
// never modified; callers that want the header on a live request must
// assign the result back themselves.
func EnsureDate(h http.Header) http.Header {
	out := h.Clone()
	if out == nil {
		out = http.Header{}
	}

	if out.Get("Date") == "" {
		out.Set("Date", time.Now().UTC().Format(http.TimeFormat))
	}

	return out
}
