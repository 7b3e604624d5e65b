package cavage

import (
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// ComponentRequestTarget is the derived component covering the request
// method and path, written as a parenthesized pseudo-header in the
// covered headers list.
const ComponentRequestTarget = "(request-target)"

// buildSigningString constructs the byte string that is signed: one
// "name: value" line per covered header, names lowercased, lines joined
// with "\n" and no trailing newline.
func buildSigningString(r *http.Request, headers []string) ([]byte, error) {
	var b strings.Builder

	for i, name := range headers {
		lower := strings.ToLower(name)

		if i > 0 {
			b.WriteByte('\n')
		}

		val, err := componentValue(r, lower)
		if err != nil {
			return nil, err
		}

		b.WriteString(lower)
		b.WriteString(": ")
		b.WriteString(val)
	}

	return []byte(b.String()), nil
}

// componentValue extracts the value of a covered component. Derived
// components are parenthesized; anything else is a header field name.
func componentValue(r *http.Request, lower string) (string, error) {
	if strings.HasPrefix(lower, "(") {
		if lower == ComponentRequestTarget {
			return requestTarget(r), nil
		}

		return "", fmt.Errorf("%w: %s", ErrUnknownComponent, lower)
	}

	if !httpguts.ValidHeaderFieldName(lower) {
		return "", fmt.Errorf("%w: %q", ErrInvalidHeaderName, lower)
	}

	return headerValue(r, lower)
}

// headerValue returns the value of a header field. Multiple values for
// the same field are joined with ", ". The "host" field is special-cased
// because net/http stores it in Request.Host rather than the header map.
func headerValue(r *http.Request, lower string) (string, error) {
	values := r.Header[http.CanonicalHeaderKey(lower)]

	if len(values) == 0 && lower == "host" && r.Host != "" {
		return r.Host, nil
	}

	if len(values) == 0 {
		return "", fmt.Errorf("%w: %q", ErrMissingHeader, lower)
	}

	return strings.Join(values, ", "), nil
}

// requestTarget returns the (request-target) value: the lowercased
// method followed by the path and optional query.
func requestTarget(r *http.Request) string {
	path := r.URL.Path
	if path == "" {
		path = "/"
	}

	if r.URL.RawQuery != "" {
		path += "?" + r.URL.RawQuery
	}

	return strings.ToLower(r.Method) + " " + path
}
