package cavage

import (
	"fmt"
	"net/http"
	"strings"
)

const (
	headerSignature     = "Signature"
	headerAuthorization = "Authorization"

	// authScheme is the Authorization scheme prefix.
	authScheme = "Signature"
)

// defaultCoveredHeaders is used when a signature names no headers
// parameter: the scheme covers only the Date header.
var defaultCoveredHeaders = []string{"date"}

// sigParams are the parameters carried in the Signature authorization
// header: keyId="..",algorithm="..",headers="..",signature="..".
type sigParams struct {
	keyID     string
	algorithm string
	headers   []string
	signature string
}

// encode serializes the parameters. The headers parameter is omitted
// when it would name only the default ("date").
func (p sigParams) encode() string {
	var b strings.Builder

	b.WriteString(`keyId="`)
	b.WriteString(p.keyID)
	b.WriteString(`",algorithm="`)
	b.WriteString(p.algorithm)
	b.WriteByte('"')

	if len(p.headers) > 0 {
		b.WriteString(`,headers="`)
		b.WriteString(strings.Join(p.headers, " "))
		b.WriteByte('"')
	}

	b.WriteString(`,signature="`)
	b.WriteString(p.signature)
	b.WriteByte('"')

	return b.String()
}

// signatureFromRequest locates the signature parameter string: the
// Authorization header with the Signature scheme wins, falling back to
// the bare Signature header.
func signatureFromRequest(r *http.Request) (string, error) {
	if auth := r.Header.Get(headerAuthorization); auth != "" {
		scheme, rest, _ := strings.Cut(auth, " ")
		if strings.EqualFold(scheme, authScheme) {
			return strings.TrimSpace(rest), nil
		}
	}

	if sig := r.Header.Get(headerSignature); sig != "" {
		return sig, nil
	}

	return "", ErrNoSignature
}

// parseSigParams parses a comma-separated list of key="value" pairs.
// Commas inside quoted values are preserved. Unknown parameter names are
// ignored for forward compatibility; missing keyId, algorithm, or
// signature is malformed. An absent headers parameter defaults to
// covering only the Date header.
func parseSigParams(raw string) (sigParams, error) {
	var params sigParams

	for _, part := range splitOutsideQuotes(raw, ',') {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return params, fmt.Errorf("%w: parameter %q has no value", ErrMalformedHeader, part)
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
			return params, fmt.Errorf("%w: parameter %q is not quoted", ErrMalformedHeader, key)
		}

		value = value[1 : len(value)-1]

		switch key {
		case "keyId":
			params.keyID = value
		case "algorithm":
			params.algorithm = value
		case "headers":
			params.headers = strings.Fields(value)
		case "signature":
			params.signature = value
		}
	}

	if params.keyID == "" {
		return params, fmt.Errorf("%w: missing keyId parameter", ErrMalformedHeader)
	}

	if params.algorithm == "" {
		return params, fmt.Errorf("%w: missing algorithm parameter", ErrMalformedHeader)
	}

	if params.signature == "" {
		return params, fmt.Errorf("%w: missing signature parameter", ErrMalformedHeader)
	}

	if len(params.headers) == 0 {
		params.headers = defaultCoveredHeaders
	}

	return params, nil
}

// splitOutsideQuotes splits s on delim, ignoring delimiters inside
// double-quoted regions. Parts are trimmed and empty parts dropped.
func splitOutsideQuotes(s string, delim byte) []string {
	var (
		parts   []string
		start   int
		inQuote bool
	)

	flush := func(end int) {
		if p := strings.TrimSpace(s[start:end]); p != "" {
			parts = append(parts, p)
		}
	}

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuote = !inQuote
		case delim:
			if !inQuote {
				flush(i)
				start = i + 1
			}
		}
	}

	flush(len(s))

	return parts
}
