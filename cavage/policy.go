package cavage

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Policy constrains which incoming signatures verification accepts.
// Policies are plain data and can be loaded from YAML:
//
//	algorithms:
//	  - rsa-sha256
//	  - rsa-sha512
//	required_headers:
//	  - (request-target)
//	  - date
//	max_clock_skew: 5m
type Policy struct {
	// Algorithms lists the acceptable algorithm parameter values.
	// Empty means any supported algorithm.
	Algorithms []string `yaml:"algorithms"`

	// RequiredHeaders lists headers that must appear among the
	// signature's covered headers. Compared case-insensitively.
	RequiredHeaders []string `yaml:"required_headers"`

	// MaxClockSkew bounds how far the request Date header may be from
	// the local clock, in either direction. Zero disables the check.
	MaxClockSkew Duration `yaml:"max_clock_skew"`
}

// LoadPolicy decodes a YAML policy. Unknown fields are rejected so that
// a misspelled constraint fails loudly instead of silently not applying.
func LoadPolicy(r io.Reader) (Policy, error) {
	var p Policy

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&p); err != nil {
		return Policy{}, fmt.Errorf("cavage: parse policy: %w", err)
	}

	return p, nil
}

// LoadPolicyFile reads a YAML policy from a file.
func LoadPolicyFile(path string) (Policy, error) {
	f, err := os.Open(path)
	if err != nil {
		return Policy{}, fmt.Errorf("cavage: open policy: %w", err)
	}
	defer f.Close()

	return LoadPolicy(f)
}

// Duration is a time.Duration that decodes from YAML duration strings
// such as "30s" or "5m".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("cavage: parse duration %q: %w", s, err)
	}

	*d = Duration(parsed)

	return nil
}
