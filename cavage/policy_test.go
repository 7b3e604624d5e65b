package cavage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPolicy(t *testing.T) {
	t.Run("full policy", func(t *testing.T) {
		doc := `
algorithms:
  - rsa-sha256
  - rsa-sha512
required_headers:
  - (request-target)
  - date
max_clock_skew: 5m
`

		p, err := LoadPolicy(strings.NewReader(doc))
		require.NoError(t, err)

		assert.Equal(t, []string{"rsa-sha256", "rsa-sha512"}, p.Algorithms)
		assert.Equal(t, []string{"(request-target)", "date"}, p.RequiredHeaders)
		assert.Equal(t, Duration(5*time.Minute), p.MaxClockSkew)
	})

	t.Run("empty fields allowed", func(t *testing.T) {
		p, err := LoadPolicy(strings.NewReader(`algorithms: []`))
		require.NoError(t, err)
		assert.Empty(t, p.Algorithms)
		assert.Zero(t, p.MaxClockSkew)
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		_, err := LoadPolicy(strings.NewReader(`max_clock_skw: 5m`))
		assert.Error(t, err)
	})

	t.Run("bad duration rejected", func(t *testing.T) {
		_, err := LoadPolicy(strings.NewReader(`max_clock_skew: fast`))
		assert.Error(t, err)
	})
}

func TestLoadPolicyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_clock_skew: 30s\n"), 0o600))

	p, err := LoadPolicyFile(path)
	require.NoError(t, err)
	assert.Equal(t, Duration(30*time.Second), p.MaxClockSkew)

	_, err = LoadPolicyFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
