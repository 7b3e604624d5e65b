package cavage

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDate(t *testing.T) {
	t.Run("sets date when absent", func(t *testing.T) {
		h := http.Header{"Content-Type": []string{"text/plain"}}

		out := EnsureDate(h)

		date := out.Get("Date")
		require.NotEmpty(t, date)

		parsed, err := http.ParseTime(date)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), parsed, 5*time.Second)
	})

	t.Run("preserves an existing date", func(t *testing.T) {
		h := http.Header{"Date": []string{"Tue, 07 Jun 2014 20:51:35 GMT"}}

		out := EnsureDate(h)
		assert.Equal(t, "Tue, 07 Jun 2014 20:51:35 GMT", out.Get("Date"))
	})

	t.Run("never mutates the argument", func(t *testing.T) {
		h := http.Header{}

		_ = EnsureDate(h)
		assert.Empty(t, h.Get("Date"))
	})

	t.Run("nil header", func(t *testing.T) {
		out := EnsureDate(nil)
		assert.NotEmpty(t, out.Get("Date"))
	})
}
