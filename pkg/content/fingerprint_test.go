package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	t.Run("deterministic", func(t *testing.T) {
		fp1 := Fingerprint("wire", "markets rallied", &ts)
		fp2 := Fingerprint("wire", "markets rallied", &ts)
		assert.Equal(t, fp1, fp2)
		assert.Len(t, fp1, 64, "sha-256 hex digest")
	})

	t.Run("source changes digest", func(t *testing.T) {
		assert.NotEqual(t, Fingerprint("wire", "markets rallied", &ts), Fingerprint("other", "markets rallied", &ts))
	})

	t.Run("text changes digest", func(t *testing.T) {
		assert.NotEqual(t, Fingerprint("wire", "markets rallied", &ts), Fingerprint("wire", "markets fell", &ts))
	})

	t.Run("time changes digest", func(t *testing.T) {
		other := ts.Add(time.Minute)
		assert.NotEqual(t, Fingerprint("wire", "markets rallied", &ts), Fingerprint("wire", "markets rallied", &other))
	})

	t.Run("nil time distinct from any value", func(t *testing.T) {
		assert.NotEqual(t, Fingerprint("wire", "markets rallied", nil), Fingerprint("wire", "markets rallied", &ts))
	})

	t.Run("nil time deterministic", func(t *testing.T) {
		assert.Equal(t, Fingerprint("wire", "markets rallied", nil), Fingerprint("wire", "markets rallied", nil))
	})

	t.Run("timezone independent", func(t *testing.T) {
		shanghai, err := time.LoadLocation("Asia/Shanghai")
		require.NoError(t, err)
		local := ts.In(shanghai)
		assert.Equal(t, Fingerprint("wire", "markets rallied", &ts), Fingerprint("wire", "markets rallied", &local),
			"same instant in different zones hashes identically")
	})

	t.Run("normalized inputs converge", func(t *testing.T) {
		// the pipeline normalizes before hashing; formatting noise must not
		// produce distinct fingerprints
		a := Fingerprint("wire", Normalize("markets  rallied "), &ts)
		b := Fingerprint("wire", Normalize("\tmarkets rallied"), &ts)
		assert.Equal(t, a, b)
	})
}
