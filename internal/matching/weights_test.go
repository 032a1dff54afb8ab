package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWeights(t *testing.T) {
	t.Run("empty override keeps defaults", func(t *testing.T) {
		w, overridden := ParseWeights("")
		assert.False(t, overridden)
		assert.Equal(t, DefaultWeights(), w)
	})

	t.Run("malformed override keeps defaults", func(t *testing.T) {
		w, overridden := ParseWeights("{not json")
		assert.False(t, overridden)
		assert.Equal(t, DefaultWeights(), w)
	})

	t.Run("partial override merges onto defaults", func(t *testing.T) {
		w, overridden := ParseWeights(`{"cost":0.5,"distance":0.05}`)
		assert.True(t, overridden)
		assert.InDelta(t, 0.5, w.Cost, 1e-9)
		assert.InDelta(t, 0.05, w.Distance, 1e-9)
		assert.InDelta(t, 0.25, w.Eligibility, 1e-9)
		assert.InDelta(t, 0.25, w.ServiceMatch, 1e-9)
		assert.InDelta(t, 0.15, w.Access, 1e-9)
		assert.InDelta(t, 0.10, w.Freshness, 1e-9)
	})

	t.Run("explicit zero is honored", func(t *testing.T) {
		w, overridden := ParseWeights(`{"freshness":0}`)
		assert.True(t, overridden)
		assert.Zero(t, w.Freshness)
	})

	t.Run("default weights sum to one", func(t *testing.T) {
		w := DefaultWeights()
		sum := w.Eligibility + w.ServiceMatch + w.Access + w.Cost + w.Distance + w.Freshness
		assert.InDelta(t, 1.0, sum, 1e-9)
	})
}
