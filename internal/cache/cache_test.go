package cache

import (
	"testing"

	"morse-translator/internal/morse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCache_GetSet(t *testing.T) {
	c := NewResultCache(10)

	_, ok := c.Get("sos")
	assert.False(t, ok)

	want := morse.TranslateWithDiagnostics("sos")
	c.Set("sos", want)

	got, ok := c.Get("sos")
	require.True(t, ok)
	assert.Equal(t, want, got)

	stats := c.Stats()
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

func TestResultCache_ReturnsCopies(t *testing.T) {
	c := NewResultCache(10)
	c.Set("a#", morse.Result{Text: "•- ", Unknown: []string{"#"}})

	got, ok := c.Get("a#")
	require.True(t, ok)
	got.Unknown[0] = "mutated"

	again, _ := c.Get("a#")
	assert.Equal(t, []string{"#"}, again.Unknown)
}

func TestResultCache_Bounded(t *testing.T) {
	c := NewResultCache(2)
	c.Set("a", morse.Result{Text: "•- "})
	c.Set("b", morse.Result{Text: "-••• "})
	c.Set("c", morse.Result{Text: "-•-• "})

	assert.Equal(t, 2, c.Stats().Entries)
	_, ok := c.Get("c")
	assert.True(t, ok)
}

func TestResultCache_Disabled(t *testing.T) {
	c := NewResultCache(0)
	c.Set("a", morse.Result{Text: "•- "})

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Stats().Entries)
}
