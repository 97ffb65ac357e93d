package metrics

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservePass(t *testing.T) {
	t.Parallel()

	c := NewCollector("sdui")
	c.ObservePass(3*time.Millisecond, 7, []string{"fill", "fill", "text"})
	c.ObservePass(time.Millisecond, 2, nil)

	assert.InDelta(t, 2, testutil.ToFloat64(c.Passes.WithLabelValues(OutcomeOK)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(c.Fallbacks.WithLabelValues("fill")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.Fallbacks.WithLabelValues("text")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(c.Duration))
}

func TestObserveFailure(t *testing.T) {
	t.Parallel()

	c := NewCollector("sdui")
	c.ObserveFailure(OutcomeRejected, "schema", time.Millisecond)
	c.ObserveFailure(OutcomeFailed, "depth", time.Millisecond)

	assert.InDelta(t, 1, testutil.ToFloat64(c.Passes.WithLabelValues(OutcomeRejected)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.Failures.WithLabelValues("depth")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(c.Passes.WithLabelValues(OutcomeOK)), 0)
}

func TestCollectorsAreIndependent(t *testing.T) {
	t.Parallel()

	a := NewCollector("sdui")
	b := NewCollector("sdui")
	a.ObserveThemeReload()

	assert.InDelta(t, 1, testutil.ToFloat64(a.Reloads), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(b.Reloads), 0)
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	c := NewCollector("sdui")
	c.ObservePass(time.Millisecond, 1, []string{"backgroundColor"})

	var buf bytes.Buffer
	require.NoError(t, c.WriteText(&buf))
	assert.Contains(t, buf.String(), `sdui_render_passes_total{outcome="ok"} 1`)
	assert.Contains(t, buf.String(), `sdui_style_fallbacks_total{attribute="backgroundColor"} 1`)
}

func TestNilCollectorIsSafe(t *testing.T) {
	t.Parallel()

	var c *Collector
	require.NotPanics(t, func() {
		c.ObservePass(time.Second, 1, []string{"x"})
		c.ObserveFailure(OutcomeFailed, "x", time.Second)
		c.ObserveThemeReload()
		require.NoError(t, c.WriteText(&bytes.Buffer{}))
	})
}
