package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/textkit/pkg/config"
	"github.com/arthur-debert/textkit/pkg/errors"
	"github.com/arthur-debert/textkit/pkg/render"
)

func TestProgress(t *testing.T) {
	t.Run("half full", func(t *testing.T) {
		b, err := render.Progress(5, 10, render.WithWidth(10))
		require.NoError(t, err)
		assert.Equal(t, "[#####.....] 50%", b.String())
	})

	t.Run("value above total clamps to full bar and 100 percent", func(t *testing.T) {
		b, err := render.Progress(150, 100, render.WithWidth(10))
		require.NoError(t, err)
		assert.Equal(t, "[##########] 100%", b.String())
	})

	t.Run("negative value clamps to empty bar and 0 percent", func(t *testing.T) {
		b, err := render.Progress(-5, 100, render.WithWidth(10))
		require.NoError(t, err)
		assert.Equal(t, "[..........] 0%", b.String())
	})

	t.Run("label prefixes the bar", func(t *testing.T) {
		b, err := render.Progress(1, 2, render.WithWidth(4), render.WithLabel("sync"))
		require.NoError(t, err)
		assert.Equal(t, "sync [##..] 50%", b.String())
	})

	t.Run("non-positive total rejected", func(t *testing.T) {
		for _, total := range []float64{0, -1} {
			_, err := render.Progress(5, total, render.WithWidth(10))
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput),
				"total=%v should be INVALID_INPUT", total)
		}
	})

	t.Run("default bar width fills the configured line width", func(t *testing.T) {
		b, err := render.Progress(0, 1, render.WithConfig(&config.Config{Width: 20}))
		require.NoError(t, err)

		// 20 - 7 decoration columns = 13 bar cells; "0%" is one short
		// of the reserved "100%" so the line is 18 wide before padding
		assert.Equal(t, "[.............] 0%", b.String())
	})

	t.Run("invalid explicit width rejected", func(t *testing.T) {
		_, err := render.Progress(1, 2, render.WithWidth(-4))
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidConfig))
	})

	t.Run("rendering is deterministic", func(t *testing.T) {
		first, err := render.Progress(33, 100, render.WithWidth(12))
		require.NoError(t, err)
		second, err := render.Progress(33, 100, render.WithWidth(12))
		require.NoError(t, err)
		assert.Equal(t, first.String(), second.String())
	})
}
