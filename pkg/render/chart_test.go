package render_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/textkit/pkg/errors"
	"github.com/arthur-debert/textkit/pkg/render"
)

func TestBarChart(t *testing.T) {
	t.Run("bars scale against the maximum", func(t *testing.T) {
		entries := []render.ChartEntry{
			{Label: "a", Value: 10},
			{Label: "b", Value: 5},
		}

		b, err := render.BarChart(entries, render.WithWidth(20))
		require.NoError(t, err)

		// label column 1, one gap: 18 columns for bars
		lines := b.Lines()
		assert.Equal(t, 18, strings.Count(lines[0], "#"))
		assert.Equal(t, 9, strings.Count(lines[1], "#"))
	})

	t.Run("label column fits the longest label", func(t *testing.T) {
		entries := []render.ChartEntry{
			{Label: "ab", Value: 1},
			{Label: "longest", Value: 2},
		}

		b, err := render.BarChart(entries, render.WithWidth(20))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(b.Lines()[0], "ab      "))
		assert.True(t, strings.HasPrefix(b.Lines()[1], "longest "))
	})

	t.Run("show values appends the raw value", func(t *testing.T) {
		entries := []render.ChartEntry{
			{Label: "a", Value: 10},
			{Label: "b", Value: 5},
		}

		b, err := render.BarChart(entries, render.WithWidth(20), render.WithShowValues())
		require.NoError(t, err)

		// 20 - 1 (label) - 1 (gap) - 3 (" 10") = 15 bar columns
		lines := b.Lines()
		assert.Equal(t, 15, strings.Count(lines[0], "#"))
		assert.Equal(t, 8, strings.Count(lines[1], "#"))
		assert.True(t, strings.HasSuffix(strings.TrimRight(lines[0], " "), " 10"))
		assert.True(t, strings.HasSuffix(strings.TrimRight(lines[1], " "), " 5"))
	})

	t.Run("all-zero values render no bars", func(t *testing.T) {
		entries := []render.ChartEntry{
			{Label: "a", Value: 0},
			{Label: "b", Value: 0},
		}

		b, err := render.BarChart(entries, render.WithWidth(20))
		require.NoError(t, err)
		assert.NotContains(t, b.String(), "#")
	})

	t.Run("negative value rejected", func(t *testing.T) {
		_, err := render.BarChart([]render.ChartEntry{{Label: "a", Value: -1}}, render.WithWidth(20))
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("non-finite values rejected", func(t *testing.T) {
		for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			entries := []render.ChartEntry{
				{Label: "a", Value: 10},
				{Label: "b", Value: v},
			}
			_, err := render.BarChart(entries, render.WithWidth(20))
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput),
				"value %v should be INVALID_INPUT, got %v", v, err)
		}
	})

	t.Run("empty entries yield empty block", func(t *testing.T) {
		b, err := render.BarChart(nil, render.WithWidth(20))
		require.NoError(t, err)
		assert.Equal(t, 0, b.Height())
	})

	t.Run("entry order is display order", func(t *testing.T) {
		entries := []render.ChartEntry{
			{Label: "z", Value: 1},
			{Label: "a", Value: 2},
		}

		b, err := render.BarChart(entries, render.WithWidth(20))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(b.Lines()[0], "z"))
		assert.True(t, strings.HasPrefix(b.Lines()[1], "a"))
	})
}
