package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/textkit/pkg/errors"
	"github.com/arthur-debert/textkit/pkg/render"
)

func TestList(t *testing.T) {
	items := []string{"write docs", "fix wrap", "ship"}

	t.Run("bullet is the default style", func(t *testing.T) {
		b, err := render.List(items)
		require.NoError(t, err)
		assert.Equal(t, "* write docs", b.Lines()[0][:12])
	})

	t.Run("styles", func(t *testing.T) {
		tests := []struct {
			style  render.ListStyle
			prefix string
		}{
			{render.StyleBullet, "* "},
			{render.StyleArrow, "-> "},
			{render.StyleDash, "- "},
			{render.StyleCheck, "[x] "},
			{render.StyleUncheck, "[ ] "},
		}
		for _, tt := range tests {
			b, err := render.List(items, render.WithStyle(tt.style))
			require.NoError(t, err)
			for i, item := range items {
				want := tt.prefix + item
				assert.Equal(t, want, b.Lines()[i][:len(want)], "style %s", tt.style)
			}
		}
	})

	t.Run("unknown style rejected", func(t *testing.T) {
		_, err := render.List(items, render.WithStyle("sparkles"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("numbered items right-align their numbers", func(t *testing.T) {
		many := make([]string, 12)
		for i := range many {
			many[i] = "item"
		}

		b, err := render.List(many, render.WithNumbered())
		require.NoError(t, err)

		assert.Equal(t, " 1. item", b.Lines()[0])
		assert.Equal(t, "12. item", b.Lines()[11])
	})

	t.Run("empty items yield empty block", func(t *testing.T) {
		b, err := render.List(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, b.Height())
	})
}
