package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/textkit/pkg/block"
	"github.com/arthur-debert/textkit/pkg/config"
	"github.com/arthur-debert/textkit/pkg/errors"
	"github.com/arthur-debert/textkit/pkg/render"
)

func TestBox(t *testing.T) {
	t.Run("titled box is exactly three lines of the declared width", func(t *testing.T) {
		b, err := render.Box("hi", render.WithTitle("T"), render.WithWidth(10))
		require.NoError(t, err)

		lines := b.Lines()
		require.Len(t, lines, 3)
		for _, line := range lines {
			assert.Len(t, line, 10)
		}
		assert.Equal(t, "+-- T ---+", lines[0])
		assert.Equal(t, "| hi     |", lines[1])
		assert.Equal(t, "+--------+", lines[2])
	})

	t.Run("untitled box has plain borders", func(t *testing.T) {
		b, err := render.Box("hi", render.WithWidth(10))
		require.NoError(t, err)

		lines := b.Lines()
		assert.Equal(t, "+--------+", lines[0])
		assert.Equal(t, "+--------+", lines[2])
	})

	t.Run("content wraps to the inner width", func(t *testing.T) {
		b, err := render.Box("alpha beta gamma", render.WithWidth(11))
		require.NoError(t, err)

		// inner width 7: "alpha", "beta", "gamma"
		assert.Equal(t, 5, b.Height())
		for _, line := range b.Lines() {
			assert.Len(t, line, 11)
		}
	})

	t.Run("empty content still renders one content line", func(t *testing.T) {
		b, err := render.Box("", render.WithWidth(8))
		require.NoError(t, err)
		assert.Equal(t, 3, b.Height())
	})

	t.Run("title longer than frame grows that line", func(t *testing.T) {
		b, err := render.Box("hi", render.WithTitle("much too long a title"), render.WithWidth(10))
		require.NoError(t, err)

		// Pass-through rule: the border line grows, the block re-pads
		assert.Greater(t, b.Width(), 10)
		for _, line := range b.Lines() {
			assert.Equal(t, b.Width(), len(line))
		}
		assert.Contains(t, b.Lines()[0], "much too long a title")
	})

	t.Run("uses threaded config width", func(t *testing.T) {
		b, err := render.Box("hi", render.WithConfig(&config.Config{Width: 12}))
		require.NoError(t, err)
		assert.Equal(t, 12, b.Width())
	})

	t.Run("invalid width rejected", func(t *testing.T) {
		_, err := render.Box("hi", render.WithWidth(0))
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidConfig))
	})
}

func TestBoxBlock(t *testing.T) {
	t.Run("frames a pre-rendered block at its natural width", func(t *testing.T) {
		inner := block.New([]string{"aaaaaa", "bb"})
		b, err := render.BoxBlock(inner, render.WithTitle("wrap"))
		require.NoError(t, err)

		assert.Equal(t, inner.Width()+4, b.Width())
		assert.Equal(t, inner.Height()+2, b.Height())
		assert.Equal(t, "| aaaaaa |", b.Lines()[1])
		assert.Equal(t, "| bb     |", b.Lines()[2])
	})

	t.Run("explicit width hard-breaks wide lines", func(t *testing.T) {
		inner := block.New([]string{"0123456789"})
		b, err := render.BoxBlock(inner, render.WithWidth(9))
		require.NoError(t, err)

		// inner width 5: two chunks
		assert.Equal(t, 4, b.Height())
		assert.Equal(t, "| 01234 |", b.Lines()[1])
		assert.Equal(t, "| 56789 |", b.Lines()[2])
	})

	t.Run("box around a table composes", func(t *testing.T) {
		table, err := render.Table(render.TableData{
			Headers: []string{"k", "v"},
			Rows:    []render.Row{render.PositionalRow("a", 1)},
		}, render.WithWidth(40))
		require.NoError(t, err)

		b, err := render.BoxBlock(table, render.WithTitle("data"))
		require.NoError(t, err)
		assert.Equal(t, table.Height()+2, b.Height())
		assert.True(t, strings.HasPrefix(b.Lines()[0], "+-- data "))
	})
}
