package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/arthur-debert/textkit/pkg/block"
	"github.com/arthur-debert/textkit/pkg/text"
)

// Border glyphs are fixed 7-bit ASCII: 2 columns of border plus 2 of
// padding, so usable content width is total width minus 4.
const boxFrameColumns = 4

// Box wraps content in a bordered frame with an optional title. The
// content is word-wrapped to the usable inner width. A title wider
// than the frame passes through unmodified, growing that line, per
// the align pass-through rule.
func Box(content string, opts ...Option) (*block.Block, error) {
	o := buildOptions(opts)
	width, err := o.resolveWidth()
	if err != nil {
		return nil, err
	}

	inner := innerWidth(width)
	lines, err := text.Wrap(content, inner)
	if err != nil {
		return nil, err
	}

	return frame(lines, width, o.title), nil
}

// BoxBlock frames a pre-rendered Block. Without an explicit width the
// frame fits the block's own width; with one, lines wider than the
// usable width are hard-broken at column boundaries (word wrapping
// would destroy the block's internal spacing).
func BoxBlock(b *block.Block, opts ...Option) (*block.Block, error) {
	o := buildOptions(opts)

	width := b.Width() + boxFrameColumns
	if o.widthSet || o.cfg != nil {
		var err error
		width, err = o.resolveWidth()
		if err != nil {
			return nil, err
		}
	}

	inner := innerWidth(width)
	var lines []string
	for _, line := range b.Lines() {
		if runewidth.StringWidth(line) <= inner {
			lines = append(lines, line)
			continue
		}
		lines = append(lines, chunkLine(line, inner)...)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}

	return frame(lines, width, o.title), nil
}

// innerWidth returns the usable content width for a frame total width
func innerWidth(width int) int {
	inner := width - boxFrameColumns
	if inner < 1 {
		inner = 1
	}
	return inner
}

// frame builds the bordered block around already-wrapped lines.
func frame(lines []string, width int, title string) *block.Block {
	inner := innerWidth(width)
	dashSpan := inner + 2

	var out []string
	if title != "" {
		head := "-- " + title + " "
		if fill := dashSpan - runewidth.StringWidth(head); fill > 0 {
			head += strings.Repeat("-", fill)
		}
		out = append(out, "+"+head+"+")
	} else {
		out = append(out, "+"+strings.Repeat("-", dashSpan)+"+")
	}

	for _, line := range lines {
		padded, _ := text.Align(line, inner, text.AlignLeft)
		out = append(out, "| "+padded+" |")
	}

	out = append(out, "+"+strings.Repeat("-", dashSpan)+"+")
	return block.New(out)
}

// chunkLine hard-breaks a line at display column boundaries,
// preserving all characters including interior spaces.
func chunkLine(line string, width int) []string {
	var chunks []string
	var cur strings.Builder
	curWidth := 0

	for _, r := range line {
		rw := runewidth.RuneWidth(r)
		if curWidth+rw > width && curWidth > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
			curWidth = 0
		}
		cur.WriteRune(r)
		curWidth += rw
	}
	if cur.Len() > 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}
