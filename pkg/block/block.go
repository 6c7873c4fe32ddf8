package block

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Block is an immutable multi-line text unit whose lines all have the
// same display width. Consumers wrap Blocks to produce new Blocks;
// they are never mutated in place.
type Block struct {
	lines []string
	width int
}

// New constructs a Block from lines, right-padding every line with
// spaces to the widest line's display width. An empty or nil slice
// yields an empty Block of width 0.
func New(lines []string) *Block {
	if len(lines) == 0 {
		return &Block{}
	}

	width := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}

	padded := make([]string, len(lines))
	for i, line := range lines {
		padded[i] = pad(line, width)
	}
	return &Block{lines: padded, width: width}
}

// Width returns the display width shared by every line
func (b *Block) Width() int {
	return b.width
}

// Height returns the number of lines
func (b *Block) Height() int {
	return len(b.lines)
}

// Lines returns a copy of the block's lines
func (b *Block) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// String joins the lines with newlines. This is the terminal
// serialization step at the boundary to the caller.
func (b *Block) String() string {
	return strings.Join(b.lines, "\n")
}

// pad right-pads line with spaces to the given display width
func pad(line string, width int) string {
	gap := width - runewidth.StringWidth(line)
	if gap <= 0 {
		return line
	}
	return line + strings.Repeat(" ", gap)
}
