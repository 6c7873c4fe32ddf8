package block

import (
	"strings"

	"github.com/arthur-debert/textkit/pkg/errors"
)

// StackOption configures Stack
type StackOption func(*stackOptions)

type stackOptions struct {
	separator byte
}

// WithSeparator inserts a full-width rule of char between blocks,
// centered within the spacing gap (or alone when spacing is 0).
func WithSeparator(char byte) StackOption {
	return func(o *stackOptions) {
		o.separator = char
	}
}

// Stack concatenates blocks vertically with spacing blank lines between
// them. The output width is the maximum width across inputs; narrower
// blocks are right-padded. Each renderer aligns its own content before
// stacking; Stack imposes no re-alignment.
func Stack(blocks []*Block, spacing int, opts ...StackOption) (*Block, error) {
	if spacing < 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "stack spacing must be non-negative, got %d", spacing)
	}

	var o stackOptions
	for _, opt := range opts {
		opt(&o)
	}

	width := 0
	for _, b := range blocks {
		if b != nil && b.width > width {
			width = b.width
		}
	}

	var lines []string
	first := true
	for _, b := range blocks {
		if b == nil {
			continue
		}
		if !first {
			lines = append(lines, gapLines(width, spacing, o.separator)...)
		}
		first = false
		for _, line := range b.lines {
			lines = append(lines, pad(line, width))
		}
	}

	return New(lines), nil
}

// gapLines builds the lines inserted between two stacked blocks.
func gapLines(width, spacing int, separator byte) []string {
	blank := strings.Repeat(" ", width)

	if separator == 0 {
		out := make([]string, spacing)
		for i := range out {
			out[i] = blank
		}
		return out
	}

	rule := strings.Repeat(string(separator), width)
	if spacing == 0 {
		return []string{rule}
	}

	out := make([]string, 0, spacing+1)
	before := spacing / 2
	for i := 0; i < before; i++ {
		out = append(out, blank)
	}
	out = append(out, rule)
	for i := before; i < spacing; i++ {
		out = append(out, blank)
	}
	return out
}
