package text

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/arthur-debert/textkit/pkg/errors"
)

// Alignment selects how Align positions text within its width
type Alignment int

const (
	// AlignLeft pads on the right
	AlignLeft Alignment = iota
	// AlignCenter pads on both sides, favoring the right for odd gaps
	AlignCenter
	// AlignRight pads on the left
	AlignRight
)

// Align pads s with spaces to exactly width display columns. Text
// already wider than width passes through unmodified; callers that
// need truncation must wrap first.
func Align(s string, width int, mode Alignment) (string, error) {
	if width <= 0 {
		return "", errors.Newf(errors.ErrInvalidConfig, "align width must be positive, got %d", width)
	}

	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s, nil
	}

	switch mode {
	case AlignRight:
		return strings.Repeat(" ", gap) + s, nil
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left), nil
	default:
		return s + strings.Repeat(" ", gap), nil
	}
}
