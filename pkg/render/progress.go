package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/arthur-debert/textkit/pkg/block"
	"github.com/arthur-debert/textkit/pkg/errors"
)

// progressDecoration is the fixed chrome around the bar: brackets,
// one space, and up to "100%".
const progressDecoration = 7

// ProgressData is the dispatchable input for the progress renderer
type ProgressData struct {
	Value float64
	Total float64
}

// Progress renders a labeled progress bar: [#####.....] NN%. An
// explicit width sets the bar cell count; otherwise the bar fills the
// configured width minus the decoration and label. The filled portion
// and the percentage are both clamped, so values outside [0, total]
// degrade to an empty or full bar rather than failing.
func Progress(value, total float64, opts ...Option) (*block.Block, error) {
	o := buildOptions(opts)

	if total <= 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "progress total must be positive, got %v", total)
	}

	barWidth, err := progressBarWidth(o)
	if err != nil {
		return nil, err
	}

	ratio := value / total
	filled := int(math.Round(ratio * float64(barWidth)))
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}

	percent := int(math.Round(ratio * 100))
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	bar := strings.Repeat(barFill, filled) + strings.Repeat(".", barWidth-filled)
	line := fmt.Sprintf("[%s] %d%%", bar, percent)
	if o.label != "" {
		line = o.label + " " + line
	}

	return block.New([]string{line}), nil
}

// progressBarWidth resolves the bar cell count: an explicit width
// option is the bar width itself; the configured default is a total
// line width the bar must fit inside.
func progressBarWidth(o *options) (int, error) {
	if o.widthSet {
		if o.width <= 0 {
			return 0, errors.Newf(errors.ErrInvalidConfig, "width must be positive, got %d", o.width)
		}
		return o.width, nil
	}

	total, err := o.resolveWidth()
	if err != nil {
		return 0, err
	}

	barWidth := total - progressDecoration
	if o.label != "" {
		barWidth -= runewidth.StringWidth(o.label) + 1
	}
	if barWidth < 1 {
		barWidth = 1
	}
	return barWidth, nil
}
