package render

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/arthur-debert/textkit/pkg/block"
	"github.com/arthur-debert/textkit/pkg/errors"
	"github.com/arthur-debert/textkit/pkg/text"
)

// barFill is the bar chart fill character
const barFill = "#"

// ChartEntry is one labeled value in a bar chart. Slice order is
// display order.
type ChartEntry struct {
	Label string
	Value float64
}

// BarChart renders one proportional bar per entry. The label column
// fits the longest label; the remaining width, minus one gap column
// and an optional value column, is shared by the bars. Bars scale
// against the maximum value; all-zero data renders zero-length bars.
func BarChart(entries []ChartEntry, opts ...Option) (*block.Block, error) {
	o := buildOptions(opts)
	width, err := o.resolveWidth()
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return block.New(nil), nil
	}

	labelWidth := 0
	maxValue := 0.0
	valueWidth := 0
	for _, e := range entries {
		if e.Value < 0 || math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
			return nil, errors.Newf(errors.ErrInvalidInput,
				"bar chart value for %q must be a non-negative finite number, got %v", e.Label, e.Value)
		}
		if w := runewidth.StringWidth(e.Label); w > labelWidth {
			labelWidth = w
		}
		if e.Value > maxValue {
			maxValue = e.Value
		}
		if w := len(FormatValue(e.Value)); w > valueWidth {
			valueWidth = w
		}
	}

	available := width - labelWidth - 1
	if o.showValues {
		available -= valueWidth + 1
	}
	if available < 1 {
		available = 1
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		barLen := 0
		if maxValue > 0 {
			barLen = int(math.Round(e.Value / maxValue * float64(available)))
		}

		label, _ := text.Align(e.Label, labelWidth, text.AlignLeft)
		line := label + " " + strings.Repeat(barFill, barLen)

		if o.showValues {
			bar, _ := text.Align(strings.Repeat(barFill, barLen), available, text.AlignLeft)
			line = label + " " + bar + " " + FormatValue(e.Value)
		}
		lines[i] = line
	}

	return block.New(lines), nil
}
