package render

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/arthur-debert/textkit/pkg/block"
	"github.com/arthur-debert/textkit/pkg/errors"
	"github.com/arthur-debert/textkit/pkg/logging"
	"github.com/arthur-debert/textkit/pkg/text"
)

// columnGap separates adjacent columns
const columnGap = "  "

type rowShape int

const (
	shapePositional rowShape = iota
	shapeKeyed
)

// Row is a tagged-variant table row: either an ordered sequence of
// values aligned positionally to the headers, or a mapping from header
// name to value. The two shapes are mutually exclusive within one
// dataset and are resolved once at table-render entry.
type Row struct {
	shape rowShape
	cells []string
	keyed map[string]string
}

// PositionalRow builds a row whose values align to the headers by
// position. Values are stringified at construction.
func PositionalRow(values ...interface{}) Row {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = FormatValue(v)
	}
	return Row{shape: shapePositional, cells: cells}
}

// KeyedRow builds a row whose values are looked up by header name
// (case-sensitive exact match). Absent keys render as empty cells.
func KeyedRow(values map[string]interface{}) Row {
	keyed := make(map[string]string, len(values))
	for k, v := range values {
		keyed[k] = FormatValue(v)
	}
	return Row{shape: shapeKeyed, keyed: keyed}
}

// TableData is the input to Table: mandatory ordered headers and rows
// of a single shape.
type TableData struct {
	Headers []string
	Rows    []Row
}

// Table renders a header/row grid. Column widths fit the content;
// when the natural total exceeds the configured width, columns shrink
// proportionally to their own width and cells wrap within the shrunk
// columns. The header row is followed by a single full-width rule.
func Table(data TableData, opts ...Option) (*block.Block, error) {
	o := buildOptions(opts)
	width, err := o.resolveWidth()
	if err != nil {
		return nil, err
	}

	if err := validateTable(data); err != nil {
		return nil, err
	}

	cells := extractCells(data)
	widths := columnWidths(data.Headers, cells)

	total := tableWidth(widths)
	if total > width {
		logger := logging.GetLogger("render.table")
		logger.Debug().
			Int("natural", total).
			Int("width", width).
			Msg("shrinking columns to fit")
		widths = shrinkColumns(widths, total-width)
	}

	var lines []string

	// Headers wrap within shrunk columns just as cells do
	header, err := renderRow(data.Headers, widths)
	if err != nil {
		return nil, err
	}
	lines = append(lines, header...)

	rule, err := text.Rule(tableWidth(widths), text.DefaultRuleChar)
	if err != nil {
		return nil, err
	}
	lines = append(lines, rule)

	for _, row := range cells {
		rendered, err := renderRow(row, widths)
		if err != nil {
			return nil, err
		}
		lines = append(lines, rendered...)
	}

	return block.New(lines), nil
}

// validateTable enforces the structural invariants: headers present
// and unique, rows of a single shape, positional rows no longer than
// the headers.
func validateTable(data TableData) error {
	if len(data.Headers) == 0 {
		return errors.New(errors.ErrInvalidInput, "table headers are required")
	}

	seen := make(map[string]bool, len(data.Headers))
	for _, h := range data.Headers {
		if seen[h] {
			return errors.Newf(errors.ErrInvalidInput, "duplicate table header %q", h)
		}
		seen[h] = true
	}

	for i, row := range data.Rows {
		if row.shape != data.Rows[0].shape {
			return errors.Newf(errors.ErrInvalidInput,
				"mixed row shapes: row %d does not match row 0", i).
				WithDetail("row", i)
		}
		if row.shape == shapePositional && len(row.cells) > len(data.Headers) {
			return errors.Newf(errors.ErrInvalidInput,
				"row %d has %d cells, want at most %d", i, len(row.cells), len(data.Headers))
		}
	}
	return nil
}

// extractCells resolves every row to one string cell per header.
func extractCells(data TableData) [][]string {
	out := make([][]string, len(data.Rows))
	for i, row := range data.Rows {
		cells := make([]string, len(data.Headers))
		for j, h := range data.Headers {
			switch row.shape {
			case shapeKeyed:
				cells[j] = row.keyed[h]
			default:
				if j < len(row.cells) {
					cells[j] = row.cells[j]
				}
			}
		}
		out[i] = cells
	}
	return out
}

// columnWidths computes each column's natural width: the widest of
// header and cells, with a floor of 1.
func columnWidths(headers []string, cells [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
		if widths[i] < 1 {
			widths[i] = 1
		}
	}
	for _, row := range cells {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// tableWidth is the rendered width: columns plus gaps.
func tableWidth(widths []int) int {
	total := len(columnGap) * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	return total
}

// shrinkColumns reduces column widths by overflow in proportion to
// each column's own width, flooring every column at 1. Rounding drift
// is settled against the widest columns so the result is deterministic.
func shrinkColumns(widths []int, overflow int) []int {
	sum := 0
	for _, w := range widths {
		sum += w
	}

	out := make([]int, len(widths))
	reduced := 0
	for i, w := range widths {
		r := int(math.Round(float64(overflow) * float64(w) / float64(sum)))
		if w-r < 1 {
			r = w - 1
		}
		out[i] = w - r
		reduced += r
	}

	for reduced < overflow {
		widest := -1
		for i, w := range out {
			if w > 1 && (widest < 0 || w > out[widest]) {
				widest = i
			}
		}
		if widest < 0 {
			break
		}
		out[widest]--
		reduced++
	}
	for reduced > overflow {
		narrowest := 0
		for i, w := range out {
			if w < out[narrowest] {
				narrowest = i
			}
		}
		out[narrowest]++
		reduced--
	}
	return out
}

// renderRow wraps each cell within its column and pads all columns to
// the row's tallest cell.
func renderRow(cells []string, widths []int) ([]string, error) {
	wrapped := make([][]string, len(cells))
	height := 1
	for i, cell := range cells {
		if cell == "" {
			wrapped[i] = []string{""}
			continue
		}
		lines, err := text.Wrap(cell, widths[i])
		if err != nil {
			return nil, err
		}
		wrapped[i] = lines
		if len(lines) > height {
			height = len(lines)
		}
	}

	out := make([]string, height)
	for line := 0; line < height; line++ {
		parts := make([]string, len(cells))
		for i := range cells {
			cellLine := ""
			if line < len(wrapped[i]) {
				cellLine = wrapped[i][line]
			}
			parts[i], _ = text.Align(cellLine, widths[i], text.AlignLeft)
		}
		out[line] = strings.Join(parts, columnGap)
	}
	return out, nil
}
