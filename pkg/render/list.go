package render

import (
	"fmt"
	"strconv"

	"github.com/arthur-debert/textkit/pkg/block"
	"github.com/arthur-debert/textkit/pkg/errors"
)

// ListStyle selects the ASCII prefix for unnumbered list items
type ListStyle string

const (
	StyleBullet  ListStyle = "bullet"
	StyleArrow   ListStyle = "arrow"
	StyleDash    ListStyle = "dash"
	StyleCheck   ListStyle = "check"
	StyleUncheck ListStyle = "uncheck"
)

var listPrefixes = map[ListStyle]string{
	StyleBullet:  "* ",
	StyleArrow:   "-> ",
	StyleDash:    "- ",
	StyleCheck:   "[x] ",
	StyleUncheck: "[ ] ",
}

// List renders items one per line with a style prefix, or numbered
// with right-aligned numbers when WithNumbered is set. Empty input
// yields an empty Block.
func List(items []string, opts ...Option) (*block.Block, error) {
	o := buildOptions(opts)

	if len(items) == 0 {
		return block.New(nil), nil
	}

	if o.numbered {
		digits := len(strconv.Itoa(len(items)))
		lines := make([]string, len(items))
		for i, item := range items {
			lines[i] = fmt.Sprintf("%*d. %s", digits, i+1, item)
		}
		return block.New(lines), nil
	}

	style := o.style
	if style == "" {
		style = StyleBullet
	}
	prefix, ok := listPrefixes[style]
	if !ok {
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown list style %q", style)
	}

	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = prefix + item
	}
	return block.New(lines), nil
}
