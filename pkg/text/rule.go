package text

import (
	"strings"

	"github.com/arthur-debert/textkit/pkg/errors"
)

// DefaultRuleChar is the fill character used by horizontal rules
const DefaultRuleChar = '-'

// Rule returns a horizontal rule: char repeated width times.
func Rule(width int, char byte) (string, error) {
	if width <= 0 {
		return "", errors.Newf(errors.ErrInvalidConfig, "rule width must be positive, got %d", width)
	}
	return strings.Repeat(string(char), width), nil
}
