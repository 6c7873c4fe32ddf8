package text

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/arthur-debert/textkit/pkg/errors"
)

// Wrap breaks s into lines of at most width display columns, breaking
// preferentially at whitespace. A single token wider than width is
// hard-broken at the width boundary rather than dropped. Leading and
// trailing whitespace of each input line is stripped before wrapping.
// The result always has at least one line: empty input yields [""].
func Wrap(s string, width int) ([]string, error) {
	if width <= 0 {
		return nil, errors.Newf(errors.ErrInvalidConfig, "wrap width must be positive, got %d", width)
	}

	var lines []string
	for _, raw := range strings.Split(s, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrapLine(line, width)...)
	}

	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines, nil
}

// wrapLine wraps a single trimmed, non-empty line.
func wrapLine(line string, width int) []string {
	var out []string
	var cur strings.Builder
	curWidth := 0

	flush := func() {
		out = append(out, cur.String())
		cur.Reset()
		curWidth = 0
	}

	for _, word := range strings.Fields(line) {
		wordWidth := runewidth.StringWidth(word)

		if wordWidth > width {
			// Token wider than the line: emit what we have, then
			// hard-break the token at column boundaries.
			if curWidth > 0 {
				flush()
			}
			for _, chunk := range hardBreak(word, width) {
				out = append(out, chunk)
			}
			// Pull the final chunk back as the current line so the
			// following word can share it.
			last := out[len(out)-1]
			out = out[:len(out)-1]
			cur.WriteString(last)
			curWidth = runewidth.StringWidth(last)
			continue
		}

		switch {
		case curWidth == 0:
			cur.WriteString(word)
			curWidth = wordWidth
		case curWidth+1+wordWidth <= width:
			cur.WriteByte(' ')
			cur.WriteString(word)
			curWidth += 1 + wordWidth
		default:
			flush()
			cur.WriteString(word)
			curWidth = wordWidth
		}
	}

	if curWidth > 0 {
		flush()
	}
	return out
}

// hardBreak splits a word into chunks of at most width display columns.
func hardBreak(word string, width int) []string {
	var chunks []string
	var cur strings.Builder
	curWidth := 0

	for _, r := range word {
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
