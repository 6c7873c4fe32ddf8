package text_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/textkit/pkg/errors"
	"github.com/arthur-debert/textkit/pkg/text"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  []string
	}{
		{
			name:  "short text fits on one line",
			input: "hello world",
			width: 20,
			want:  []string{"hello world"},
		},
		{
			name:  "breaks at word boundary",
			input: "the quick brown fox jumps",
			width: 10,
			want:  []string{"the quick", "brown fox", "jumps"},
		},
		{
			name:  "long token is hard-broken",
			input: "abcdefghij",
			width: 4,
			want:  []string{"abcd", "efgh", "ij"},
		},
		{
			name:  "empty input yields one empty line",
			input: "",
			width: 10,
			want:  []string{""},
		},
		{
			name:  "leading and trailing whitespace stripped",
			input: "  hello  ",
			width: 10,
			want:  []string{"hello"},
		},
		{
			name:  "exact width is not broken",
			input: "abcde",
			width: 5,
			want:  []string{"abcde"},
		},
		{
			name:  "blank line preserved",
			input: "one\n\ntwo",
			width: 10,
			want:  []string{"one", "", "two"},
		},
		{
			name:  "word after hard break shares the tail line",
			input: "abcdefgh xy",
			width: 6,
			want:  []string{"abcdef", "gh xy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := text.Wrap(tt.input, tt.width)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWrapLineBound(t *testing.T) {
	// Every produced line fits the width, for a variety of inputs
	inputs := []string{
		"a b c d e f g h i j k l m n o p",
		"supercalifragilisticexpialidocious",
		"mixed short andverylongtokensthatneedbreaking here",
	}
	for _, input := range inputs {
		for _, width := range []int{1, 3, 7, 12, 40} {
			lines, err := text.Wrap(input, width)
			require.NoError(t, err)
			require.NotEmpty(t, lines)
			for _, line := range lines {
				assert.LessOrEqual(t, len(line), width,
					"wrap(%q, %d) produced overlong line %q", input, width, line)
			}
		}
	}
}

func TestWrapPreservesContent(t *testing.T) {
	// Joining the wrapped lines with spaces and normalizing whitespace
	// reproduces the original token sequence
	input := "the quick brown fox jumps over the lazy dog"
	for _, width := range []int{5, 9, 17, 80} {
		lines, err := text.Wrap(input, width)
		require.NoError(t, err)

		joined := strings.Join(strings.Fields(strings.Join(lines, " ")), " ")
		// Hard breaks split tokens, so compare with separators removed
		assert.Equal(t,
			strings.ReplaceAll(input, " ", ""),
			strings.ReplaceAll(joined, " ", ""),
			"wrap(%q, %d) lost content", input, width)
	}
}

func TestWrapInvalidWidth(t *testing.T) {
	for _, width := range []int{0, -1} {
		_, err := text.Wrap("anything", width)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidConfig),
			"Wrap(width=%d) = %v, want INVALID_CONFIG", width, err)
	}
}

func TestAlign(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		mode  text.Alignment
		want  string
	}{
		{"left", "hi", 6, text.AlignLeft, "hi    "},
		{"right", "hi", 6, text.AlignRight, "    hi"},
		{"center even", "hi", 6, text.AlignCenter, "  hi  "},
		{"center odd gap favors right", "hi", 5, text.AlignCenter, " hi  "},
		{"exact width", "hello", 5, text.AlignLeft, "hello"},
		{"overlong passes through", "overflowing", 5, text.AlignLeft, "overflowing"},
		{"empty text", "", 3, text.AlignLeft, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := text.Align(tt.input, tt.width, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAlignInvalidWidth(t *testing.T) {
	_, err := text.Align("x", 0, text.AlignLeft)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidConfig))
}

func TestRule(t *testing.T) {
	got, err := text.Rule(5, text.DefaultRuleChar)
	require.NoError(t, err)
	assert.Equal(t, "-----", got)

	got, err = text.Rule(3, '=')
	require.NoError(t, err)
	assert.Equal(t, "===", got)

	_, err = text.Rule(0, '-')
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidConfig))
}
