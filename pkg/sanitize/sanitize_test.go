package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"empty passes through", "", 100, ""},
		{"trims whitespace", "  Milch  ", 100, "Milch"},
		{"strips null bytes", "Mil\x00ch", 100, "Milch"},
		{"truncates to max runes", "abcdef", 3, "abc"},
		{"truncates before trimming", "ab    c", 4, "ab"},
		{"keeps non-ascii intact", "Käse müß", 100, "Käse müß"},
		{"truncates by runes not bytes", "äöüäöü", 3, "äöü"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.input, tt.max))
		})
	}
}

func TestText_LongInput(t *testing.T) {
	long := strings.Repeat("a", 2000)
	assert.Len(t, Text(long, 1000), 1000)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "ab", Truncate("ab", 3))
	// no trimming, unlike Text
	assert.Equal(t, "  a", Truncate("  ab", 3))
}
