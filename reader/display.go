package reader

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/parselib/internal/grapheme"
)

// String describes the cursor for diagnostics: position, the rune under the
// cursor, and the unconsumed text.
func (r *Reader) String() string {
	cur := "EOF"
	if !r.IsAtEnd() {
		cur = fmt.Sprintf("%q", r.Peek())
	}
	return fmt.Sprintf("at %d, char %s, rest %q", r.pos, cur, r.PeekRest())
}

// LineCol returns the 1-based line and rune column of the cursor. Lines are
// separated by '\n'.
func (r *Reader) LineCol() (line, col int) {
	line = 1
	start := 0
	for i := 0; i < r.pos; i++ {
		if r.text[i] == '\n' {
			line++
			start = i + 1
		}
	}
	return line, r.pos - start + 1
}

// Excerpt returns the line holding the cursor followed by a caret line that
// points at the cursor cell. Tabs in the prefix are kept so the caret lines
// up under any tab width.
func (r *Reader) Excerpt() string {
	start := r.pos
	for start > 0 && r.text[start-1] != '\n' {
		start--
	}
	end := r.pos
	for end < len(r.text) && r.text[end] != '\n' {
		end++
	}

	line := strings.TrimSuffix(string(r.text[start:end]), "\r")
	prefix := string(r.text[start:r.pos])

	var sb strings.Builder
	sb.WriteString(line)
	sb.WriteByte('\n')
	for i, seg := range strings.Split(prefix, "\t") {
		if i > 0 {
			sb.WriteByte('\t')
		}
		sb.WriteString(strings.Repeat(" ", grapheme.Width(seg)))
	}
	sb.WriteByte('^')
	return sb.String()
}
