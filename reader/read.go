package reader

import (
	"strings"

	"github.com/iw2rmb/parselib/charclass"
)

const (
	quote  = '"'
	escape = '\\'
)

// ConsumeWhitespace advances past any whitespace at the cursor.
func (r *Reader) ConsumeWhitespace() {
	for !r.IsAtEnd() && charclass.IsWhitespace(r.Peek()) {
		r.Next()
	}
}

// ReadWhile consumes runes while pred accepts the rune at the cursor and
// returns them. It stops at the end of the buffer; pred never sees EOF.
func (r *Reader) ReadWhile(pred func(rune) bool) string {
	var sb strings.Builder
	for !r.IsAtEnd() && pred(r.Peek()) {
		sb.WriteRune(r.Next())
	}
	return sb.String()
}

func (r *Reader) ReadAlphaString() string {
	return r.ReadWhile(charclass.IsAlpha)
}

func (r *Reader) ReadNumericString() string {
	return r.ReadWhile(charclass.IsNumeric)
}

func (r *Reader) ReadAlphanumericString() string {
	return r.ReadWhile(charclass.IsAlphanumeric)
}

// ReadQuotedString reads a "..." string and returns its content.
//
// The cursor must be on the opening quote. \" is the only escape; any other
// backslash is kept as is. A string left open at the end of the buffer is
// returned as read so far without error.
func (r *Reader) ReadQuotedString() (string, error) {
	if r.Peek() != quote {
		return "", r.fail(UnexpectedChar, nil, "expected %q", quote)
	}
	r.Next()

	var sb strings.Builder
	for !r.IsAtEnd() && r.Peek() != quote {
		c := r.Next()
		if c == escape && r.Peek() == quote {
			c = r.Next()
		}
		sb.WriteRune(c)
	}
	// Closing quote; a no-op when the string was unterminated.
	r.Next()
	return sb.String(), nil
}

// ReadMaybeQuotedString reads a quoted string if the cursor is on a quote and
// an alphanumeric run otherwise.
func (r *Reader) ReadMaybeQuotedString() (string, error) {
	if r.Peek() == quote {
		return r.ReadQuotedString()
	}
	return r.ReadAlphanumericString(), nil
}

// Quote returns s in the form ReadQuotedString accepts. s must not end with a
// backslash: the closing quote would read back as an escaped quote.
func Quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
