package inspect

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/parselib/reader"
)

type op struct {
	name string
	run  func(r *reader.Reader) (string, error)
}

type boundOp struct {
	binding key.Binding
	op      op
}

func bindOps(km KeyMap) []boundOp {
	return []boundOp{
		{km.Next, op{"next", opNext}},
		{km.Back, op{"back", opBack}},
		{km.Start, op{"start", opStart}},
		{km.End, op{"end", opEnd}},
		{km.Whitespace, op{"whitespace", opWhitespace}},
		{km.Alpha, op{"alpha", opString((*reader.Reader).ReadAlphaString)}},
		{km.Numeric, op{"numeric", opString((*reader.Reader).ReadNumericString)}},
		{km.Alnum, op{"alnum", opString((*reader.Reader).ReadAlphanumericString)}},
		{km.Quoted, op{"quoted", opFallible((*reader.Reader).ReadQuotedString)}},
		{km.MaybeQuoted, op{"maybe quoted", opFallible((*reader.Reader).ReadMaybeQuotedString)}},
		{km.CharArray, op{"char array", opCharArray}},
		{km.IntArray, op{"int array", opIntArray}},
	}
}

// opNext reports EOF only at the end, so a literal NUL in the text still
// shows as '\x00'.
func opNext(r *reader.Reader) (string, error) {
	if r.IsAtEnd() {
		return "EOF", nil
	}
	return strconv.QuoteRune(r.Next()), nil
}

func opBack(r *reader.Reader) (string, error) {
	if err := r.Seek(r.Pos() - 1); err != nil {
		return "", err
	}
	return strconv.QuoteRune(r.Peek()), nil
}

func opStart(r *reader.Reader) (string, error) {
	return seekTo(r, 0)
}

func opEnd(r *reader.Reader) (string, error) {
	return seekTo(r, r.Len())
}

func seekTo(r *reader.Reader, pos int) (string, error) {
	if err := r.Seek(pos); err != nil {
		return "", err
	}
	return "at " + strconv.Itoa(pos), nil
}

func opWhitespace(r *reader.Reader) (string, error) {
	before := r.Pos()
	r.ConsumeWhitespace()
	return formatCount(r.Pos()-before, "rune"), nil
}

func opString(read func(*reader.Reader) string) func(*reader.Reader) (string, error) {
	return func(r *reader.Reader) (string, error) {
		return strconv.Quote(read(r)), nil
	}
}

func opFallible(read func(*reader.Reader) (string, error)) func(*reader.Reader) (string, error) {
	return func(r *reader.Reader) (string, error) {
		s, err := read(r)
		if err != nil {
			return "", err
		}
		return strconv.Quote(s), nil
	}
}

func opCharArray(r *reader.Reader) (string, error) {
	items, err := r.ParseCharArray()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%q", items), nil
}

func opIntArray(r *reader.Reader) (string, error) {
	items, err := r.ParseIntArray()
	if err != nil {
		return "", err
	}
	return fmt.Sprint(items), nil
}

func formatCount(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}
