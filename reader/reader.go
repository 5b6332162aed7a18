package reader

import (
	"io"
	"unicode/utf8"
)

// EOF is returned by Peek and Next when no rune remains.
const EOF rune = 0

// Reader is a cursor over an immutable rune buffer.
type Reader struct {
	text []rune
	pos  int
}

// New returns a Reader over text positioned at 0. Invalid UTF-8 bytes become
// utf8.RuneError.
func New(text string) *Reader {
	return &Reader{text: []rune(text)}
}

// FromRunes returns a Reader over a copy of text.
func FromRunes(text []rune) *Reader {
	buf := make([]rune, len(text))
	copy(buf, text)
	return &Reader{text: buf}
}

// FromReader reads all of src into memory and returns a Reader over it.
func FromReader(src io.Reader) (*Reader, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return New(string(data)), nil
}

// Clone returns an independent Reader at the same position.
func (r *Reader) Clone() *Reader {
	// text is never written after construction, so it can be shared.
	return &Reader{text: r.text, pos: r.pos}
}

func (r *Reader) Text() string { return string(r.text) }

func (r *Reader) Pos() int { return r.pos }

// Len returns the buffer length in runes.
func (r *Reader) Len() int { return len(r.text) }

func (r *Reader) IsAtEnd() bool { return r.pos == len(r.text) }

func (r *Reader) IsOneBeforeEnd() bool { return r.pos == len(r.text)-1 }

func (r *Reader) IsAtStart() bool { return r.pos == 0 }

// Peek returns the rune at the cursor without consuming it, or EOF at the end.
func (r *Reader) Peek() rune {
	if r.IsAtEnd() {
		return EOF
	}
	return r.text[r.pos]
}

// PeekN returns the rune n places past the cursor, or EOF if that is outside
// the buffer. PeekN(0) is Peek.
func (r *Reader) PeekN(n int) rune {
	i := r.pos + n
	if i < 0 || i >= len(r.text) {
		return EOF
	}
	return r.text[i]
}

// Next consumes and returns the rune at the cursor. At the end it returns EOF
// and does not move.
func (r *Reader) Next() rune {
	if r.IsAtEnd() {
		return EOF
	}
	c := r.text[r.pos]
	r.pos++
	return c
}

// Seek moves the cursor to pos. pos == Len() is valid. On error the cursor
// does not move.
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > len(r.text) {
		return r.fail(OutOfRange, nil, "seek to %d outside [0, %d]", pos, len(r.text))
	}
	r.pos = pos
	return nil
}

// PeekRest returns the unconsumed text.
func (r *Reader) PeekRest() string {
	return string(r.text[r.pos:])
}

// ReadRune implements io.RuneReader. size is the rune's UTF-8 length, or 1
// for a rune that has no encoding.
func (r *Reader) ReadRune() (ch rune, size int, err error) {
	if r.IsAtEnd() {
		return 0, 0, io.EOF
	}
	ch = r.Next()
	size = utf8.RuneLen(ch)
	if size < 0 {
		size = 1
	}
	return ch, size, nil
}

// UnreadRune implements io.RuneScanner by stepping the cursor back one rune.
// Unlike bufio it may be called repeatedly, down to position 0.
func (r *Reader) UnreadRune() error {
	if r.IsAtStart() {
		return r.fail(OutOfRange, nil, "unread at start")
	}
	r.pos--
	return nil
}
