// Package reader implements a rune cursor over an immutable text buffer.
//
// Positions are 0-based rune indexes in [0, Len()]. Len() itself is the
// one-past-end position where Peek and Next return EOF.
//
// Peek and Next never fail, so they can sit in loop conditions. Composite
// readers either succeed or return an *Error; they do not roll the cursor back
// on failure. A Reader is not safe for concurrent use; Clone it instead.
package reader
