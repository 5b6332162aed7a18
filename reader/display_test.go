package reader

import "testing"

func TestReader_String(t *testing.T) {
	r := New("ab\"c")
	if got, want := r.String(), `at 0, char 'a', rest "ab\"c"`; got != want {
		t.Fatalf("String: got %q, want %q", got, want)
	}

	_ = r.Seek(r.Len())
	if got, want := r.String(), `at 4, char EOF, rest ""`; got != want {
		t.Fatalf("String at end: got %q, want %q", got, want)
	}
}

func TestReader_LineCol(t *testing.T) {
	r := New("ab\ncd\n\nx")
	cases := []struct {
		pos, line, col int
	}{
		{pos: 0, line: 1, col: 1},
		{pos: 2, line: 1, col: 3},
		{pos: 3, line: 2, col: 1},
		{pos: 5, line: 2, col: 3},
		{pos: 6, line: 3, col: 1},
		{pos: 7, line: 4, col: 1},
		{pos: 8, line: 4, col: 2},
	}
	for _, tc := range cases {
		if err := r.Seek(tc.pos); err != nil {
			t.Fatalf("Seek(%d): %v", tc.pos, err)
		}
		line, col := r.LineCol()
		if line != tc.line || col != tc.col {
			t.Fatalf("pos %d: got %d:%d, want %d:%d", tc.pos, line, col, tc.line, tc.col)
		}
	}
}

func TestReader_Excerpt(t *testing.T) {
	cases := []struct {
		text string
		pos  int
		want string
	}{
		{text: "abc", pos: 0, want: "abc\n^"},
		{text: "abc", pos: 3, want: "abc\n   ^"},
		{text: "one\ntwo three\nfour", pos: 8, want: "two three\n    ^"},
		{text: "x\r\nyz", pos: 4, want: "yz\n ^"},
		{text: "\tk = 1", pos: 3, want: "\tk = 1\n\t  ^"},
		{text: "日本(1", pos: 2, want: "日本(1\n    ^"},
		{text: "", pos: 0, want: "\n^"},
	}
	for _, tc := range cases {
		r := New(tc.text)
		if err := r.Seek(tc.pos); err != nil {
			t.Fatalf("Seek(%d): %v", tc.pos, err)
		}
		if got := r.Excerpt(); got != tc.want {
			t.Fatalf("Excerpt(%q @ %d): got %q, want %q", tc.text, tc.pos, got, tc.want)
		}
	}
}
