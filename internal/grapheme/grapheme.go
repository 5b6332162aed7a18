package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Width returns the terminal cell width of text.
func Width(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.StringWidth(text)
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Truncate returns the longest cluster-aligned prefix of text that fits in
// maxWidth cells. If text had to be cut, tail is appended and its width is
// reserved out of maxWidth; a tail wider than maxWidth is dropped.
func Truncate(text string, maxWidth int, tail string) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(text) <= maxWidth {
		return text
	}

	limit := maxWidth - Width(tail)
	if limit < 0 {
		limit = maxWidth
		tail = ""
	}

	g := uniseg.NewGraphemes(text)
	used := 0
	var sb strings.Builder
	for g.Next() {
		w := g.Width()
		if used+w > limit {
			break
		}
		sb.WriteString(g.Str())
		used += w
	}
	sb.WriteString(tail)
	return sb.String()
}
