package inspect

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/parselib/internal/grapheme"
)

const ellipsis = "…"

// renderContent draws the buffer as consumed text, the cursor cell, and the
// remaining text. At the end of the buffer the cursor is a styled blank.
func (m Model) renderContent() string {
	st := m.cfg.Style
	text := []rune(m.rd.Text())
	pos := m.rd.Pos()

	var sb strings.Builder
	sb.WriteString(renderLines(st.Consumed, string(text[:pos])))

	cell, after := " ", ""
	if pos < len(text) {
		if text[pos] == '\n' {
			after = "\n"
		} else {
			cell = string(text[pos])
		}
	}
	sb.WriteString(st.Cursor.Render(cell))
	sb.WriteString(after)

	if pos+1 < len(text) {
		sb.WriteString(renderLines(st.Rest, string(text[pos+1:])))
	}
	return sb.String()
}

// renderLines styles each line on its own so lipgloss does not pad the block
// to a common width.
func renderLines(style lipgloss.Style, s string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = style.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) statusText() string {
	line, col := m.rd.LineCol()
	s := fmt.Sprintf("%d/%d %d:%d", m.rd.Pos(), m.rd.Len(), line, col)
	if m.lastOp == "" {
		return s
	}
	s += " | " + m.lastOp
	if m.lastErr != nil {
		return s + ": " + m.lastErr.Error()
	}
	return s + " -> " + m.lastResult
}

func (m Model) renderStatus() string {
	s := m.truncate(m.statusText())
	if m.lastErr != nil {
		return m.cfg.Style.Error.Render(s)
	}
	return m.cfg.Style.Status.Render(s)
}

// renderHelp lists bindings until the next one would overflow the width, so
// entries are never cut in half.
func (m Model) renderHelp() string {
	const sep = " · "
	var sb strings.Builder
	used := 0
	for _, b := range m.keys.ShortHelp() {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		item := h.Key + " " + h.Desc
		w := runewidth.StringWidth(item)
		if used > 0 {
			w += runewidth.StringWidth(sep)
		}
		if m.width > 0 && used > 0 && used+w > m.width {
			break
		}
		if used > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(item)
		used += w
	}
	return m.cfg.Style.Help.Render(m.truncate(sb.String()))
}

// truncate fits s into the component width on grapheme boundaries; width 0
// means unbounded.
func (m Model) truncate(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if m.width <= 0 {
		return s
	}
	return grapheme.Truncate(s, m.width, ellipsis)
}
