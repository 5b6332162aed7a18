package inspect

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/parselib/internal/grapheme"
	"github.com/iw2rmb/parselib/reader"
)

// ReloadMsg replaces the inspected text. If Err is set the text is kept and
// the error is shown instead.
type ReloadMsg struct {
	Text string
	Err  error
}

// Model is a Bubble Tea component that drives a reader.Reader from key input.
type Model struct {
	cfg  Config
	keys KeyMap
	rd   *reader.Reader

	viewport viewport.Model
	width    int

	lastOp     string
	lastResult string
	lastErr    error
}

func New(cfg Config) Model {
	m := Model{
		cfg:      cfg,
		keys:     normalizeKeyMap(cfg.KeyMap),
		rd:       reader.New(cfg.Text),
		viewport: viewport.New(0, 0),
	}
	m.rebuildContent()
	return m
}

// Reader returns the inspected reader. Moving its cursor from outside is
// picked up on the next Update.
func (m Model) Reader() *reader.Reader { return m.rd }

func (m Model) KeyMap() KeyMap { return m.keys }

// LastOp returns the name of the most recent operation, or "" if none ran.
func (m Model) LastOp() string { return m.lastOp }

func (m Model) LastResult() string { return m.lastResult }

func (m Model) LastErr() error { return m.lastErr }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	// Two rows are reserved for the status and help lines.
	height -= 2
	if height < 0 {
		height = 0
	}
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

// Reload replaces the text with a fresh reader at position 0.
func (m Model) Reload(text string) Model {
	m.rd = reader.New(text)
	m.record("reload", formatCount(m.rd.Len(), "rune")+", "+formatCount(grapheme.Count(text), "cluster"), nil)
	m.viewport.SetYOffset(0)
	m.rebuildContent()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case ReloadMsg:
		if msg.Err != nil {
			m.record("reload", "", msg.Err)
			m.rebuildContent()
			return m, nil
		}
		return m.Reload(msg.Text), nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	default:
		m.rebuildContent()
		return m, nil
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.keys

	if key.Matches(msg, km.Quit) {
		return m, tea.Quit
	}

	for _, b := range bindOps(km) {
		if key.Matches(msg, b.binding) {
			res, err := b.op.run(m.rd)
			m.record(b.op.name, res, err)
			m.rebuildContent()
			m.followCursor()
			return m, nil
		}
	}
	return m, nil
}

func (m *Model) record(op, result string, err error) {
	m.lastOp = op
	m.lastResult = result
	m.lastErr = err
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCursor scrolls the viewport so the cursor line is visible.
func (m *Model) followCursor() {
	if m.viewport.Height <= 0 {
		return
	}
	line, _ := m.rd.LineCol()
	row := line - 1
	if row < m.viewport.YOffset {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(row - m.viewport.Height + 1)
	}
}

func (m Model) View() string {
	return m.viewport.View() + "\n" + m.renderStatus() + "\n" + m.renderHelp()
}
