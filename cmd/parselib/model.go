package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/parselib/inspect"
)

type model struct {
	inspector inspect.Model
}

func (m model) Init() tea.Cmd { return m.inspector.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inspector, cmd = m.inspector.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.inspector.View() }
