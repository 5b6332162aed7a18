package inspect

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap binds keys to reader operations.
type KeyMap struct {
	Next, Back key.Binding
	Start, End key.Binding

	Whitespace            key.Binding
	Alpha, Numeric, Alnum key.Binding
	Quoted, MaybeQuoted   key.Binding
	CharArray, IntArray   key.Binding

	Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Back:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "back")),
		Start: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "start")),
		End:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "end")),

		Whitespace:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "skip space")),
		Alpha:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "alpha")),
		Numeric:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "numeric")),
		Alnum:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "alnum")),
		Quoted:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quoted")),
		MaybeQuoted: key.NewBinding(key.WithKeys("Q"), key.WithHelp("Q", "maybe quoted")),
		CharArray:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "char array")),
		IntArray:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "int array")),

		Quit: key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp lists the bindings shown in the help line, in display order.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.Next, km.Back, km.Start, km.End,
		km.Whitespace, km.Alpha, km.Numeric, km.Alnum,
		km.Quoted, km.MaybeQuoted, km.CharArray, km.IntArray,
		km.Quit,
	}
}

func normalizeKeyMap(km KeyMap) KeyMap {
	if reflect.DeepEqual(km, KeyMap{}) {
		return DefaultKeyMap()
	}
	return km
}
