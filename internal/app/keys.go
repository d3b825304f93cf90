package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/zjrosen/valentine/internal/sequence"
)

// KeyMap holds the greeting's key bindings.
type KeyMap struct {
	Advance key.Binding
	Left    key.Binding
	Right   key.Binding
	Pluck   key.Binding
	Skip    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings. Petal keys start disabled.
func DefaultKeyMap() KeyMap {
	k := KeyMap{
		Advance: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "continue"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/→", "choose petal"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next petal"),
		),
		Pluck: key.NewBinding(
			key.WithKeys("p", "x"),
			key.WithHelp("p", "pluck"),
		),
		Skip: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "skip wait"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
	return k.forPhase(sequence.PhaseOpening)
}

// forPhase enables the bindings that mean something in p.
func (k KeyMap) forPhase(p sequence.Phase) KeyMap {
	game := p == sequence.PhaseGame
	k.Left.SetEnabled(game)
	k.Right.SetEnabled(game)
	k.Pluck.SetEnabled(game)
	k.Advance.SetEnabled(!game && p != sequence.PhaseAsk)
	return k
}

// ShortHelp implements help.KeyMap. Right shares Left's help entry.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Advance, k.Left, k.Pluck, k.Skip, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
