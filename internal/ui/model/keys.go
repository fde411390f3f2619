package model

import "github.com/charmbracelet/bubbles/key"

// keyMap 快捷键
type keyMap struct {
	Twist key.Binding
	Stick key.Binding
	Next  key.Binding
	Rules key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Twist: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "twist")),
		Stick: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stick")),
		Next:  key.NewBinding(key.WithKeys("n", "enter"), key.WithHelp("n/enter", "next round")),
		Rules: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "rules")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Twist, k.Stick, k.Next, k.Rules, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Twist, k.Stick}, {k.Next, k.Rules, k.Quit}}
}

// forPhase enables only the bindings that do something on the current screen.
func (k *keyMap) forPhase(p GamePhase, playerTurn bool) {
	k.Twist.SetEnabled(p == PhasePlaying && playerTurn)
	k.Stick.SetEnabled(p == PhasePlaying && playerTurn)
	k.Next.SetEnabled(p == PhaseRoundOver || p == PhaseTitle)
	k.Rules.SetEnabled(p == PhasePlaying || p == PhaseRoundOver)
	k.Quit.SetEnabled(true)
}
