package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Pick     key.Binding
	PickStay key.Binding
	Escape   key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑↓←→", "move")),
		Down:     key.NewBinding(key.WithKeys("down")),
		Left:     key.NewBinding(key.WithKeys("left")),
		Right:    key.NewBinding(key.WithKeys("right")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Home:     key.NewBinding(key.WithKeys("home")),
		End:      key.NewBinding(key.WithKeys("end")),
		NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "category")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab")),
		Pick:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "type")),
		PickStay: key.NewBinding(key.WithKeys("alt+enter"), key.WithHelp("alt+enter", "type & stay")),
		Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear/close")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) footer() string {
	bindings := []key.Binding{k.Up, k.NextTab, k.Pick, k.PickStay, k.Escape}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		help := b.Help()
		if help.Key == "" {
			continue
		}
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}
