package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	newItem   key.Binding
	sync      key.Binding
	accept    key.Binding
	reject    key.Binding
	directory key.Binding
	deleteAcc key.Binding
	profile   key.Binding
	copy      key.Binding
	submit    key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	logout:    key.NewBinding(key.WithKeys("l")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	sync:      key.NewBinding(key.WithKeys("s")),
	accept:    key.NewBinding(key.WithKeys("a")),
	reject:    key.NewBinding(key.WithKeys("x")),
	directory: key.NewBinding(key.WithKeys("r")),
	deleteAcc: key.NewBinding(key.WithKeys("D")),
	profile:   key.NewBinding(key.WithKeys("p")),
	copy:      key.NewBinding(key.WithKeys("c")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
