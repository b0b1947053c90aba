package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists every binding of the editor.
// Key names are the strings produced by menu.Key; letters are lower case so
// matching is case-insensitive.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Yes    key.Binding
	No     key.Binding
	Toggle key.Binding
	Save   key.Binding
	Quit   key.Binding
	Help   key.Binding
	Disks  key.Binding

	// Dialogs
	Cancel    key.Binding
	Backspace key.Binding
	Escape    key.Binding

	// help-only entries
	navigate key.Binding
	yesNo    key.Binding
}

// Keys is the editor key map
var Keys = KeyMap{
	Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "Move up")),
	Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "Move down")),
	Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Edit")),
	Yes:    key.NewBinding(key.WithKeys("y"), key.WithHelp("Y", "Enable boolean option")),
	No:     key.NewBinding(key.WithKeys("n"), key.WithHelp("N", "Disable boolean option")),
	Toggle: key.NewBinding(key.WithKeys("space"), key.WithHelp("Space", "Toggle boolean option")),
	Save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("S", "Save")),
	Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("Q", "Quit")),
	Help:   key.NewBinding(key.WithKeys("h"), key.WithHelp("H", "Help")),
	Disks:  key.NewBinding(key.WithKeys("d"), key.WithHelp("D", "Disks")),

	Cancel:    key.NewBinding(key.WithKeys("q"), key.WithHelp("Q", "Cancel")),
	Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "Delete")),
	Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Cancel")),

	navigate: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "Navigate")),
	yesNo:    key.NewBinding(key.WithKeys("y", "n"), key.WithHelp("Y/N", "Toggle")),
}

// ShortHelp returns the footer bindings
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.navigate, k.Enter, k.yesNo, k.Save, k.Quit, k.Help, k.Disks}
}

// FullHelp returns the help screen bindings, one group per section
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.navigate, k.Enter, k.yesNo, k.Toggle},
		{k.Save, k.Quit, k.Help, k.Disks},
	}
}

// DialogHelp returns the bindings of the list dialogs
func (k KeyMap) DialogHelp() []key.Binding {
	return []key.Binding{
		k.navigate,
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Select")),
		k.Cancel,
	}
}

// EditHelp returns the bindings of the text editor
func (k KeyMap) EditHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Confirm")),
		k.Backspace,
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc Esc", "Cancel")),
	}
}
