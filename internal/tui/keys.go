package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the ticket form.
type KeyMap struct {
	// Panel actions.
	Add            key.Binding
	Update         key.Binding
	Delete         key.Binding
	ListAll        key.Binding
	FindByCode     key.Binding
	FilterByDate   key.Binding
	FilterByStatus key.Binding
	FilterByType   key.Binding
	ClearFields    key.Binding
	DeleteAll      key.Binding
	Help           key.Binding

	// Form navigation.
	NextField     key.Binding
	PreviousField key.Binding
	NextOption    key.Binding // Choice fields only.
	PrevOption    key.Binding // Choice fields only.
	ClearOption   key.Binding // Leaves the choice out of an update.

	// Result pane scrolling.
	ScrollUp   key.Binding
	ScrollDown key.Binding

	// Modal answers.
	Confirm key.Binding
	Decline key.Binding
	Dismiss key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Actions use control
// chords so plain keys always reach the text inputs.
var DefaultKeyMap = KeyMap{
	Add: key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("^a", "adicionar"),
	),
	Update: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("^u", "atualizar"),
	),
	Delete: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("^d", "deletar"),
	),
	ListAll: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("^l", "mostrar todos"),
	),
	FindByCode: key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("^f", "buscar ticket"),
	),
	FilterByDate: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("^t", "filtrar data"),
	),
	FilterByStatus: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("^s", "filtrar status"),
	),
	FilterByType: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("^y", "filtrar tipo"),
	),
	ClearFields: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("^k", "limpar campos"),
	),
	DeleteAll: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("^x", "limpar registros"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("F1", "ajuda"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "próximo campo"),
	),
	PreviousField: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "campo anterior"),
	),
	NextOption: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "próxima opção"),
	),
	PrevOption: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "opção anterior"),
	),
	ClearOption: key.NewBinding(
		key.WithKeys("backspace", "delete"),
		key.WithHelp("⌫", "não alterar"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "rolar"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "rolar"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "Y", "s", "S"),
		key.WithHelp("y", "sim"),
	),
	Decline: key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("n", "não"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("enter", "esc", " "),
		key.WithHelp("enter", "fechar"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("^c", "sair"),
	),
}

// actionBindings lists the bindings shown in the help line, in order.
func (keys KeyMap) actionBindings() []key.Binding {
	return []key.Binding{
		keys.Add, keys.Update, keys.Delete, keys.ListAll, keys.FindByCode,
		keys.FilterByDate, keys.FilterByStatus, keys.FilterByType,
		keys.ClearFields, keys.DeleteAll, keys.Help, keys.Quit,
	}
}
