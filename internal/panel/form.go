package panel

import (
	"slices"
	"strings"

	"github.com/example/ticketdesk/internal/core/ticket"
)

// Placeholders shown by the empty text fields.
const (
	PlaceholderName = "Código do Ticket (INC123456)"
	PlaceholderDate = "dd/mm/aaaa"
	PlaceholderID   = "Para Atualizar/Deletar"
)

// FieldState is the display state of a text field.
type FieldState int

const (
	// FieldUnset is an empty field being edited; no placeholder is shown.
	FieldUnset FieldState = iota
	// FieldPlaceholder is an empty field showing its muted placeholder.
	FieldPlaceholder
	// FieldValue holds text entered by the user or set by the panel.
	FieldValue
)

func (s FieldState) String() string {
	switch s {
	case FieldUnset:
		return "unset"
	case FieldPlaceholder:
		return "placeholder"
	case FieldValue:
		return "value"
	}
	return "unknown"
}

// Field is a text input with placeholder semantics. The placeholder is
// never part of the value: only FieldValue carries user text.
type Field struct {
	placeholder string
	state       FieldState
	value       string
}

// NewField returns an empty field showing placeholder.
func NewField(placeholder string) *Field {
	f := &Field{placeholder: placeholder}
	f.Clear()
	return f
}

// State returns the field's display state.
func (f *Field) State() FieldState { return f.state }

// Placeholder returns the hint text shown while the field is empty.
func (f *Field) Placeholder() string { return f.placeholder }

// Focus hides the placeholder so the user can type.
func (f *Field) Focus() {
	if f.state == FieldPlaceholder {
		f.state = FieldUnset
	}
}

// Blur restores the placeholder when the field was left empty.
func (f *Field) Blur() {
	if f.state == FieldUnset || (f.state == FieldValue && f.value == "") {
		f.Clear()
	}
}

// Set replaces the field's text. Empty text leaves the field in the
// editing state without a placeholder.
func (f *Field) Set(value string) {
	if value == "" {
		f.value = ""
		f.state = FieldUnset
		return
	}
	f.value = value
	f.state = FieldValue
}

// SetDateInput applies live dd/mm/yyyy formatting to raw keystrokes.
// When nothing usable remains the placeholder comes back.
func (f *Field) SetDateInput(raw string) {
	formatted := ticket.FormatDateInput(raw)
	if formatted == "" {
		f.Clear()
		return
	}
	f.Set(formatted)
}

// Clear empties the field and shows the placeholder again.
func (f *Field) Clear() {
	f.value = ""
	if f.placeholder != "" {
		f.state = FieldPlaceholder
	} else {
		f.state = FieldUnset
	}
}

// Value returns the raw text held by the field, untrimmed.
func (f *Field) Value() string {
	if f.state != FieldValue {
		return ""
	}
	return f.value
}

// Effective returns the trimmed user value, or "" when nothing was entered.
func (f *Field) Effective() string {
	return strings.TrimSpace(f.Value())
}

// Text returns what the field displays.
func (f *Field) Text() string {
	switch f.state {
	case FieldPlaceholder:
		return f.placeholder
	case FieldValue:
		return f.value
	}
	return ""
}

// Muted reports whether the field should be drawn in the placeholder style.
func (f *Field) Muted() bool {
	return f.state == FieldPlaceholder
}

// Choice is a selection over a fixed option list. It may also hold a
// value read back from the store that is not in the list, or no value.
type Choice struct {
	options []string
	value   string
}

// NewChoice returns a choice holding the first option.
func NewChoice(options []string) *Choice {
	c := &Choice{options: options}
	c.Clear()
	return c
}

// Options returns the selectable values in display order.
func (c *Choice) Options() []string { return c.options }

// Value returns the selected value, or "" when unset.
func (c *Choice) Value() string { return c.value }

// Set selects value.
func (c *Choice) Set(value string) { c.value = strings.TrimSpace(value) }

// Unset removes the selection so the choice contributes nothing to an update.
func (c *Choice) Unset() { c.value = "" }

// Clear selects the first option.
func (c *Choice) Clear() {
	c.value = ""
	if len(c.options) > 0 {
		c.value = c.options[0]
	}
}

// Next selects the following option, wrapping around.
func (c *Choice) Next() { c.step(1) }

// Prev selects the preceding option, wrapping around.
func (c *Choice) Prev() { c.step(-1) }

func (c *Choice) step(delta int) {
	n := len(c.options)
	if n == 0 {
		return
	}
	i := slices.Index(c.options, c.value)
	if i < 0 {
		if delta > 0 {
			c.value = c.options[0]
		} else {
			c.value = c.options[n-1]
		}
		return
	}
	c.value = c.options[(i+delta+n)%n]
}

// Form is the set of input fields shown by the panel.
type Form struct {
	Name   *Field
	Type   *Choice
	Date   *Field
	Status *Choice
	ID     *Field
}

// NewForm returns a form in its cleared state.
func NewForm() *Form {
	return &Form{
		Name:   NewField(PlaceholderName),
		Type:   NewChoice(ticket.Types),
		Date:   NewField(PlaceholderDate),
		Status: NewChoice(ticket.Statuses),
		ID:     NewField(PlaceholderID),
	}
}

// Reset restores every field to its initial state.
func (f *Form) Reset() {
	f.Name.Clear()
	f.Date.Clear()
	f.ID.Clear()
	f.Type.Clear()
	f.Status.Clear()
}
