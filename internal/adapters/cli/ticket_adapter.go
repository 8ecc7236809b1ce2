package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/ticketdesk/internal/panel"
	"github.com/example/ticketdesk/internal/ports/primary"
)

// ErrActionFailed is returned when the panel reported an error to the user.
// The message has already been printed.
var ErrActionFailed = errors.New("action failed")

// TicketInput holds the values given on the command line. Nil Type or
// Status means the flag was not given.
type TicketInput struct {
	Name   string
	Date   string
	Type   *string
	Status *string
}

// TicketAdapter is a thin adapter that runs panel actions from CLI
// arguments and prints the result pane.
type TicketAdapter struct {
	panel  *panel.Panel
	dialog *TerminalDialog
	out    io.Writer
}

// NewTicketAdapter creates a new TicketAdapter over the given service.
func NewTicketAdapter(service primary.TicketService, dialog *TerminalDialog, out io.Writer) *TicketAdapter {
	bold := color.New(color.Bold)
	style := func(s string) string { return bold.Sprint(s) }
	return &TicketAdapter{
		panel:  panel.New(service, dialog, style),
		dialog: dialog,
		out:    out,
	}
}

// Add creates a ticket. Type and Status default to the first option.
func (a *TicketAdapter) Add(ctx context.Context, in TicketInput) error {
	a.fill(in, false)
	return a.run(func() { a.panel.Add(ctx) })
}

// Update changes the given fields of ticket idText.
func (a *TicketAdapter) Update(ctx context.Context, idText string, in TicketInput) error {
	a.fill(in, true)
	a.panel.Form.ID.Set(idText)
	return a.run(func() { a.panel.Update(ctx) })
}

// Delete removes ticket idText after confirmation.
func (a *TicketAdapter) Delete(ctx context.Context, idText string) error {
	a.panel.Form.Reset()
	a.panel.Form.ID.Set(idText)
	return a.run(func() { a.panel.Delete(ctx) })
}

// DeleteAll removes every ticket after confirmation.
func (a *TicketAdapter) DeleteAll(ctx context.Context) error {
	return a.run(func() { a.panel.DeleteAll(ctx) })
}

// List prints every ticket, most recent date first.
func (a *TicketAdapter) List(ctx context.Context) error {
	return a.run(func() { a.panel.ListAll(ctx) })
}

// Find prints the tickets whose code contains code.
func (a *TicketAdapter) Find(ctx context.Context, code string) error {
	a.panel.Form.Reset()
	a.panel.Form.Name.Set(code)
	return a.run(func() { a.panel.FindByCode(ctx) })
}

// Filter prints the tickets whose field (date, status or type) equals value.
func (a *TicketAdapter) Filter(ctx context.Context, field, value string) error {
	form := a.panel.Form
	form.Reset()

	switch field {
	case "date":
		form.Date.Set(value)
		return a.run(func() { a.panel.FilterByDate(ctx) })
	case "status":
		form.Status.Set(value)
		return a.run(func() { a.panel.FilterByStatus(ctx) })
	case "type":
		form.Type.Set(value)
		return a.run(func() { a.panel.FilterByType(ctx) })
	}
	return fmt.Errorf("unknown filter %q: use date, status or type", field)
}

// Count prints the number of stored tickets.
func (a *TicketAdapter) Count(ctx context.Context) error {
	before := a.dialog.Failures()
	a.panel.RefreshCount(ctx)
	if a.dialog.Failures() > before {
		return ErrActionFailed
	}
	fmt.Fprintf(a.out, "Total: %d\n", a.panel.Count())
	return nil
}

// Guide prints the usage guide.
func (a *TicketAdapter) Guide() error {
	return a.run(a.panel.Help)
}

func (a *TicketAdapter) fill(in TicketInput, forUpdate bool) {
	form := a.panel.Form
	form.Reset()
	if in.Name != "" {
		form.Name.Set(in.Name)
	}
	if in.Date != "" {
		form.Date.Set(in.Date)
	}
	setChoice(form.Type, in.Type, forUpdate)
	setChoice(form.Status, in.Status, forUpdate)
}

func setChoice(choice *panel.Choice, value *string, forUpdate bool) {
	switch {
	case value != nil:
		choice.Set(*value)
	case forUpdate:
		choice.Unset()
	}
}

// run executes action, prints the result pane and reports whether the
// panel showed an error.
func (a *TicketAdapter) run(action func()) error {
	before := a.dialog.Failures()
	action()

	if out := a.panel.TakeOutput(); out != "" {
		fmt.Fprint(a.out, out)
	}
	if a.dialog.Failures() > before {
		return ErrActionFailed
	}
	return nil
}
