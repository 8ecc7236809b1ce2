// Package tui is the interactive terminal form for the ticket panel.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/example/ticketdesk/internal/panel"
	"github.com/example/ticketdesk/internal/ports/primary"
)

// formSlot identifies one row of the form, in focus order.
type formSlot int

const (
	slotName formSlot = iota
	slotType
	slotDate
	slotStatus
	slotID
	slotCount
)

var slotLabels = [slotCount]string{"Ticket:", "Tipo:", "Data:", "Status:", "ID:"}

const (
	labelWidth      = 8
	modalMaxWidth   = 72
	formTitle       = "Controle de Tickets"
	unsetChoiceText = "(não alterar)"
)

// Model is the bubbletea model hosting a ticket panel.
type Model struct {
	ctx     context.Context
	panel   *panel.Panel
	dialogs *dialogQueue
	theme   Theme
	keys    KeyMap

	nameInput textinput.Model
	dateInput textinput.Model
	idInput   textinput.Model
	focus     formSlot

	results viewport.Model

	// retry is the action to rerun once the pending confirmation is accepted.
	retry func(context.Context)

	width  int
	height int
	ready  bool
}

// NewModel creates a Model over service and loads the initial listing.
func NewModel(ctx context.Context, service primary.TicketService) Model {
	theme := DefaultTheme
	queue := &dialogQueue{}
	ticketPanel := panel.New(service, queue, theme.TableHeader)

	model := Model{
		ctx:       ctx,
		panel:     ticketPanel,
		dialogs:   queue,
		theme:     theme,
		keys:      DefaultKeyMap,
		nameInput: newInput(ticketPanel.Form.Name, theme),
		dateInput: newInput(ticketPanel.Form.Date, theme),
		idInput:   newInput(ticketPanel.Form.ID, theme),
		results:   viewport.New(0, 0),
	}
	model.dateInput.CharLimit = len("dd/mm/aaaa")

	ticketPanel.Start(ctx)
	model.focusSlot(slotName)
	model.syncFromPanel()
	return model
}

// Run starts the terminal UI and blocks until the user quits.
func Run(ctx context.Context, service primary.TicketService) error {
	program := tea.NewProgram(NewModel(ctx, service), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func newInput(field *panel.Field, theme Theme) textinput.Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = field.Placeholder()
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.FaintText)
	input.TextStyle = lipgloss.NewStyle().Foreground(theme.NormalText)
	return input
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model. While a dialog is open every key goes to
// the dialog; otherwise keys run panel actions or edit the focused field.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.resize()

	case tea.KeyMsg:
		if key.Matches(message, model.keys.Quit) {
			return model, tea.Quit
		}
		if _, open := model.dialogs.current(); open {
			model.handleModalKeys(message)
			return model, nil
		}
		command := model.handleFormKeys(message)
		return model, command
	}
	return model, nil
}

func (model *Model) handleModalKeys(message tea.KeyMsg) {
	dialog, _ := model.dialogs.current()

	if dialog.kind != dialogConfirm {
		if key.Matches(message, model.keys.Dismiss) {
			model.dialogs.dismiss()
		}
		return
	}

	switch {
	case key.Matches(message, model.keys.Confirm):
		model.dialogs.dismiss()
		retry := model.retry
		model.retry = nil
		if retry != nil {
			model.dialogs.approved = true
			model.run(retry)
		}
	case key.Matches(message, model.keys.Decline):
		model.dialogs.dismiss()
		model.retry = nil
	}
}

func (model *Model) handleFormKeys(message tea.KeyMsg) tea.Cmd {
	if action := model.actionFor(message); action != nil {
		model.run(action)
		return nil
	}

	switch {
	case key.Matches(message, model.keys.NextField):
		return model.moveFocus(1)
	case key.Matches(message, model.keys.PreviousField):
		return model.moveFocus(-1)
	case key.Matches(message, model.keys.ScrollUp):
		model.results.LineUp(max(1, model.results.Height-1))
		return nil
	case key.Matches(message, model.keys.ScrollDown):
		model.results.LineDown(max(1, model.results.Height-1))
		return nil
	}

	if choice := model.choice(model.focus); choice != nil {
		switch {
		case key.Matches(message, model.keys.NextOption):
			choice.Next()
		case key.Matches(message, model.keys.PrevOption):
			choice.Prev()
		case key.Matches(message, model.keys.ClearOption):
			choice.Unset()
		}
		return nil
	}

	input := model.input(model.focus)
	field := model.field(model.focus)
	updated, command := input.Update(message)
	*input = updated

	if model.focus == slotDate {
		field.SetDateInput(input.Value())
		input.SetValue(field.Value())
		input.CursorEnd()
	} else {
		field.Set(input.Value())
	}
	return command
}

// actionFor maps a key to a panel action, or nil.
func (model *Model) actionFor(message tea.KeyMsg) func(context.Context) {
	p := model.panel
	switch {
	case key.Matches(message, model.keys.Add):
		return p.Add
	case key.Matches(message, model.keys.Update):
		return p.Update
	case key.Matches(message, model.keys.Delete):
		return p.Delete
	case key.Matches(message, model.keys.ListAll):
		return p.ListAll
	case key.Matches(message, model.keys.FindByCode):
		return p.FindByCode
	case key.Matches(message, model.keys.FilterByDate):
		return p.FilterByDate
	case key.Matches(message, model.keys.FilterByStatus):
		return p.FilterByStatus
	case key.Matches(message, model.keys.FilterByType):
		return p.FilterByType
	case key.Matches(message, model.keys.DeleteAll):
		return p.DeleteAll
	case key.Matches(message, model.keys.ClearFields):
		return func(context.Context) { p.ClearFields() }
	case key.Matches(message, model.keys.Help):
		return func(context.Context) { p.Help() }
	}
	return nil
}

// run executes a panel action and refreshes the form from the panel.
func (model *Model) run(action func(context.Context)) {
	action(model.ctx)
	if model.dialogs.confirmation != nil {
		model.retry = action
	}
	model.dialogs.approved = false
	model.syncFromPanel()
}

func (model *Model) moveFocus(delta int) tea.Cmd {
	model.blurSlot(model.focus)
	model.focus = formSlot((int(model.focus) + delta + int(slotCount)) % int(slotCount))
	return model.focusSlot(model.focus)
}

func (model *Model) focusSlot(slot formSlot) tea.Cmd {
	if field := model.field(slot); field != nil {
		field.Focus()
		return model.input(slot).Focus()
	}
	return nil
}

func (model *Model) blurSlot(slot formSlot) {
	if field := model.field(slot); field != nil {
		field.Blur()
		model.input(slot).Blur()
	}
}

func (model *Model) field(slot formSlot) *panel.Field {
	form := model.panel.Form
	switch slot {
	case slotName:
		return form.Name
	case slotDate:
		return form.Date
	case slotID:
		return form.ID
	}
	return nil
}

func (model *Model) input(slot formSlot) *textinput.Model {
	switch slot {
	case slotName:
		return &model.nameInput
	case slotDate:
		return &model.dateInput
	case slotID:
		return &model.idInput
	}
	return nil
}

func (model *Model) choice(slot formSlot) *panel.Choice {
	switch slot {
	case slotType:
		return model.panel.Form.Type
	case slotStatus:
		return model.panel.Form.Status
	}
	return nil
}

// syncFromPanel copies field values and the result pane into the widgets.
func (model *Model) syncFromPanel() {
	for _, slot := range []formSlot{slotName, slotDate, slotID} {
		input := model.input(slot)
		input.SetValue(model.field(slot).Value())
		input.CursorEnd()
	}
	model.results.SetContent(model.panel.Output())
	model.results.GotoTop()
}

func (model *Model) resize() {
	inputWidth := max(10, model.width-labelWidth-2)
	model.nameInput.Width = inputWidth
	model.dateInput.Width = inputWidth
	model.idInput.Width = inputWidth

	model.results.Width = model.width
	model.results.Height = max(1, model.height-lipgloss.Height(model.renderForm()))
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Carregando..."
	}
	if dialog, open := model.dialogs.current(); open {
		return model.renderModal(dialog)
	}
	return model.renderForm() + "\n" + model.results.View()
}

// renderForm draws everything above the result pane.
func (model Model) renderForm() string {
	theme := model.theme
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground).Render(formTitle),
		"",
	}
	for slot := formSlot(0); slot < slotCount; slot++ {
		lines = append(lines, model.renderSlot(slot))
	}
	lines = append(lines, "", model.renderHelp(), "", model.renderResultHeader())
	return strings.Join(lines, "\n")
}

func (model Model) renderSlot(slot formSlot) string {
	focused := model.focus == slot
	label := model.theme.labelStyle(focused).Render(slotLabels[slot])

	var content string
	switch slot {
	case slotType, slotStatus:
		value := model.panel.Form.Type.Value()
		if slot == slotStatus {
			value = model.panel.Form.Status.Value()
		}
		if value == "" {
			value = unsetChoiceText
		}
		if focused {
			content = "‹ " + value + " ›"
		} else {
			content = "  " + value
		}
	case slotName:
		content = model.nameInput.View()
	case slotDate:
		content = model.dateInput.View()
	case slotID:
		content = model.idInput.View()
	}
	return label + " " + content
}

func (model Model) renderHelp() string {
	var parts []string
	for _, binding := range model.keys.actionBindings() {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	style := lipgloss.NewStyle().Foreground(model.theme.HelpText)
	if model.width > 0 {
		style = style.Width(model.width)
	}
	return style.Render(strings.Join(parts, " • "))
}

func (model Model) renderResultHeader() string {
	heading := lipgloss.NewStyle().Bold(true).Render(model.panel.Heading())
	total := fmt.Sprintf("Total: %d", model.panel.Count())

	gap := model.width - lipgloss.Width(heading) - lipgloss.Width(total)
	if gap < 1 {
		gap = 1
	}
	separator := lipgloss.NewStyle().Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", max(0, model.width)))
	return heading + strings.Repeat(" ", gap) + total + "\n" + separator
}

func (model Model) renderModal(dialog modalDialog) string {
	theme := model.theme
	width := min(modalMaxWidth, max(20, model.width-4))

	footer := "enter fechar"
	if dialog.kind == dialogConfirm {
		footer = "y sim • n não"
	}

	body := strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Render(dialog.title),
		"",
		dialog.message,
		"",
		lipgloss.NewStyle().Foreground(theme.HelpText).Render(footer),
	}, "\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.modalBorder(dialog.kind)).
		Padding(1, 2).
		Width(width).
		Render(body)

	return lipgloss.Place(model.width, model.height, lipgloss.Center, lipgloss.Center, box)
}
