package tui

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/ticketdesk/internal/adapters/sqlite"
	"github.com/example/ticketdesk/internal/app"
	"github.com/example/ticketdesk/internal/db"
	"github.com/example/ticketdesk/internal/panel"
)

// newTestModel creates a Model over an empty in-memory store.
func newTestModel(t *testing.T) Model {
	t.Helper()

	database, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	repo := sqlite.NewTicketRepository(database)
	t.Cleanup(func() { repo.Close() })

	service := app.NewTicketService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err := service.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return NewModel(context.Background(), service)
}

// testModel creates a Model sized like a typical terminal.
func testModel(t *testing.T) Model {
	t.Helper()
	updated, _ := newTestModel(t).Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func send(t *testing.T, model Model, messages ...tea.Msg) Model {
	t.Helper()
	for _, message := range messages {
		updated, _ := model.Update(message)
		model = updated.(Model)
	}
	return model
}

func typeText(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var (
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keyBack     = tea.KeyMsg{Type: tea.KeyBackspace}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyAdd      = tea.KeyMsg{Type: tea.KeyCtrlA}
	keyUpdate   = tea.KeyMsg{Type: tea.KeyCtrlU}
	keyDelete   = tea.KeyMsg{Type: tea.KeyCtrlD}
	keyFind     = tea.KeyMsg{Type: tea.KeyCtrlF}
	keyClear    = tea.KeyMsg{Type: tea.KeyCtrlK}
	keyHelp     = tea.KeyMsg{Type: tea.KeyF1}
)

func TestModelView(t *testing.T) {
	model := newTestModel(t)
	if view := model.View(); view != "Carregando..." {
		t.Errorf("expected loading text before WindowSizeMsg, got %q", view)
	}
}

func TestNewModel_ListsAtStartup(t *testing.T) {
	model := testModel(t)

	view := model.View()
	for _, want := range []string{"Controle de Tickets", "Ticket:", "Status:", "Total: 0", "Todos os Tickets", "Nenhum registro encontrado."} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
	if model.focus != slotName {
		t.Errorf("initial focus should be the Ticket field, got %d", model.focus)
	}
}

func TestModelAddTicket(t *testing.T) {
	model := testModel(t)

	model = send(t, model,
		typeText("INC1"),
		keyTab, keyRight, // Tipo: Acessos -> Acompanhamento
		keyTab, typeText("10052024"),
		keyAdd,
	)

	if _, open := model.dialogs.current(); open {
		t.Fatalf("unexpected dialog after add: %+v", model.dialogs.messages)
	}
	if model.panel.Count() != 1 {
		t.Fatalf("expected 1 ticket, got %d", model.panel.Count())
	}
	view := model.View()
	if !strings.Contains(view, "Acompanhamento") || !strings.Contains(view, "10/05/2024") {
		t.Errorf("view should list the new ticket:\n%s", view)
	}
	if model.idInput.Value() != "1" {
		t.Errorf("ID input should show the new id, got %q", model.idInput.Value())
	}
}

func TestModelDateFormatting(t *testing.T) {
	model := testModel(t)

	model = send(t, model, keyTab, keyTab, typeText("1005"))
	if model.dateInput.Value() != "10/05" {
		t.Errorf("date input = %q, want 10/05", model.dateInput.Value())
	}

	model = send(t, model, typeText("2024xx99"))
	if model.dateInput.Value() != "10/05/2024" {
		t.Errorf("date input = %q, want 10/05/2024", model.dateInput.Value())
	}
}

func TestModelFocusCycles(t *testing.T) {
	model := testModel(t)

	model = send(t, model, keyShiftTab)
	if model.focus != slotID {
		t.Errorf("shift+tab from the first field should wrap to ID, got %d", model.focus)
	}
	model = send(t, model, keyTab)
	if model.focus != slotName {
		t.Errorf("tab from ID should wrap to Ticket, got %d", model.focus)
	}
	if model.panel.Form.ID.State() != panel.FieldPlaceholder {
		t.Errorf("leaving an empty field should restore its placeholder, got %s", model.panel.Form.ID.State())
	}
}

func TestModelValidationDialog(t *testing.T) {
	model := testModel(t)

	model = send(t, model, keyAdd)
	dialog, open := model.dialogs.current()
	if !open || dialog.kind != dialogError {
		t.Fatalf("expected an error dialog, got %+v (open=%v)", dialog, open)
	}
	if !strings.Contains(model.View(), "O campo 'Ticket' não pode estar vazio.") {
		t.Error("modal should show the validation message")
	}

	// Other keys are swallowed while the dialog is open.
	model = send(t, model, typeText("x"))
	if model.panel.Form.Name.Value() != "" {
		t.Errorf("typing under a modal must not edit the form, got %q", model.panel.Form.Name.Value())
	}

	model = send(t, model, keyEnter)
	if _, open := model.dialogs.current(); open {
		t.Error("enter should dismiss the dialog")
	}
}

func TestModelUnsetChoices(t *testing.T) {
	model := testModel(t)

	model = send(t, model,
		typeText("INC1"),
		keyTab, keyRight, // Tipo: Acessos -> Acompanhamento
		keyAdd,
	)
	if model.panel.Count() != 1 {
		t.Fatalf("expected 1 ticket, got %d", model.panel.Count())
	}

	// Focus stays on Tipo; clear the form and leave both choices out.
	model = send(t, model, keyClear, keyBack)
	if model.panel.Form.Type.Value() != "" {
		t.Fatalf("backspace should unset Tipo, got %q", model.panel.Form.Type.Value())
	}
	if !strings.Contains(model.View(), "(não alterar)") {
		t.Error("an unset choice should render as not changing")
	}
	model = send(t, model, keyTab, keyTab, keyBack, keyTab, typeText("1"), keyUpdate)

	dialog, open := model.dialogs.current()
	if !open || dialog.kind != dialogInfo || dialog.title != "Nenhuma Alteração" {
		t.Fatalf("expected the no-changes notice, got %+v (open=%v)", dialog, open)
	}

	// Adding without a type is refused.
	model = send(t, model, keyEnter, keyShiftTab, keyShiftTab, keyShiftTab, keyShiftTab, typeText("INC2"), keyAdd)
	dialog, open = model.dialogs.current()
	if !open || dialog.kind != dialogError || !strings.Contains(dialog.message, "Tipo inválido.") {
		t.Errorf("expected a type error, got %+v (open=%v)", dialog, open)
	}
	if model.panel.Count() != 1 {
		t.Errorf("refused add must not write, count = %d", model.panel.Count())
	}
}

func TestModelDeleteConfirmation(t *testing.T) {
	model := testModel(t)

	model = send(t, model, typeText("INC1"), keyAdd)
	if model.panel.Count() != 1 {
		t.Fatalf("expected 1 ticket, got %d", model.panel.Count())
	}

	// ID field still holds the new id after add.
	model = send(t, model, keyDelete)
	dialog, open := model.dialogs.current()
	if !open || dialog.kind != dialogConfirm {
		t.Fatalf("expected a confirmation, got %+v", dialog)
	}

	model = send(t, model, runeKey('n'))
	if model.panel.Count() != 1 {
		t.Fatalf("declining must not delete, count = %d", model.panel.Count())
	}
	if _, open := model.dialogs.current(); open {
		t.Fatal("declining should close the dialog")
	}

	model = send(t, model, keyDelete, runeKey('y'))
	if model.panel.Count() != 0 {
		t.Errorf("accepting should delete, count = %d", model.panel.Count())
	}
	if model.dialogs.approved {
		t.Error("approval must not outlive the confirmed action")
	}
}

func TestModelFindAndClear(t *testing.T) {
	model := testModel(t)

	model = send(t, model, typeText("INC123456"), keyAdd, keyClear)
	if model.nameInput.Value() != "" {
		t.Errorf("clear should empty the Ticket input, got %q", model.nameInput.Value())
	}
	if !strings.Contains(model.View(), "Campos de entrada limpos.") {
		t.Error("clear should report in the result pane")
	}

	model = send(t, model, typeText("123"), keyFind)
	if model.idInput.Value() != "1" || model.nameInput.Value() != "INC123456" {
		t.Errorf("find should load the match, id=%q name=%q", model.idInput.Value(), model.nameInput.Value())
	}
}

func TestModelHelp(t *testing.T) {
	model := testModel(t)

	model = send(t, model, keyHelp)
	dialog, open := model.dialogs.current()
	if !open || dialog.title != panel.HelpTitle {
		t.Fatalf("expected help dialog, got %+v", dialog)
	}
}

func TestModelQuit(t *testing.T) {
	model := testModel(t)

	_, command := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if command == nil {
		t.Fatal("ctrl+c should return a command")
	}
	if _, isQuit := command().(tea.QuitMsg); !isQuit {
		t.Error("expected QuitMsg")
	}
}
