// Package panel holds the ticket form: field state, validation, calls into
// the ticket service and rendering of the result pane. It knows nothing
// about the terminal; surfaces drive it and supply a Dialog.
package panel

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/ticketdesk/internal/core/ticket"
	"github.com/example/ticketdesk/internal/ctxutil"
	"github.com/example/ticketdesk/internal/ports/primary"
)

// Dialog titles for store failures and confirmations.
const (
	TitleUniqueness = "Erro de Unicidade"
	TitleStore      = "Erro no Banco de Dados"
	TitleConfirm    = "Confirmar Exclusão"
)

// DefaultHeading is the result pane label when no query is shown.
const DefaultHeading = "Tickets:"

const (
	msgDuplicateOnAdd    = "Um ticket com este código já existe. Por favor, use um código diferente."
	msgDuplicateOnUpdate = "O código do ticket que você está tentando usar já existe em outro registro."
)

// Dialog reports messages to the user and asks for confirmation.
type Dialog interface {
	Error(title, message string)
	Info(title, message string)
	Confirm(title, message string) bool
}

// Panel owns the form and the result pane and runs the user's actions.
type Panel struct {
	Form *Form

	service primary.TicketService
	dialog  Dialog
	style   Style

	heading string
	output  string
	count   int
}

// New creates a panel over service. style decorates table headers and may be nil.
func New(service primary.TicketService, dialog Dialog, style Style) *Panel {
	return &Panel{
		Form:    NewForm(),
		service: service,
		dialog:  dialog,
		style:   style,
		heading: DefaultHeading,
	}
}

// Heading returns the label above the result pane.
func (p *Panel) Heading() string { return p.heading }

// Output returns the text of the result pane.
func (p *Panel) Output() string { return p.output }

// TakeOutput returns the result pane text and empties the pane.
func (p *Panel) TakeOutput() string {
	out := p.output
	p.output = ""
	return out
}

// Count returns the last known number of stored tickets.
func (p *Panel) Count() int { return p.count }

// Start refreshes the counter and lists every ticket.
func (p *Panel) Start(ctx context.Context) {
	p.RefreshCount(ctx)
	p.ListAll(ctx)
}

// Add saves a new ticket from the form.
func (p *Panel) Add(ctx context.Context) {
	ctx = ctxutil.WithAction(ctx, "add")
	f := p.Form
	name := f.Name.Effective()
	date := f.Date.Effective()

	ticketType := f.Type.Value()
	status := f.Status.Value()

	if !p.guard(ticket.CanAdd(ticket.AddContext{Name: name, Type: ticketType, Date: date, Status: status})) {
		return
	}

	resp, err := p.service.CreateTicket(ctx, primary.CreateTicketRequest{
		Name:   name,
		Type:   ticketType,
		Date:   date,
		Status: status,
	})
	if err != nil {
		p.reportStoreError(err, "inserir registro", msgDuplicateOnAdd)
		return
	}

	p.display(fmt.Sprintf("Ticket '%s' adicionado com ID: %d", name, resp.TicketID))
	f.Reset()
	f.ID.Set(fmt.Sprint(resp.TicketID))
	f.Name.Set(name)

	p.RefreshCount(ctx)
	p.ListAll(ctx)
}

// Update applies the filled-in fields to the ticket named by the ID field.
func (p *Panel) Update(ctx context.Context) {
	ctx = ctxutil.WithAction(ctx, "update")
	f := p.Form
	idText := f.ID.Effective()
	name := f.Name.Effective()
	date := f.Date.Effective()

	req := primary.UpdateTicketRequest{}
	if name != "" {
		req.Name = &name
	}
	if v := f.Type.Value(); v != "" {
		req.Type = &v
	}
	if v := f.Status.Value(); v != "" {
		req.Status = &v
	}
	if date != "" {
		req.Date = &date
	}
	hasChanges := req.Name != nil || req.Type != nil || req.Status != nil || req.Date != nil

	guardCtx := ticket.UpdateContext{
		IDText:     idText,
		Type:       f.Type.Value(),
		Date:       date,
		Status:     f.Status.Value(),
		HasChanges: hasChanges,
	}
	if !p.guard(ticket.CanUpdate(guardCtx)) {
		return
	}
	id, _ := ticket.ParseID(idText)
	req.TicketID = id

	changed, err := p.service.UpdateTicket(ctx, req)
	if err != nil {
		p.reportStoreError(err, fmt.Sprintf("atualizar registro %d", id), msgDuplicateOnUpdate)
		return
	}
	if !changed {
		p.display(fmt.Sprintf("Nenhum ticket encontrado com ID %d.", id))
		return
	}

	p.display(fmt.Sprintf("Ticket com ID %d atualizado com sucesso.", id))
	f.Reset()
	f.ID.Set(fmt.Sprint(id))
	if req.Name != nil {
		f.Name.Set(name)
	}

	p.RefreshCount(ctx)
	p.ListAll(ctx)
}

// Delete removes the ticket named by the ID field after confirmation.
func (p *Panel) Delete(ctx context.Context) {
	ctx = ctxutil.WithAction(ctx, "delete")
	idText := p.Form.ID.Effective()

	if !p.guard(ticket.CanDelete(idText)) {
		return
	}
	id, _ := ticket.ParseID(idText)

	if !p.dialog.Confirm(TitleConfirm, fmt.Sprintf("Você tem certeza que deseja deletar o ticket com ID %d?", id)) {
		return
	}

	deleted, err := p.service.DeleteTicket(ctx, id)
	if err != nil {
		p.reportStoreError(err, fmt.Sprintf("deletar registro %d", id), "")
		return
	}
	if !deleted {
		p.display(fmt.Sprintf("Nenhum ticket encontrado com ID %d.", id))
		return
	}

	p.display(fmt.Sprintf("Ticket com ID %d deletado com sucesso.", id))
	p.Form.Reset()
	p.RefreshCount(ctx)
	p.ListAll(ctx)
}

// DeleteAll removes every ticket after confirmation.
func (p *Panel) DeleteAll(ctx context.Context) {
	ctx = ctxutil.WithAction(ctx, "delete-all")

	if !p.dialog.Confirm(TitleConfirm, "Você tem certeza que deseja excluir TODOS os tickets? Esta ação é irreversível!") {
		return
	}

	if err := p.service.DeleteAllTickets(ctx); err != nil {
		p.reportStoreError(err, "deletar todos os registros", "")
		return
	}

	p.display("Todos os tickets foram excluídos com sucesso.")
	p.Form.Reset()
	p.RefreshCount(ctx)
	p.ListAll(ctx)
}

// ListAll shows every ticket, most recent date first.
func (p *Panel) ListAll(ctx context.Context) {
	ctx = ctxutil.WithAction(ctx, "list")
	list, err := p.service.ListTickets(ctx, primary.ListTicketsRequest{SortBy: "date"})
	if err != nil {
		p.reportStoreError(err, "selecionar todos os registros", "")
		return
	}
	p.showList("Todos os Tickets", list)
	p.heading = DefaultHeading
}

// FindByCode searches ticket codes containing the Ticket field text and
// loads the first match into the form.
func (p *Panel) FindByCode(ctx context.Context) {
	ctx = ctxutil.WithAction(ctx, "find")
	query := p.Form.Name.Effective()

	if !p.guard(ticket.CanFind(query)) {
		return
	}

	list, err := p.service.FindTicketsByCode(ctx, query)
	if err != nil {
		p.reportStoreError(err, "selecionar registros por nome", "")
		return
	}

	f := p.Form
	f.Reset()
	if list.Len() == 0 {
		p.display(fmt.Sprintf("Nenhum ticket encontrado com o código '%s'.", query))
		p.heading = fmt.Sprintf("Nenhum ticket encontrado com '%s':", query)
		return
	}

	title := fmt.Sprintf("Tickets encontrados com '%s'", query)
	p.showList(title, list)
	p.heading = title + ":"

	first := list.Tickets[0]
	f.ID.Set(fmt.Sprint(first.ID))
	f.Name.Set(first.Name)
	f.Type.Set(first.Type)
	if first.Date != "" {
		f.Date.Set(first.Date)
	}
	f.Status.Set(first.Status)
}

// FilterByDate shows the tickets whose date equals the Data field.
func (p *Panel) FilterByDate(ctx context.Context) {
	ctx = ctxutil.WithAction(ctx, "filter-date")
	date := p.Form.Date.Effective()

	if !p.guard(ticket.CanFilterByDate(date)) {
		return
	}

	list, err := p.service.FilterTickets(ctx, primary.FilterTicketsRequest{Field: "date", Value: date, SortBy: "id", Ascending: true})
	if err != nil {
		p.reportStoreError(err, "selecionar registros por data", "")
		return
	}
	if list.Len() == 0 {
		p.display(fmt.Sprintf("Nenhum ticket encontrado para a data %s.", date))
		p.heading = fmt.Sprintf("Nenhum ticket encontrado na data: %s:", date)
		return
	}

	title := fmt.Sprintf("Tickets na data: %s", date)
	p.showList(title, list)
	p.heading = title + ":"
}

// FilterByStatus shows the tickets with the selected status.
func (p *Panel) FilterByStatus(ctx context.Context) {
	ctx = ctxutil.WithAction(ctx, "filter-status")
	status := p.Form.Status.Value()

	if !p.guard(ticket.CanFilterByStatus(status)) {
		return
	}

	list, err := p.service.FilterTickets(ctx, primary.FilterTicketsRequest{Field: "status", Value: status, SortBy: "date"})
	if err != nil {
		p.reportStoreError(err, "selecionar registros por status", "")
		return
	}
	if list.Len() == 0 {
		p.display(fmt.Sprintf("Nenhum ticket encontrado com o status '%s'.", status))
		p.heading = fmt.Sprintf("Nenhum ticket encontrado com status: %s:", status)
		return
	}

	title := fmt.Sprintf("Tickets com Status: %s", status)
	p.showList(title, list)
	p.heading = title + ":"
}

// FilterByType shows the tickets of the selected type.
func (p *Panel) FilterByType(ctx context.Context) {
	ctx = ctxutil.WithAction(ctx, "filter-type")
	ticketType := p.Form.Type.Value()

	if !p.guard(ticket.CanFilterByType(ticketType)) {
		return
	}

	list, err := p.service.FilterTickets(ctx, primary.FilterTicketsRequest{Field: "type", Value: ticketType, SortBy: "date"})
	if err != nil {
		p.reportStoreError(err, "selecionar registros por tipo", "")
		return
	}
	if list.Len() == 0 {
		p.display(fmt.Sprintf("Nenhum ticket encontrado com o tipo '%s'.", ticketType))
		p.heading = fmt.Sprintf("Nenhum ticket encontrado com tipo: %s:", ticketType)
		return
	}

	title := fmt.Sprintf("Tickets com Tipo: %s", ticketType)
	p.showList(title, list)
	p.heading = title + ":"
}

// ClearFields resets the form.
func (p *Panel) ClearFields() {
	p.Form.Reset()
	p.display("Campos de entrada limpos.")
	p.heading = DefaultHeading
}

// Help shows the usage guide.
func (p *Panel) Help() {
	p.dialog.Info(HelpTitle, HelpText())
}

// RefreshCount reloads the ticket counter. A failed count keeps the old value.
func (p *Panel) RefreshCount(ctx context.Context) {
	count, err := p.service.CountTickets(ctx)
	if err != nil {
		p.reportStoreError(err, "contar registros", "")
		return
	}
	p.count = count
}

func (p *Panel) guard(result ticket.GuardResult) bool {
	if result.Allowed {
		return true
	}
	if result.Notice {
		p.dialog.Info(result.Title, result.Reason)
	} else {
		p.dialog.Error(result.Title, result.Reason)
	}
	return false
}

// reportStoreError turns a service error into a dialog. duplicate is the
// message for a ticket code clash; what names the failed operation.
func (p *Panel) reportStoreError(err error, what, duplicate string) {
	if duplicate != "" && errors.Is(err, primary.ErrDuplicateName) {
		p.dialog.Error(TitleUniqueness, duplicate)
		return
	}

	cause := err
	var storeErr *primary.StoreError
	if errors.As(err, &storeErr) && storeErr.Err != nil {
		cause = storeErr.Err
	}
	p.dialog.Error(TitleStore, fmt.Sprintf("Erro ao %s: %v", what, cause))
}

func (p *Panel) showList(title string, list *primary.TicketList) {
	p.output = RenderTable(title, list.Columns, list.Rows(), p.style)
}

func (p *Panel) display(message string) {
	p.output = message + "\n"
}
