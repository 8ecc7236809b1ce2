package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/example/ticketdesk/internal/ctxutil"
	"github.com/example/ticketdesk/internal/ports/primary"
	"github.com/example/ticketdesk/internal/ports/secondary"
)

// TicketServiceImpl implements the TicketService interface.
// It is the boundary between the store and the panel: every store failure
// is logged here with its context and handed on as a primary error.
type TicketServiceImpl struct {
	ticketRepo secondary.TicketRepository
	logger     *slog.Logger
}

// NewTicketService creates a new TicketService with injected dependencies.
func NewTicketService(ticketRepo secondary.TicketRepository, logger *slog.Logger) *TicketServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &TicketServiceImpl{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// EnsureSchema prepares storage for use.
func (s *TicketServiceImpl) EnsureSchema(ctx context.Context) error {
	if err := s.ticketRepo.EnsureSchema(ctx); err != nil {
		return s.fail(ctx, "ensure schema", err)
	}
	return nil
}

// CreateTicket creates a new ticket.
func (s *TicketServiceImpl) CreateTicket(ctx context.Context, req primary.CreateTicketRequest) (*primary.CreateTicketResponse, error) {
	fields := secondary.TicketFields{
		Name:   req.Name,
		Type:   req.Type,
		Date:   req.Date,
		Status: req.Status,
	}

	id, err := s.ticketRepo.Insert(ctx, fields)
	if err != nil {
		return nil, s.fail(ctx, "insert ticket", err, "name", req.Name)
	}
	s.logger.DebugContext(ctx, "ticket inserted", "ticket_id", id, "name", req.Name)

	return &primary.CreateTicketResponse{TicketID: id}, nil
}

// ListTickets retrieves every ticket in the requested order.
func (s *TicketServiceImpl) ListTickets(ctx context.Context, req primary.ListTicketsRequest) (*primary.TicketList, error) {
	set, err := s.ticketRepo.GetAll(ctx, secondary.SortKey(req.SortBy), req.Ascending)
	if err != nil {
		return nil, s.fail(ctx, "select all tickets", err, "sort_by", req.SortBy)
	}
	s.logger.DebugContext(ctx, "tickets listed", "count", set.Len(), "sort_by", req.SortBy)
	return s.setToList(set), nil
}

// GetTicket retrieves a ticket by ID, or nil when absent.
func (s *TicketServiceImpl) GetTicket(ctx context.Context, ticketID int64) (*primary.Ticket, error) {
	record, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, s.fail(ctx, "select ticket", err, "ticket_id", ticketID)
	}
	if record == nil {
		return nil, nil
	}
	return s.recordToTicket(record), nil
}

// FindTicketsByCode retrieves tickets whose code contains query.
func (s *TicketServiceImpl) FindTicketsByCode(ctx context.Context, query string) (*primary.TicketList, error) {
	set, err := s.ticketRepo.FindByNameSubstring(ctx, query)
	if err != nil {
		return nil, s.fail(ctx, "select tickets by name", err, "query", query)
	}
	return s.setToList(set), nil
}

// FilterTickets retrieves tickets whose date, status or type equals a value.
func (s *TicketServiceImpl) FilterTickets(ctx context.Context, req primary.FilterTicketsRequest) (*primary.TicketList, error) {
	set, err := s.ticketRepo.FindByExact(ctx,
		secondary.Field(req.Field), req.Value,
		secondary.SortKey(req.SortBy), req.Ascending,
	)
	if err != nil {
		return nil, s.fail(ctx, "select tickets by "+req.Field, err, "value", req.Value)
	}
	return s.setToList(set), nil
}

// UpdateTicket changes the supplied fields of a ticket.
func (s *TicketServiceImpl) UpdateTicket(ctx context.Context, req primary.UpdateTicketRequest) (bool, error) {
	patch := secondary.TicketPatch{
		Name:   req.Name,
		Type:   req.Type,
		Date:   req.Date,
		Status: req.Status,
	}

	changed, err := s.ticketRepo.Update(ctx, req.TicketID, patch)
	if err != nil {
		return false, s.fail(ctx, "update ticket", err, "ticket_id", req.TicketID)
	}
	if changed {
		s.logger.DebugContext(ctx, "ticket updated", "ticket_id", req.TicketID)
	} else {
		s.logger.DebugContext(ctx, "ticket not found or no changes made", "ticket_id", req.TicketID)
	}
	return changed, nil
}

// DeleteTicket deletes a ticket.
func (s *TicketServiceImpl) DeleteTicket(ctx context.Context, ticketID int64) (bool, error) {
	deleted, err := s.ticketRepo.Delete(ctx, ticketID)
	if err != nil {
		return false, s.fail(ctx, "delete ticket", err, "ticket_id", ticketID)
	}
	s.logger.DebugContext(ctx, "ticket delete", "ticket_id", ticketID, "deleted", deleted)
	return deleted, nil
}

// DeleteAllTickets deletes every ticket.
func (s *TicketServiceImpl) DeleteAllTickets(ctx context.Context) error {
	if err := s.ticketRepo.DeleteAll(ctx); err != nil {
		return s.fail(ctx, "delete all tickets", err)
	}
	s.logger.DebugContext(ctx, "all tickets deleted")
	return nil
}

// CountTickets returns the number of stored tickets.
func (s *TicketServiceImpl) CountTickets(ctx context.Context) (int, error) {
	count, err := s.ticketRepo.Count(ctx)
	if err != nil {
		return 0, s.fail(ctx, "count tickets", err)
	}
	return count, nil
}

// Helper methods

// fail logs a store error with its context and converts it to the
// matching primary error.
func (s *TicketServiceImpl) fail(ctx context.Context, op string, err error, attrs ...any) error {
	args := []any{"op", op, "error", err}
	if action := ctxutil.ActionFromContext(ctx); action != "" {
		args = append(args, "action", action)
	}
	args = append(args, attrs...)

	if errors.Is(err, secondary.ErrDuplicateName) {
		s.logger.ErrorContext(ctx, "uniqueness violation", args...)
		return fmt.Errorf("%s: %w", op, primary.ErrDuplicateName)
	}

	s.logger.ErrorContext(ctx, "store operation failed", args...)

	var storeErr *secondary.StoreError
	if errors.As(err, &storeErr) {
		return &primary.StoreError{Op: storeErr.Op, Err: storeErr.Err}
	}
	return &primary.StoreError{Op: op, Err: err}
}

func (s *TicketServiceImpl) setToList(set *secondary.ResultSet) *primary.TicketList {
	list := &primary.TicketList{
		Columns: set.Columns,
		Tickets: make([]*primary.Ticket, len(set.Tickets)),
	}
	for i, r := range set.Tickets {
		list.Tickets[i] = s.recordToTicket(r)
	}
	return list
}

func (s *TicketServiceImpl) recordToTicket(r *secondary.TicketRecord) *primary.Ticket {
	return &primary.Ticket{
		ID:     r.ID,
		Name:   r.Name,
		Type:   r.Type,
		Date:   r.Date,
		Status: r.Status,
	}
}

// Ensure TicketServiceImpl implements the interface.
var _ primary.TicketService = (*TicketServiceImpl)(nil)
