package primary

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// TicketService defines the primary port for ticket operations.
// Absence of a match is never an error: lookups return nil or an empty
// list, and writes by ID return false.
type TicketService interface {
	// EnsureSchema prepares storage for use.
	EnsureSchema(ctx context.Context) error

	// CreateTicket creates a new ticket.
	CreateTicket(ctx context.Context, req CreateTicketRequest) (*CreateTicketResponse, error)

	// ListTickets retrieves every ticket in the requested order.
	ListTickets(ctx context.Context, req ListTicketsRequest) (*TicketList, error)

	// GetTicket retrieves a ticket by ID, or nil when absent.
	GetTicket(ctx context.Context, ticketID int64) (*Ticket, error)

	// FindTicketsByCode retrieves tickets whose code contains query.
	FindTicketsByCode(ctx context.Context, query string) (*TicketList, error)

	// FilterTickets retrieves tickets whose date, status or type equals a value.
	FilterTickets(ctx context.Context, req FilterTicketsRequest) (*TicketList, error)

	// UpdateTicket changes the supplied fields of a ticket.
	UpdateTicket(ctx context.Context, req UpdateTicketRequest) (bool, error)

	// DeleteTicket deletes a ticket.
	DeleteTicket(ctx context.Context, ticketID int64) (bool, error)

	// DeleteAllTickets deletes every ticket.
	DeleteAllTickets(ctx context.Context) error

	// CountTickets returns the number of stored tickets.
	CountTickets(ctx context.Context) (int, error)
}

// CreateTicketRequest contains parameters for creating a ticket.
type CreateTicketRequest struct {
	Name   string
	Type   string
	Date   string
	Status string
}

// CreateTicketResponse contains the result of creating a ticket.
type CreateTicketResponse struct {
	TicketID int64
}

// ListTicketsRequest selects the ordering of a full listing.
// SortBy is one of id, name, type, status, date; anything else means id.
type ListTicketsRequest struct {
	SortBy    string
	Ascending bool
}

// FilterTicketsRequest contains parameters for an exact-match filter.
// Field is one of date, status, type.
type FilterTicketsRequest struct {
	Field     string
	Value     string
	SortBy    string
	Ascending bool
}

// UpdateTicketRequest contains parameters for updating a ticket.
// Nil fields are left untouched.
type UpdateTicketRequest struct {
	TicketID int64
	Name     *string
	Type     *string
	Date     *string
	Status   *string
}

// Ticket represents a ticket entity at the port boundary.
type Ticket struct {
	ID     int64
	Name   string
	Type   string
	Date   string
	Status string
}

// Cells returns the ticket's values in column order.
func (t *Ticket) Cells() []string {
	return []string{strconv.FormatInt(t.ID, 10), t.Name, t.Type, t.Date, t.Status}
}

// TicketList is the result of a query: column keys and matching tickets.
type TicketList struct {
	Columns []string
	Tickets []*Ticket
}

// Rows returns every ticket as a row of display cells.
func (l *TicketList) Rows() [][]string {
	rows := make([][]string, len(l.Tickets))
	for i, t := range l.Tickets {
		rows[i] = t.Cells()
	}
	return rows
}

// Len returns the number of tickets in the list.
func (l *TicketList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Tickets)
}

// ErrDuplicateName is returned when a ticket code is already in use.
var ErrDuplicateName = errors.New("ticket code already exists")

// StoreError reports a persistence failure other than a duplicate code.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
