// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// TicketRepository defines the secondary port for ticket persistence.
// Identifiers used in SQL are fixed by the implementation; only values
// supplied through these methods reach the database, always as bound
// parameters.
type TicketRepository interface {
	// EnsureSchema creates the tickets table and name index if absent.
	EnsureSchema(ctx context.Context) error

	// Insert persists a new ticket and returns its assigned ID.
	// Returns ErrDuplicateName when the ticket code is already used.
	Insert(ctx context.Context, fields TicketFields) (int64, error)

	// GetAll retrieves every ticket ordered by the given key.
	GetAll(ctx context.Context, sortKey SortKey, ascending bool) (*ResultSet, error)

	// GetByID retrieves a ticket by its ID. Returns nil, nil when absent.
	GetByID(ctx context.Context, id int64) (*TicketRecord, error)

	// FindByNameSubstring retrieves tickets whose code contains query.
	FindByNameSubstring(ctx context.Context, query string) (*ResultSet, error)

	// FindByExact retrieves tickets whose field equals value exactly.
	// Only FieldDate, FieldStatus and FieldType are accepted.
	FindByExact(ctx context.Context, field Field, value string, sortKey SortKey, ascending bool) (*ResultSet, error)

	// Update modifies only the fields set in patch.
	// Returns false (no error) when no ticket has the given ID.
	Update(ctx context.Context, id int64, patch TicketPatch) (bool, error)

	// Delete removes a ticket. Returns false when no ticket has the given ID.
	Delete(ctx context.Context, id int64) (bool, error)

	// DeleteAll removes every ticket.
	DeleteAll(ctx context.Context) error

	// Count returns the number of stored tickets.
	Count(ctx context.Context) (int, error)
}

// TicketRecord represents a ticket as stored in persistence.
type TicketRecord struct {
	ID     int64
	Name   string // ticket code, unique
	Type   string
	Date   string // dd/mm/yyyy or empty
	Status string
}

// TicketFields contains the values of a new ticket.
type TicketFields struct {
	Name   string
	Type   string
	Date   string
	Status string
}

// TicketPatch contains the fields to change on an existing ticket.
// Nil fields are left untouched.
type TicketPatch struct {
	Name   *string
	Type   *string
	Date   *string
	Status *string
}

// IsEmpty reports whether the patch changes nothing.
func (p TicketPatch) IsEmpty() bool {
	return p.Name == nil && p.Type == nil && p.Date == nil && p.Status == nil
}

// ResultSet is the outcome of a query: the column keys followed by the
// matching tickets.
type ResultSet struct {
	Columns []string
	Tickets []*TicketRecord
}

// Len returns the number of tickets in the set.
func (rs *ResultSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Tickets)
}

// TicketColumns are the internal column keys, in table order.
var TicketColumns = []string{"id", "name", "type", "date", "status"}

// SortKey selects the ordering of a query.
type SortKey string

const (
	SortByID     SortKey = "id"
	SortByName   SortKey = "name"
	SortByType   SortKey = "type"
	SortByStatus SortKey = "status"
	SortByDate   SortKey = "date"
)

// Field names a column usable in an exact-match filter.
type Field string

const (
	FieldDate   Field = "date"
	FieldStatus Field = "status"
	FieldType   Field = "type"
)
