// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/example/ticketdesk/internal/db"
	"github.com/example/ticketdesk/internal/ports/secondary"
)

const ticketSelect = "SELECT id, name, type, date, status FROM tickets"

// chronologicalDate rebuilds dd/mm/yyyy as yyyymmdd so that text ordering
// follows the calendar.
const chronologicalDate = "SUBSTR(date, 7, 4) || SUBSTR(date, 4, 2) || SUBSTR(date, 1, 2)"

// malformedDateLast evaluates to 1 for dates that are not dd/mm/yyyy
// (including empty and NULL) so they sort after every real date.
const malformedDateLast = "CASE WHEN date GLOB '[0-9][0-9]/[0-9][0-9]/[0-9][0-9][0-9][0-9]' THEN 0 ELSE 1 END"

var sortExpressions = map[secondary.SortKey]string{
	secondary.SortByID:     "id",
	secondary.SortByName:   "name",
	secondary.SortByType:   "type",
	secondary.SortByStatus: "status",
	secondary.SortByDate:   chronologicalDate,
}

var exactFilters = map[secondary.Field]string{
	secondary.FieldDate:   "date = ?",
	secondary.FieldStatus: "status = ?",
	secondary.FieldType:   "type = ?",
}

// TicketRepository implements secondary.TicketRepository with SQLite.
type TicketRepository struct {
	db *sql.DB
}

// NewTicketRepository creates a new SQLite ticket repository.
// The repository takes ownership of db; Close releases it.
func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// Close closes the underlying database handle.
func (r *TicketRepository) Close() error {
	return r.db.Close()
}

// EnsureSchema creates the tickets table and name index if absent.
func (r *TicketRepository) EnsureSchema(ctx context.Context) error {
	if err := db.InitSchema(ctx, r.db); err != nil {
		return &secondary.StoreError{Op: "ensure schema", Err: err}
	}
	return nil
}

// Insert persists a new ticket and returns its assigned ID.
func (r *TicketRepository) Insert(ctx context.Context, fields secondary.TicketFields) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO tickets (name, type, date, status) VALUES (?, ?, ?, ?)",
		fields.Name, fields.Type, fields.Date, fields.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert ticket %q: %w", fields.Name, secondary.ErrDuplicateName)
		}
		return 0, &secondary.StoreError{Op: "insert ticket", Err: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, &secondary.StoreError{Op: "insert ticket", Err: err}
	}

	return id, nil
}

// GetAll retrieves every ticket. Unknown sort keys fall back to id.
func (r *TicketRepository) GetAll(ctx context.Context, sortKey secondary.SortKey, ascending bool) (*secondary.ResultSet, error) {
	query := ticketSelect + " " + orderClause(sortKey, ascending)
	return r.list(ctx, "select all tickets", query)
}

// GetByID retrieves a ticket by its ID. Returns nil, nil when absent.
func (r *TicketRepository) GetByID(ctx context.Context, id int64) (*secondary.TicketRecord, error) {
	record, err := scanTicket(r.db.QueryRowContext(ctx, ticketSelect+" WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &secondary.StoreError{Op: fmt.Sprintf("select ticket %d", id), Err: err}
	}
	return record, nil
}

// FindByNameSubstring retrieves tickets whose code contains query anywhere.
// LIKE wildcards in query are matched literally.
func (r *TicketRepository) FindByNameSubstring(ctx context.Context, query string) (*secondary.ResultSet, error) {
	pattern := "%" + escapeLike(query) + "%"
	return r.list(ctx, "select tickets by name",
		ticketSelect+` WHERE name LIKE ? ESCAPE '\' ORDER BY id ASC`, pattern)
}

// FindByExact retrieves tickets whose field equals value.
func (r *TicketRepository) FindByExact(ctx context.Context, field secondary.Field, value string, sortKey secondary.SortKey, ascending bool) (*secondary.ResultSet, error) {
	predicate, ok := exactFilters[field]
	if !ok {
		return nil, &secondary.StoreError{
			Op:  "select tickets",
			Err: fmt.Errorf("field %q cannot be filtered", field),
		}
	}

	query := ticketSelect + " WHERE " + predicate + " " + orderClause(sortKey, ascending)
	return r.list(ctx, fmt.Sprintf("select tickets by %s", field), query, value)
}

// Update modifies only the fields set in patch.
func (r *TicketRepository) Update(ctx context.Context, id int64, patch secondary.TicketPatch) (bool, error) {
	if patch.IsEmpty() {
		return false, nil
	}

	var (
		sets []string
		args []any
	)
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Type != nil {
		sets = append(sets, "type = ?")
		args = append(args, *patch.Type)
	}
	if patch.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, *patch.Date)
	}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *patch.Status)
	}
	args = append(args, id)

	result, err := r.db.ExecContext(ctx,
		"UPDATE tickets SET "+strings.Join(sets, ", ")+" WHERE id = ?",
		args...,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, fmt.Errorf("update ticket %d: %w", id, secondary.ErrDuplicateName)
		}
		return false, &secondary.StoreError{Op: fmt.Sprintf("update ticket %d", id), Err: err}
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, &secondary.StoreError{Op: fmt.Sprintf("update ticket %d", id), Err: err}
	}

	return rowsAffected > 0, nil
}

// Delete removes a ticket from persistence.
func (r *TicketRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tickets WHERE id = ?", id)
	if err != nil {
		return false, &secondary.StoreError{Op: fmt.Sprintf("delete ticket %d", id), Err: err}
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, &secondary.StoreError{Op: fmt.Sprintf("delete ticket %d", id), Err: err}
	}

	return rowsAffected > 0, nil
}

// DeleteAll removes every ticket.
func (r *TicketRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM tickets"); err != nil {
		return &secondary.StoreError{Op: "delete all tickets", Err: err}
	}
	return nil
}

// Count returns the number of stored tickets.
func (r *TicketRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tickets").Scan(&count); err != nil {
		return 0, &secondary.StoreError{Op: "count tickets", Err: err}
	}
	return count, nil
}

func (r *TicketRepository) list(ctx context.Context, op, query string, args ...any) (*secondary.ResultSet, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &secondary.StoreError{Op: op, Err: err}
	}
	defer rows.Close()

	set := &secondary.ResultSet{Columns: secondary.TicketColumns}
	for rows.Next() {
		record, err := scanTicket(rows)
		if err != nil {
			return nil, &secondary.StoreError{Op: op, Err: err}
		}
		set.Tickets = append(set.Tickets, record)
	}
	if err := rows.Err(); err != nil {
		return nil, &secondary.StoreError{Op: op, Err: err}
	}

	return set, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTicket(row rowScanner) (*secondary.TicketRecord, error) {
	var (
		ticketType sql.NullString
		date       sql.NullString
		status     sql.NullString
	)

	record := &secondary.TicketRecord{}
	if err := row.Scan(&record.ID, &record.Name, &ticketType, &date, &status); err != nil {
		return nil, err
	}

	record.Type = ticketType.String
	record.Date = date.String
	record.Status = status.String

	return record, nil
}

// orderClause builds ORDER BY from the fixed expression table; the sort key
// never reaches the query text itself.
func orderClause(sortKey secondary.SortKey, ascending bool) string {
	direction := "DESC"
	if ascending {
		direction = "ASC"
	}

	expr, ok := sortExpressions[sortKey]
	if !ok {
		sortKey = secondary.SortByID
		expr = sortExpressions[secondary.SortByID]
	}

	switch sortKey {
	case secondary.SortByID:
		return "ORDER BY id " + direction
	case secondary.SortByDate:
		return fmt.Sprintf("ORDER BY %s, %s %s, id %s", malformedDateLast, expr, direction, direction)
	default:
		return fmt.Sprintf("ORDER BY %s %s, id %s", expr, direction, direction)
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

// Ensure TicketRepository implements the interface.
var _ secondary.TicketRepository = (*TicketRepository)(nil)
