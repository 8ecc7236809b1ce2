// Package ticket contains the pure business rules for ticket records:
// the enumerated categories and statuses, date validation and the live
// date formatter used by the form.
package ticket

import (
	"errors"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the stored and displayed date format (dd/mm/yyyy).
const DateLayout = "02/01/2006"

// Types are the categories offered by the form, in display order.
var Types = []string{
	"Acessos", "Acompanhamento", "Agendamento", "CFTV", "Conexões",
	"Disponibilidade", "Erros", "Formatação", "Impressoras", "Instalação/Configuração",
	"Office365", "Requisição", "Outros",
}

// Status values offered by the form, in display order.
const (
	StatusPending    = "Pendente"
	StatusInProgress = "Em atendimento"
	StatusResolved   = "Resolvido"
)

// Statuses are the allowed ticket statuses, in display order.
var Statuses = []string{StatusPending, StatusInProgress, StatusResolved}

var (
	// ErrDateFormat means the text is not shaped like dd/mm/yyyy.
	ErrDateFormat = errors.New("date must be formatted as dd/mm/yyyy")
	// ErrDateInvalid means the text is shaped correctly but names no real day.
	ErrDateInvalid = errors.New("date is not a real calendar day")
	// ErrInvalidID means the ID text is not an integer.
	ErrInvalidID = errors.New("id must be an integer")
)

var datePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

var validate = validator.New(validator.WithRequiredStructEnabled())

// IsValidType reports whether t is one of Types.
func IsValidType(t string) bool {
	return slices.Contains(Types, t)
}

// IsValidStatus reports whether s is one of Statuses.
func IsValidStatus(s string) bool {
	return slices.Contains(Statuses, s)
}

// ValidateDate checks a non-empty date in two steps so callers can tell a
// malformed string from an impossible day such as 31/02/2024.
func ValidateDate(date string) error {
	if !datePattern.MatchString(date) {
		return ErrDateFormat
	}
	if err := validate.Var(date, "datetime="+DateLayout); err != nil {
		return ErrDateInvalid
	}
	// Year 0 parses but names no day of the common era
	if date[6:] == "0000" {
		return ErrDateInvalid
	}
	return nil
}

// FormatDateInput renders raw keystrokes as a progressively built
// dd/mm/yyyy: non-digits are dropped and at most eight digits are kept.
func FormatDateInput(raw string) string {
	digits := make([]rune, 0, 8)
	for _, r := range raw {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			digits = append(digits, r)
			if len(digits) == 8 {
				break
			}
		}
	}

	var b strings.Builder
	for i, d := range digits {
		if i == 2 || i == 4 {
			b.WriteByte('/')
		}
		b.WriteRune(d)
	}
	return b.String()
}

// ParseID parses the text of the ID field.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}
