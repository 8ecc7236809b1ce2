package ticket

import (
	"errors"
	"fmt"
)

// Dialog titles used by guard failures.
const (
	TitleDataError   = "Erro nos Dados"
	TitleFilterError = "Erro de Filtro"
	TitleNoChanges   = "Nenhuma Alteração"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Title   string
	Reason  string
	// Notice marks a refusal that is informational rather than an error.
	Notice bool
}

const (
	msgInvalidType   = "Tipo inválido. Selecione um dos tipos da lista."
	msgInvalidStatus = "Status inválido. Selecione um dos status da lista."
)

func allowed() GuardResult {
	return GuardResult{Allowed: true}
}

func dataError(reason string) GuardResult {
	return GuardResult{Title: TitleDataError, Reason: reason}
}

// AddContext provides context for ticket creation guards.
// Values are the effective form values (empty when not entered).
type AddContext struct {
	Name   string
	Type   string
	Date   string
	Status string
}

// UpdateContext provides context for ticket update guards.
// Type and Status are empty when they are not part of the update.
type UpdateContext struct {
	IDText     string
	Type       string
	Date       string
	Status     string
	HasChanges bool
}

// CanAdd evaluates whether a ticket can be created.
// Rules:
// - Ticket code must be present
// - Type and status must be one of the listed options
// - Date, when present, must be dd/mm/yyyy and a real day
func CanAdd(ctx AddContext) GuardResult {
	if ctx.Name == "" {
		return dataError("O campo 'Ticket' não pode estar vazio.")
	}
	if !IsValidType(ctx.Type) {
		return dataError(msgInvalidType)
	}
	if !IsValidStatus(ctx.Status) {
		return dataError(msgInvalidStatus)
	}
	return checkOptionalDate(ctx.Date)
}

// CanUpdate evaluates whether an update can be sent to the store.
// Rules:
// - ID must be present and an integer
// - Type and status, when present, must be one of the listed options
// - Date, when present, must be dd/mm/yyyy and a real day
// - At least one field must be supplied
func CanUpdate(ctx UpdateContext) GuardResult {
	if result := checkID(ctx.IDText, "atualizar"); !result.Allowed {
		return result
	}
	if ctx.Type != "" && !IsValidType(ctx.Type) {
		return dataError(msgInvalidType)
	}
	if ctx.Status != "" && !IsValidStatus(ctx.Status) {
		return dataError(msgInvalidStatus)
	}
	if result := checkOptionalDate(ctx.Date); !result.Allowed {
		return result
	}
	if !ctx.HasChanges {
		return GuardResult{
			Title:  TitleNoChanges,
			Reason: "Nenhum dado fornecido para atualização. Preencha os campos que deseja alterar.",
			Notice: true,
		}
	}
	return allowed()
}

// CanDelete evaluates whether a delete can be requested.
// Rules:
// - ID must be present and an integer
func CanDelete(idText string) GuardResult {
	return checkID(idText, "deletar")
}

// CanFind evaluates whether a ticket code search can run.
func CanFind(query string) GuardResult {
	if query == "" {
		return dataError("Por favor, forneça um código de ticket (ou parte dele) para buscar.")
	}
	return allowed()
}

// CanFilterByDate evaluates whether a date filter can run.
// Rules:
// - Date must be present
// - Date must be dd/mm/yyyy and a real day
func CanFilterByDate(date string) GuardResult {
	if date == "" {
		return GuardResult{
			Title:  TitleFilterError,
			Reason: "Por favor, insira uma data no campo 'Data:' para filtrar.",
		}
	}
	return checkOptionalDate(date)
}

// CanFilterByStatus evaluates whether a status filter can run.
func CanFilterByStatus(status string) GuardResult {
	if !IsValidStatus(status) {
		return GuardResult{
			Title:  TitleFilterError,
			Reason: "Por favor, selecione um status válido para filtrar.",
		}
	}
	return allowed()
}

// CanFilterByType evaluates whether a type filter can run.
func CanFilterByType(ticketType string) GuardResult {
	if !IsValidType(ticketType) {
		return GuardResult{
			Title:  TitleFilterError,
			Reason: "Por favor, selecione um tipo válido para filtrar.",
		}
	}
	return allowed()
}

func checkID(idText, verb string) GuardResult {
	if idText == "" {
		return dataError(fmt.Sprintf("Por favor, forneça um ID para %s.", verb))
	}
	if _, err := ParseID(idText); err != nil {
		return dataError("O ID deve ser um número inteiro.")
	}
	return allowed()
}

func checkOptionalDate(date string) GuardResult {
	if date == "" {
		return allowed()
	}
	err := ValidateDate(date)
	switch {
	case errors.Is(err, ErrDateFormat):
		return dataError("Formato de data inválido. Use dd/mm/aaaa.")
	case errors.Is(err, ErrDateInvalid):
		return dataError("Data inválida. Por favor, insira uma data real no formato dd/mm/aaaa.")
	}
	return allowed()
}
