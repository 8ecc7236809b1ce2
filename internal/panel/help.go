package panel

import (
	"strings"

	"github.com/example/ticketdesk/internal/core/ticket"
)

// HelpTitle is the title of the usage guide dialog.
const HelpTitle = "Ajuda ticketdesk"

// HelpText returns the usage guide describing each field and operation.
func HelpText() string {
	var b strings.Builder
	b.WriteString("--- GUIA DE USO ---\n\n")
	b.WriteString("• Ticket: Código de identificação do ticket (deve ser único).\n")
	b.WriteString("  Ex: INC123456, INC654321\n\n")
	b.WriteString("• Tipo: Categoria do serviço ou problema. Escolha da lista.\n")
	b.WriteString("  Valores: " + strings.Join(ticket.Types, ", ") + "\n\n")
	b.WriteString("• Data: Data do registro ou ocorrência. Formato dd/mm/aaaa.\n")
	b.WriteString("  Ex: 25/10/2025\n\n")
	b.WriteString("• Status: Situação atual do ticket. Escolha da lista.\n")
	b.WriteString("  Valores: " + strings.Join(ticket.Statuses, ", ") + "\n\n")
	b.WriteString("• ID: Usado para Atualizar ou Deletar um registro existente.\n")
	b.WriteString("  Ex: 1, 5, 10\n\n")
	b.WriteString("--- OPERAÇÕES ---\n")
	b.WriteString("• Adicionar: Salva um novo ticket. O código do ticket deve ser ÚNICO.\n")
	b.WriteString("• Atualizar: Modifica um ticket existente pelo ID.\n")
	b.WriteString("• Deletar: Remove um ticket pelo ID.\n")
	b.WriteString("• Mostrar Todos: Exibe todos os tickets ordenados pela data mais recente.\n")
	b.WriteString("• Mostrar por Ticket: Busca tickets que contenham o texto digitado no campo 'Ticket'.\n")
	b.WriteString("• Filtrar por Data: Exibe apenas os tickets que correspondem à data inserida no campo 'Data:'.\n")
	b.WriteString("• Filtrar por Tipo: Exibe apenas os tickets do tipo selecionado, ordenados pela data mais recente.\n")
	b.WriteString("• Filtrar por Status: Exibe apenas os tickets com o status selecionado, ordenados pela data mais recente.\n")
	b.WriteString("• Limpar Campos: Limpa todos os campos de entrada.\n")
	b.WriteString("• Limpar Registros: Exclui permanentemente TODOS os tickets do banco de dados.\n")
	return b.String()
}
