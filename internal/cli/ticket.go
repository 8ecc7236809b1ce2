package cli

import (
	"strings"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/ticketdesk/internal/adapters/cli"
	"github.com/example/ticketdesk/internal/core/ticket"
	"github.com/example/ticketdesk/internal/wire"
)

// adapterFor builds a ticket adapter on the command's own streams.
func adapterFor(cmd *cobra.Command) (*cliadapter.TicketAdapter, error) {
	yes, _ := cmd.Flags().GetBool("yes")
	return wire.TicketAdapter(cmd.OutOrStdout(), cmd.InOrStdin(), yes)
}

func addTicketFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "ticket code, e.g. INC123456")
	cmd.Flags().String("type", "", "ticket type: "+strings.Join(ticket.Types, ", "))
	cmd.Flags().String("date", "", "date as dd/mm/aaaa")
	cmd.Flags().String("status", "", "ticket status: "+strings.Join(ticket.Statuses, ", "))
}

// ticketInput collects the ticket flags. Type and Status stay nil unless
// given so that an update leaves them alone.
func ticketInput(cmd *cobra.Command) cliadapter.TicketInput {
	flags := cmd.Flags()
	var in cliadapter.TicketInput
	in.Name, _ = flags.GetString("name")
	in.Date, _ = flags.GetString("date")
	if flags.Changed("type") {
		value, _ := flags.GetString("type")
		in.Type = &value
	}
	if flags.Changed("status") {
		value, _ := flags.GetString("status")
		in.Status = &value
	}
	return in
}

// AddCmd returns the add command
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a ticket",
		Long: `Add a ticket to the register.

Type and status default to the first allowed value when not given.
The ticket code must be unique.`,
		Example: `  ticketdesk add --name INC123456 --type Erros --date 10/05/2024
  ticketdesk add --name INC654321 --status Resolvido`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := adapterFor(cmd)
			if err != nil {
				return err
			}
			return adapter.Add(cmd.Context(), ticketInput(cmd))
		},
	}
	addTicketFlags(cmd)
	return cmd
}

// UpdateCmd returns the update command
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a ticket",
		Long:  "Change the given fields of a ticket. Fields without a flag keep their stored value.",
		Example: `  ticketdesk update 3 --status Resolvido
  ticketdesk update 3 --name INC000111 --date 11/05/2024`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := adapterFor(cmd)
			if err != nil {
				return err
			}
			return adapter.Update(cmd.Context(), args[0], ticketInput(cmd))
		},
	}
	addTicketFlags(cmd)
	return cmd
}

// DeleteCmd returns the delete command
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := adapterFor(cmd)
			if err != nil {
				return err
			}
			return adapter.Delete(cmd.Context(), args[0])
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// ClearCmd returns the clear command
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every ticket",
		Long:  "Delete every ticket in the register. This cannot be undone.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := adapterFor(cmd)
			if err != nil {
				return err
			}
			return adapter.DeleteAll(cmd.Context())
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tickets, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := adapterFor(cmd)
			if err != nil {
				return err
			}
			return adapter.List(cmd.Context())
		},
	}
}

// FindCmd returns the find command
func FindCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "find <code>",
		Short:   "Find tickets whose code contains the given text",
		Example: "  ticketdesk find 1234",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := adapterFor(cmd)
			if err != nil {
				return err
			}
			return adapter.Find(cmd.Context(), args[0])
		},
	}
}

// FilterCmd returns the filter command
func FilterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filter <date|status|type> <value>",
		Short: "List tickets with an exact date, status or type",
		Example: `  ticketdesk filter status Pendente
  ticketdesk filter date 10/05/2024`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"date", "status", "type"},
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := adapterFor(cmd)
			if err != nil {
				return err
			}
			return adapter.Filter(cmd.Context(), args[0], args[1])
		},
	}
}

// CountCmd returns the count command
func CountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of tickets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := adapterFor(cmd)
			if err != nil {
				return err
			}
			return adapter.Count(cmd.Context())
		},
	}
}

// GuideCmd returns the guide command
func GuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: "Show the usage guide",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := adapterFor(cmd)
			if err != nil {
				return err
			}
			return adapter.Guide()
		},
	}
}
