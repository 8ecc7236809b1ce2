package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/example/ticketdesk/internal/config"
	"github.com/example/ticketdesk/internal/tui"
	"github.com/example/ticketdesk/internal/version"
	"github.com/example/ticketdesk/internal/wire"
)

// NewRootCmd builds the ticketdesk command tree. Without a subcommand the
// terminal UI starts.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ticketdesk",
		Short:   "ticketdesk - registro local de tickets",
		Version: version.String(),
		Long: `ticketdesk keeps a small register of support tickets in a local SQLite file.

Run without arguments for the interactive panel, or use the subcommands
below for one-shot actions from scripts and shells.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := wire.TicketService()
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), service)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", fmt.Sprintf("config file (default ./%s when present)", config.FileName))
	flags.String("db", "", "SQLite database file (default "+config.Default().Database.Path+")")
	flags.String("log-file", "", "log destination: a file path, stderr or stdout (default "+config.DefaultLogPath+")")
	flags.String("log-level", "", "log level: debug, info, warn or error (default error)")

	// Ticket actions
	rootCmd.AddCommand(AddCmd())
	rootCmd.AddCommand(UpdateCmd())
	rootCmd.AddCommand(DeleteCmd())
	rootCmd.AddCommand(ClearCmd())
	rootCmd.AddCommand(ListCmd())
	rootCmd.AddCommand(FindCmd())
	rootCmd.AddCommand(FilterCmd())
	rootCmd.AddCommand(CountCmd())
	rootCmd.AddCommand(GuideCmd())

	rootCmd.AddCommand(ConfigCmd())

	return rootCmd
}

// loadConfig resolves settings from file and flags and hands them to wire
// before any service is built.
func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	wire.Configure(cfg)
	return nil
}

func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	v := viper.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return nil, err
	}
	configFile, _ := cmd.Flags().GetString("config")
	return config.Load(v, configFile)
}
