package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/ticketdesk/internal/config"
)

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the ticketdesk configuration file",
		// Overrides the root hook: config commands never open the database
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	}
	cmd.AddCommand(configInitCmd())
	return cmd
}

func configInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the current settings",
		Long: fmt.Sprintf(`Write the effective settings to a YAML file.

The file is written to --config, or ./%s when no path is given.
Values given with --db, --log-file and --log-level are written instead of
the defaults.`, config.FileName),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = config.FileName
			}

			// Read without --config so a missing target is not an error
			if err := cmd.Flags().Set("config", ""); err != nil {
				return err
			}
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			if err := config.Save(path, cfg, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Configuração gravada em %s\n", path)
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "overwrite an existing file")
	return cmd
}
