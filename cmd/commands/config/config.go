package config

import (
	"sondreal/domctl/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage domctl configuration",
		Long: "View and modify persistent domctl settings.\n\n" +
			"Configuration is stored at ~/.config/domctl/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
