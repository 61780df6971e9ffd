package auth

import (
	"errors"
	"fmt"
	"os"

	"sondreal/domctl/internal/services/auth"
	"sondreal/domctl/internal/tui"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether API credentials are stored",
		Long: `Show whether the API token/secret pair is stored in the keychain.

Example:
  domctl auth status`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := auth.DefaultStore()

			// Use TUI in interactive terminal.
			if term.IsTerminal(int(os.Stdout.Fd())) {
				if err := tui.RunAuthStatus(store); err != nil {
					return fmt.Errorf("auth status failed: %w", err)
				}
				return nil
			}

			// Non-interactive fallback.
			for _, key := range []string{auth.KeyToken, auth.KeySecret} {
				_, err := store.Get(key)
				switch {
				case err == nil:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: stored\n", key)
				case errors.Is(err, auth.ErrCredentialNotFound):
					fmt.Fprintf(cmd.OutOrStdout(), "%s: not stored\n", key)
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: error (%v)\n", key, err)
				}
			}
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
