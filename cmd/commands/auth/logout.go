package auth

import (
	"errors"
	"fmt"

	"sondreal/domctl/internal/services/auth"

	"github.com/spf13/cobra"
)

func LogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored API credentials",
		Long: `Remove the API token/secret pair from the keychain.

Example:
  domctl auth logout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := auth.DefaultStore()

			removed := false
			for _, key := range []string{auth.KeyToken, auth.KeySecret} {
				err := store.Delete(key)
				switch {
				case err == nil:
					removed = true
				case errors.Is(err, auth.ErrCredentialNotFound):
					// Nothing stored under this key.
				default:
					return err
				}
			}

			if removed {
				fmt.Fprintln(cmd.OutOrStdout(), "Credentials removed.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "No credentials stored.")
			}
			return nil
		},
		SilenceUsage: true,
	}
}
