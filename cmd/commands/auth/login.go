package auth

import (
	"fmt"
	"os"
	"strings"

	"sondreal/domctl/internal/services/auth"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the API token and secret",
		Long: `Store the API token/secret pair using the local keychain.

Tokens are created in the registrar control panel under API administration.

Example:
  domctl auth login`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			token, err := cmd.Flags().GetString("token")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			secret, err := cmd.Flags().GetString("secret")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}

			token = strings.TrimSpace(token)
			if token == "" {
				token, err = promptSecret("Enter API token: ")
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					return
				}
			}
			if token == "" {
				fmt.Fprintln(os.Stderr, "token cannot be empty")
				return
			}

			secret = strings.TrimSpace(secret)
			if secret == "" {
				secret, err = promptSecret("Enter API secret: ")
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					return
				}
			}
			if secret == "" {
				fmt.Fprintln(os.Stderr, "secret cannot be empty")
				return
			}

			store := auth.DefaultStore()
			if err := store.Set(auth.KeyToken, token); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			if err := store.Set(auth.KeySecret, secret); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}

			fmt.Fprintln(os.Stdout, "Credentials saved.")
		},
	}

	cmd.Flags().String("token", "", "API token (optional, overrides prompt)")
	cmd.Flags().String("secret", "", "API secret (optional, overrides prompt)")

	return cmd
}

func promptSecret(label string) (string, error) {
	fmt.Fprint(os.Stdout, label)
	bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stdout)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(bytes)), nil
}
