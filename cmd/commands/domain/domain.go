package domain

import (
	"context"
	"os"

	"sondreal/domctl/internal/api"
	"sondreal/domctl/internal/domeneshop"
	"sondreal/domctl/internal/services/auth"
	"sondreal/domctl/internal/services/domains"
	"sondreal/domctl/internal/swrcache"

	"github.com/spf13/cobra"
)

// NewCommand returns the top-level "domain" Cobra command with all subcommands attached.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domain",
		Short: "Manage domains in your account",
		Long:  `List domains and show registration details for a single domain.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(ShowCommand())

	return cmd
}

// domainService is the slice of the domains service these commands use.
type domainService interface {
	List(ctx context.Context, filter string) ([]domeneshop.Domain, error)
	Resolve(ctx context.Context, ref string) (*domeneshop.Domain, error)
}

// newService builds the domain service from stored credentials. Tests
// swap this out to inject a mock.
var newService = func(cmd *cobra.Command) (domainService, error) {
	client, err := api.NewClient(auth.DefaultStore())
	if err != nil {
		return nil, err
	}

	if os.Getenv("DOMCTL_NO_CACHE") == "1" {
		return domains.New(client), nil
	}
	return domains.New(client, domains.WithCache(swrcache.NewDefault())), nil
}
