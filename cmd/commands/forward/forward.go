package forward

import (
	"context"
	"fmt"

	"sondreal/domctl/internal/api"
	"sondreal/domctl/internal/config"
	"sondreal/domctl/internal/domeneshop"
	"sondreal/domctl/internal/services/auth"
	"sondreal/domctl/internal/services/domains"
	"sondreal/domctl/internal/services/forwards"
	"sondreal/domctl/internal/swrcache"

	"github.com/spf13/cobra"
)

// NewCommand returns the top-level "forward" Cobra command with all subcommands attached.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "forward",
		Short:             "Manage HTTP forwards for a domain",
		Long:              `Create, list, update, and delete HTTP forwards (URL redirects) for a domain.`,
		PersistentPreRunE: resolveDomainFlag,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(CreateCommand())
	cmd.AddCommand(UpdateCommand())
	cmd.AddCommand(DeleteCommand())

	cmd.PersistentFlags().String("domain", "", "Domain name or ID to operate on (overrides default)")

	return cmd
}

// resolveDomainFlag ensures the --domain flag has a value, falling back to
// the default-domain config key when the flag was not explicitly set.
func resolveDomainFlag(cmd *cobra.Command, args []string) error {
	if cmd.Flag("domain").Changed {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.DefaultDomain != "" {
		if err := cmd.Flag("domain").Value.Set(cfg.DefaultDomain); err != nil {
			return fmt.Errorf("failed to set domain flag: %w", err)
		}
		return nil
	}

	return fmt.Errorf("no domain specified: use --domain flag or set a default with 'domctl config set default-domain <name>'")
}

// forwardService is the slice of the forwards service these commands use.
type forwardService interface {
	List(ctx context.Context, domainID int) ([]domeneshop.Forward, error)
	Get(ctx context.Context, domainID int, host string) (*domeneshop.Forward, error)
	Create(ctx context.Context, domainID int, f domeneshop.Forward) error
	Update(ctx context.Context, domainID int, f domeneshop.Forward) error
	Delete(ctx context.Context, domainID int, host string) error
	Rename(ctx context.Context, domainID int, oldHost string, f domeneshop.Forward) error
}

// domainResolver turns a domain name or numeric ID into a Domain.
type domainResolver interface {
	Resolve(ctx context.Context, ref string) (*domeneshop.Domain, error)
}

// newServices builds the forward and domain services from stored
// credentials. Tests swap this out to inject mocks.
var newServices = func(cmd *cobra.Command) (forwardService, domainResolver, error) {
	client, err := api.NewClient(auth.DefaultStore())
	if err != nil {
		return nil, nil, err
	}
	return forwards.New(client), domains.New(client, domains.WithCache(swrcache.NewDefault())), nil
}

// resolveDomain resolves the --domain flag value to a concrete domain.
func resolveDomain(cmd *cobra.Command, resolver domainResolver) (*domeneshop.Domain, error) {
	ref := cmd.Flag("domain").Value.String()
	return resolver.Resolve(context.Background(), ref)
}
