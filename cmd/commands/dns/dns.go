package dns

import (
	"context"
	"fmt"
	"os"

	"sondreal/domctl/internal/api"
	"sondreal/domctl/internal/config"
	"sondreal/domctl/internal/domeneshop"
	"sondreal/domctl/internal/services/auth"
	dnssvc "sondreal/domctl/internal/services/dns"
	"sondreal/domctl/internal/services/domains"
	"sondreal/domctl/internal/swrcache"

	"github.com/spf13/cobra"
)

// NewCommand returns the top-level "dns" Cobra command with all subcommands attached.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "dns",
		Short:             "Manage DNS records for a domain",
		Long:              `Create, list, update, and delete DNS records for a domain in your account.`,
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

// recordService is the slice of the DNS service these commands use.
type recordService interface {
	List(ctx context.Context, domainID int, filter *domeneshop.RecordFilter) ([]domeneshop.Record, error)
	Get(ctx context.Context, domainID, recordID int) (*domeneshop.Record, error)
	Create(ctx context.Context, domainID int, data domeneshop.RecordData) (int, error)
	Update(ctx context.Context, domainID, recordID int, data domeneshop.RecordData) error
	Delete(ctx context.Context, domainID, recordID int) error
}

// domainResolver turns a domain name or numeric ID into a Domain.
type domainResolver interface {
	Resolve(ctx context.Context, ref string) (*domeneshop.Domain, error)
}

// newServices builds the DNS and domain services from stored credentials.
// Tests swap this out to inject mocks.
var newServices = func(cmd *cobra.Command) (recordService, domainResolver, error) {
	client, err := api.NewClient(auth.DefaultStore())
	if err != nil {
		return nil, nil, err
	}

	if os.Getenv("DOMCTL_NO_CACHE") == "1" {
		return dnssvc.New(client), domains.New(client), nil
	}

	cache := swrcache.NewDefault()
	return dnssvc.New(client, dnssvc.WithCache(cache)), domains.New(client, domains.WithCache(cache)), nil
}

// resolveDomain resolves the --domain flag value to a concrete domain.
func resolveDomain(cmd *cobra.Command, resolver domainResolver) (*domeneshop.Domain, error) {
	ref := cmd.Flag("domain").Value.String()
	return resolver.Resolve(context.Background(), ref)
}
