package invoice

import (
	"context"
	"os"

	"sondreal/domctl/internal/api"
	"sondreal/domctl/internal/domeneshop"
	"sondreal/domctl/internal/services/auth"
	"sondreal/domctl/internal/services/invoices"
	"sondreal/domctl/internal/swrcache"

	"github.com/spf13/cobra"
)

// NewCommand returns the top-level "invoice" Cobra command with all subcommands attached.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "View invoices and credit notes",
		Long:  `List invoices on the account and show details for a single invoice.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(ShowCommand())

	return cmd
}

// invoiceService is the slice of the invoices service these commands use.
type invoiceService interface {
	List(ctx context.Context, status string) ([]domeneshop.Invoice, error)
	Get(ctx context.Context, invoiceID int) (*domeneshop.Invoice, error)
}

// newService builds the invoice service from stored credentials. Tests
// swap this out to inject a mock.
var newService = func(cmd *cobra.Command) (invoiceService, error) {
	client, err := api.NewClient(auth.DefaultStore())
	if err != nil {
		return nil, err
	}

	if os.Getenv("DOMCTL_NO_CACHE") == "1" {
		return invoices.New(client), nil
	}
	return invoices.New(client, invoices.WithCache(swrcache.NewDefault())), nil
}
