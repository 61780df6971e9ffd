package dyndns

import (
	"context"

	"sondreal/domctl/internal/api"
	"sondreal/domctl/internal/services/auth"
	"sondreal/domctl/internal/services/dyndns"

	"github.com/spf13/cobra"
)

// NewCommand returns the top-level "dyndns" Cobra command with all subcommands attached.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dyndns",
		Short: "Update dynamic DNS hostnames",
		Long: `Point hostnames at this machine's public IP address, or at an
explicit address, using the dynamic DNS endpoint.`,
	}

	cmd.AddCommand(UpdateCommand())

	return cmd
}

// updateService is the slice of the dyndns service these commands use.
type updateService interface {
	Update(ctx context.Context, hostnames []string, ip string) ([]dyndns.Result, error)
}

// newService builds the dyndns service from stored credentials. Tests
// swap this out to inject a mock.
var newService = func(cmd *cobra.Command) (updateService, error) {
	client, err := api.NewClient(auth.DefaultStore())
	if err != nil {
		return nil, err
	}
	return dyndns.New(client), nil
}
