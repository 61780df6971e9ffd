package forward

import (
	"context"
	"fmt"

	"sondreal/domctl/internal/auditlog"

	"github.com/spf13/cobra"
)

// DeleteCommand returns the "forward delete" subcommand.
func DeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <host>",
		Short: "Delete an HTTP forward",
		Long: `Delete the forward for the given host. Use @ for the root domain.

Example:
  domctl forward delete www --domain example.no`,
		Args:         cobra.ExactArgs(1),
		RunE:         runDelete,
		SilenceUsage: true,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	host := args[0]

	svc, resolver, err := newServices(cmd)
	if err != nil {
		return err
	}

	d, err := resolveDomain(cmd, resolver)
	if err != nil {
		return err
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Domain:       d.Name,
		ResourceType: "forward",
		ResourceName: host,
	}))

	if err := svc.Delete(context.Background(), d.ID, host); err != nil {
		return fmt.Errorf("failed to delete forward: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted forward %s\n", host)
	return nil
}
