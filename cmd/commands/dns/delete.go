package dns

import (
	"context"
	"fmt"
	"strconv"

	"sondreal/domctl/internal/auditlog"

	"github.com/spf13/cobra"
)

// DeleteCommand returns the "dns delete" subcommand.
func DeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a DNS record",
		Long: `Delete a DNS record by its ID.

Example:
  domctl dns delete 1001 --domain example.no`,
		Args:         cobra.ExactArgs(1),
		RunE:         runDelete,
		SilenceUsage: true,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	recordID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("record ID must be a number, got %q", args[0])
	}

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
		ResourceType: "record",
		ResourceID:   args[0],
	}))

	if err := svc.Delete(context.Background(), d.ID, recordID); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted record %d\n", recordID)
	return nil
}
