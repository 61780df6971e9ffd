package dns

import (
	"context"
	"fmt"
	"strconv"

	"sondreal/domctl/internal/auditlog"

	"github.com/spf13/cobra"
)

// UpdateCommand returns the "dns update" subcommand.
func UpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a DNS record",
		Long: `Replace an existing DNS record by its ID. All fields are replaced,
so pass the full record, not just the changed fields.

Examples:
  domctl dns update 1001 --domain example.no --type A --host www --data 192.0.2.9
  domctl dns update 1001 --domain example.no --type A --host www --data 192.0.2.9 --ttl 3600`,
		Args:         cobra.ExactArgs(1),
		RunE:         runUpdate,
		SilenceUsage: true,
	}

	cmd.Flags().String("type", "", "Record type [required]")
	cmd.Flags().String("host", "", "Host (subdomain; leave empty for the root domain)")
	cmd.Flags().String("data", "", "Record data [required]")
	cmd.Flags().Int("ttl", 0, "Time-to-live in seconds (omit for the server default)")
	cmd.Flags().Int("priority", 0, "Record priority (for MX and SRV)")
	cmd.Flags().Int("weight", 0, "Record weight (for SRV)")
	cmd.Flags().Int("port", 0, "Record port (for SRV)")

	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("data")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
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

	data := recordDataFromFlags(cmd)

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Domain:       d.Name,
		ResourceType: "record",
		ResourceID:   args[0],
	}))

	if err := svc.Update(context.Background(), d.ID, recordID, data); err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated record %d\n", recordID)
	return nil
}
