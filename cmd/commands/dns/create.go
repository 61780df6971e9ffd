package dns

import (
	"context"
	"fmt"

	"sondreal/domctl/internal/auditlog"
	"sondreal/domctl/internal/domeneshop"

	"github.com/spf13/cobra"
)

// CreateCommand returns the "dns create" subcommand.
func CreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a DNS record",
		Long: `Create a new DNS record for the domain.

Examples:
  domctl dns create --domain example.no --type A --host www --data 192.0.2.1
  domctl dns create --domain example.no --type MX --data mail.example.no --priority 10
  domctl dns create --domain example.no --type TXT --host _dmarc --data "v=DMARC1; p=none"`,
		Args:         cobra.NoArgs,
		RunE:         runCreate,
		SilenceUsage: true,
	}

	cmd.Flags().String("type", "", "Record type (A, AAAA, CNAME, MX, TXT, etc.) [required]")
	cmd.Flags().String("host", "", "Host (subdomain; leave empty for the root domain)")
	cmd.Flags().String("data", "", "Record data (IP address, hostname, text value, etc.) [required]")
	cmd.Flags().Int("ttl", 0, "Time-to-live in seconds (omit for the server default)")
	cmd.Flags().Int("priority", 0, "Record priority (for MX and SRV)")
	cmd.Flags().Int("weight", 0, "Record weight (for SRV)")
	cmd.Flags().Int("port", 0, "Record port (for SRV)")

	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("data")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
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
		ResourceName: data.Host,
	}))

	id, err := svc.Create(context.Background(), d.ID, data)
	if err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created record %d (%s %s -> %s)\n",
		id, data.Type, data.Host, data.Data)
	return nil
}

// recordDataFromFlags collects the record fields shared by create and
// update. Optional integer extras are only sent when the flag was set.
func recordDataFromFlags(cmd *cobra.Command) domeneshop.RecordData {
	recordType, _ := cmd.Flags().GetString("type")
	host, _ := cmd.Flags().GetString("host")
	dataValue, _ := cmd.Flags().GetString("data")
	ttl, _ := cmd.Flags().GetInt("ttl")

	data := domeneshop.RecordData{
		Host: host,
		Type: domeneshop.RecordType(recordType),
		Data: dataValue,
		TTL:  ttl,
	}

	if cmd.Flags().Changed("priority") {
		v, _ := cmd.Flags().GetInt("priority")
		data.Priority = domeneshop.Ptr(v)
	}
	if cmd.Flags().Changed("weight") {
		v, _ := cmd.Flags().GetInt("weight")
		data.Weight = domeneshop.Ptr(v)
	}
	if cmd.Flags().Changed("port") {
		v, _ := cmd.Flags().GetInt("port")
		data.Port = domeneshop.Ptr(v)
	}

	return data
}
