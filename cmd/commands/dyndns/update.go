package dyndns

import (
	"context"
	"fmt"
	"strings"

	"sondreal/domctl/internal/auditlog"

	"github.com/spf13/cobra"
)

// UpdateCommand returns the "dyndns update" subcommand.
func UpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <hostname>...",
		Short: "Point hostnames at an IP address",
		Long: `Update the DNS record for each hostname. Without --ip the server
uses the connection's source address, which updates the records to this
machine's public IP.

Hostnames are updated concurrently; one failing hostname does not stop
the others.

Examples:
  domctl dyndns update home.example.no
  domctl dyndns update home.example.no nas.example.no
  domctl dyndns update home.example.no --ip 203.0.113.7`,
		Args: cobra.MinimumNArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("ip", "", "IP address to set (defaults to the connection's source address)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ip, _ := cmd.Flags().GetString("ip")

	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		ResourceType: "dyndns",
		ResourceName: strings.Join(args, ","),
	}))

	results, err := svc.Update(context.Background(), args, ip)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "%s: error: %v\n", r.Hostname, r.Err)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: updated\n", r.Hostname)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d hostname(s) failed", failed, len(results))
	}
	return nil
}
