package domain

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"sondreal/domctl/internal/auditlog"
	"sondreal/domctl/internal/tui/styles"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ShowCommand returns the "domain show" subcommand.
func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <domain>",
		Short: "Show details for a domain",
		Long: `Show registration details for a domain, by name or numeric ID.

Examples:
  domctl domain show example.no
  domctl domain show 184
  domctl domain show example.no -o json`,
		Args: cobra.ExactArgs(1),
		Run:  runShow,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) {
	svc, err := newService(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	d, err := svc.Resolve(context.Background(), args[0])
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Domain:       d.Name,
		ResourceType: "domain",
		ResourceID:   fmt.Sprintf("%d", d.ID),
		ResourceName: d.Name,
	}))

	if output, _ := cmd.Flags().GetString("output"); output == "json" {
		printDomainJSON(cmd, d)
		return
	}

	renew := "no"
	if d.Renew {
		renew = "yes"
	}

	status := d.Status
	if term.IsTerminal(int(os.Stdout.Fd())) {
		status = styles.StatusIndicator(d.Status)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Domain:\t%s\n", d.Name)
	fmt.Fprintf(w, "ID:\t%d\n", d.ID)
	fmt.Fprintf(w, "Status:\t%s\n", status)
	fmt.Fprintf(w, "Registered:\t%s\n", d.RegisteredDate)
	fmt.Fprintf(w, "Expires:\t%s\n", d.ExpiryDate)
	fmt.Fprintf(w, "Auto-renew:\t%s\n", renew)
	fmt.Fprintf(w, "Registrant:\t%s\n", d.Registrant)
	fmt.Fprintf(w, "Nameservers:\t%s\n", strings.Join(d.Nameservers, ", "))
	fmt.Fprintf(w, "Services:\t%s\n", formatServices(d.Services))
	w.Flush()
}
