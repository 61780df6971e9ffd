package dns

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"sondreal/domctl/internal/domeneshop"
	"sondreal/domctl/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ListCommand returns the "dns list" subcommand.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List DNS records for a domain",
		Long: `List all DNS records for the domain.

In an interactive terminal this opens a browsable record view.

Examples:
  domctl dns list --domain example.no
  domctl dns list --domain example.no --type A
  domctl dns list --domain example.no --host www`,
		Args: cobra.NoArgs,
		Run:  runList,
	}

	cmd.Flags().String("type", "", "Filter records by type (A, AAAA, CNAME, MX, TXT, etc.)")
	cmd.Flags().String("host", "", "Filter records by host (subdomain)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) {
	typeFilter, _ := cmd.Flags().GetString("type")
	hostFilter, _ := cmd.Flags().GetString("host")

	svc, resolver, err := newServices(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	d, err := resolveDomain(cmd, resolver)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		if _, err := tui.RunDNSApp(svc, d.ID, d.Name); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error running TUI: %v\n", err)
		}
		return
	}

	var filter *domeneshop.RecordFilter
	if typeFilter != "" || hostFilter != "" {
		filter = &domeneshop.RecordFilter{Host: hostFilter, Type: domeneshop.RecordType(typeFilter)}
	}

	records, err := svc.List(context.Background(), d.ID, filter)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error listing records: %v\n", err)
		return
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No records found.")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tHOST\tTYPE\tDATA\tTTL\tPRIORITY")
	fmt.Fprintln(w, "--\t----\t----\t----\t---\t--------")

	for _, r := range records {
		prio := ""
		if r.Priority != nil {
			prio = fmt.Sprintf("%d", *r.Priority)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n",
			r.ID,
			r.Host,
			string(r.Type),
			r.Data,
			r.TTL,
			prio,
		)
	}

	w.Flush()
}
