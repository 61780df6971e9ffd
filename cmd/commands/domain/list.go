package domain

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"sondreal/domctl/internal/domeneshop"

	"github.com/spf13/cobra"
)

// ListCommand returns the "domain list" subcommand.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List domains in your account",
		Long: `List all domains in your account.

Examples:
  domctl domain list
  domctl domain list --filter example.no`,
		Args: cobra.NoArgs,
		Run:  runList,
	}

	cmd.Flags().String("filter", "", "Only show domains matching this name or suffix")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) {
	filter, _ := cmd.Flags().GetString("filter")
	output, _ := cmd.Flags().GetString("output")

	svc, err := newService(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	domains, err := svc.List(context.Background(), filter)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error listing domains: %v\n", err)
		return
	}

	if output == "json" {
		printDomainsJSON(cmd, domains)
		return
	}

	if len(domains) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No domains found.")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tDOMAIN\tSTATUS\tEXPIRES\tRENEW\tSERVICES")
	fmt.Fprintln(w, "--\t------\t------\t-------\t-----\t--------")

	for _, d := range domains {
		renew := "no"
		if d.Renew {
			renew = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			d.ID,
			d.Name,
			d.Status,
			d.ExpiryDate,
			renew,
			formatServices(d.Services),
		)
	}

	w.Flush()
}

// formatServices renders the active services as a compact comma list.
func formatServices(s domeneshop.DomainServices) string {
	var parts []string
	if s.Registrar {
		parts = append(parts, "registrar")
	}
	if s.DNS {
		parts = append(parts, "dns")
	}
	if s.Email {
		parts = append(parts, "email")
	}
	if s.Webhotel != "" && s.Webhotel != "none" {
		parts = append(parts, "webhotel:"+s.Webhotel)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ",")
}
