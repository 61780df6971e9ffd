package invoice

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"sondreal/domctl/internal/tui/components"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ListCommand returns the "invoice list" subcommand.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices on the account",
		Long: `List invoices and credit notes on the account.

In an interactive terminal a bar chart of amounts by month is shown
below the table.

Examples:
  domctl invoice list
  domctl invoice list --status unpaid`,
		Args: cobra.NoArgs,
		Run:  runList,
	}

	cmd.Flags().String("status", "", "Filter by status (unpaid, paid, settled)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) {
	status, _ := cmd.Flags().GetString("status")

	svc, err := newService(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	invoices, err := svc.List(context.Background(), status)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error listing invoices: %v\n", err)
		return
	}

	if len(invoices) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No invoices found.")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tTYPE\tAMOUNT\tCURRENCY\tISSUED\tDUE\tSTATUS")
	fmt.Fprintln(w, "------\t----\t------\t--------\t------\t---\t------")

	for _, inv := range invoices {
		due := inv.DueDate
		if due == "" {
			due = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\t%s\n",
			inv.ID,
			inv.Type,
			inv.Amount,
			inv.Currency,
			inv.IssuedDate,
			due,
			inv.Status,
		)
	}

	w.Flush()

	if term.IsTerminal(int(os.Stdout.Fd())) {
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width < 20 {
			width = 80
		}
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), components.InvoiceChart(invoices, width))
	}
}
