package invoice

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"sondreal/domctl/internal/tui/styles"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ShowCommand returns the "invoice show" subcommand.
func ShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <number>",
		Short: "Show details for an invoice",
		Long: `Show details for a single invoice or credit note by number.

Example:
  domctl invoice show 1001`,
		Args: cobra.ExactArgs(1),
		Run:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) {
	invoiceID, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: invoice number must be a number, got %q\n", args[0])
		return
	}

	svc, err := newService(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	inv, err := svc.Get(context.Background(), invoiceID)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	status := inv.Status
	if term.IsTerminal(int(os.Stdout.Fd())) {
		status = styles.StatusIndicator(inv.Status)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Number:\t%d\n", inv.ID)
	fmt.Fprintf(w, "Type:\t%s\n", inv.Type)
	fmt.Fprintf(w, "Amount:\t%d %s\n", inv.Amount, inv.Currency)
	fmt.Fprintf(w, "Status:\t%s\n", status)
	fmt.Fprintf(w, "Issued:\t%s\n", inv.IssuedDate)
	if inv.DueDate != "" {
		fmt.Fprintf(w, "Due:\t%s\n", inv.DueDate)
	}
	if inv.PaidDate != "" {
		fmt.Fprintf(w, "Paid:\t%s\n", inv.PaidDate)
	}
	fmt.Fprintf(w, "URL:\t%s\n", inv.URL)
	w.Flush()
}
