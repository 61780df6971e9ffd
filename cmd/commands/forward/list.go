package forward

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// ListCommand returns the "forward list" subcommand.
func ListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List HTTP forwards for a domain",
		Long: `List all HTTP forwards for the domain.

Example:
  domctl forward list --domain example.no`,
		Args: cobra.NoArgs,
		Run:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) {
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

	forwards, err := svc.List(context.Background(), d.ID)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error listing forwards: %v\n", err)
		return
	}

	if len(forwards) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No forwards found.")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "HOST\tFRAME\tURL")
	fmt.Fprintln(w, "----\t-----\t---")

	for _, f := range forwards {
		frame := "no"
		if f.Frame {
			frame = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", f.Host, frame, f.URL)
	}

	w.Flush()
}
