package forward

import (
	"context"
	"errors"
	"fmt"
	"os"

	"sondreal/domctl/internal/auditlog"
	"sondreal/domctl/internal/domeneshop"
	"sondreal/domctl/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// CreateCommand returns the "forward create" subcommand.
func CreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an HTTP forward",
		Long: `Create a new HTTP forward for the domain.

Without --url, and when running in a terminal, an interactive wizard
walks through the options instead.

Examples:
  domctl forward create --domain example.no --host www --url https://example.org/
  domctl forward create --domain example.no --url https://example.org/ --frame
  domctl forward create --domain example.no`,
		Args:         cobra.NoArgs,
		RunE:         runCreate,
		SilenceUsage: true,
	}

	cmd.Flags().String("host", "", "Host (subdomain; leave empty for the root domain)")
	cmd.Flags().String("url", "", "Target URL to forward to")
	cmd.Flags().Bool("frame", false, "Serve the target in a frame instead of redirecting")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	host, _ := cmd.Flags().GetString("host")
	targetURL, _ := cmd.Flags().GetString("url")
	frame, _ := cmd.Flags().GetBool("frame")

	svc, resolver, err := newServices(cmd)
	if err != nil {
		return err
	}

	d, err := resolveDomain(cmd, resolver)
	if err != nil {
		return err
	}

	f := domeneshop.Forward{Host: host, URL: targetURL, Frame: frame}

	// No target URL: walk through the wizard when interactive.
	if targetURL == "" {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("--url is required outside a terminal")
		}
		result, err := tui.ForwardForm(svc, d.ID, d.Name, f)
		if err != nil {
			if errors.Is(err, tui.ErrAborted) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			return err
		}
		f = *result
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Domain:       d.Name,
		ResourceType: "forward",
		ResourceName: f.Host,
	}))

	if err := svc.Create(context.Background(), d.ID, f); err != nil {
		return fmt.Errorf("failed to create forward: %w", err)
	}

	host = f.Host
	if host == "" {
		host = "@"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created forward %s -> %s\n", host, f.URL)
	return nil
}
