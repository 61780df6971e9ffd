package forward

import (
	"context"
	"fmt"

	"sondreal/domctl/internal/auditlog"
	"sondreal/domctl/internal/domeneshop"

	"github.com/spf13/cobra"
)

// UpdateCommand returns the "forward update" subcommand.
func UpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <host>",
		Short: "Update an HTTP forward",
		Long: `Update the forward for the given host. Use @ for the root domain.

Forwards have no separate ID, so moving one to a different host is done
with --rename: the new forward is created first and the old one removed
afterwards.

Examples:
  domctl forward update www --domain example.no --url https://new.example.org/
  domctl forward update @ --domain example.no --url https://example.org/ --frame
  domctl forward update old --domain example.no --url https://example.org/ --rename new`,
		Args:         cobra.ExactArgs(1),
		RunE:         runUpdate,
		SilenceUsage: true,
	}

	cmd.Flags().String("url", "", "New target URL [required]")
	cmd.Flags().Bool("frame", false, "Serve the target in a frame instead of redirecting")
	cmd.Flags().String("rename", "", "Move the forward to this host")

	cmd.MarkFlagRequired("url")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	host := args[0]
	targetURL, _ := cmd.Flags().GetString("url")
	frame, _ := cmd.Flags().GetBool("frame")
	rename, _ := cmd.Flags().GetString("rename")

	svc, resolver, err := newServices(cmd)
	if err != nil {
		return err
	}

	d, err := resolveDomain(cmd, resolver)
	if err != nil {
		return err
	}

	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Domain:       d.Name,
		ResourceType: "forward",
		ResourceName: host,
	}))

	if rename != "" {
		f := domeneshop.Forward{Host: rename, URL: targetURL, Frame: frame}
		if err := svc.Rename(context.Background(), d.ID, host, f); err != nil {
			return fmt.Errorf("failed to rename forward: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Moved forward %s -> %s\n", host, rename)
		return nil
	}

	f := domeneshop.Forward{Host: host, URL: targetURL, Frame: frame}
	if err := svc.Update(context.Background(), d.ID, f); err != nil {
		return fmt.Errorf("failed to update forward: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated forward %s\n", host)
	return nil
}
