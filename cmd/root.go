package cmd

import (
	"os"
	"strings"
	"time"

	auditcmd "sondreal/domctl/cmd/commands/audit"
	"sondreal/domctl/cmd/commands/auth"
	cfgcmd "sondreal/domctl/cmd/commands/config"
	"sondreal/domctl/cmd/commands/dns"
	domaincmd "sondreal/domctl/cmd/commands/domain"
	"sondreal/domctl/cmd/commands/dyndns"
	"sondreal/domctl/cmd/commands/forward"
	"sondreal/domctl/cmd/commands/invoice"
	"sondreal/domctl/internal/auditlog"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "domctl",
		Short: "A CLI tool for managing domains, DNS records, and forwards",
		Long: `domctl is a command-line tool for managing domains registered with
Domeneshop. It covers DNS records, HTTP forwards, dynamic DNS updates,
and invoices, with interactive TUI views for guided workflows.

Quick start:
  domctl auth login                # Store your API token and secret
  domctl domain list               # List all domains
  domctl dns list                  # Browse DNS records interactively
  domctl dyndns update home.example.no`,
	}

	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(domaincmd.NewCommand())
	cmd.AddCommand(dns.NewCommand())
	cmd.AddCommand(forward.NewCommand())
	cmd.AddCommand(invoice.NewCommand())
	cmd.AddCommand(dyndns.NewCommand())
	cmd.AddCommand(auditcmd.NewCommand())

	return cmd
}

// auditExempt lists command groups that never produce audit entries:
// the audit viewer itself, credential handling, and shell plumbing.
var auditExempt = map[string]struct{}{
	"audit":      {},
	"auth":       {},
	"help":       {},
	"completion": {},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	root := rootCmd()

	start := time.Now()
	executed, err := root.ExecuteC()

	recordAudit(executed, err, start)

	if err != nil {
		os.Exit(1)
	}
}

// recordAudit writes a best-effort audit entry for the executed command.
// Failures to open the repository or save the entry are silently
// discarded so audit problems never break the command itself.
func recordAudit(cmd *cobra.Command, runErr error, start time.Time) {
	if cmd == nil || !cmd.HasParent() {
		return
	}

	parts := strings.Fields(cmd.CommandPath())
	if len(parts) > 1 {
		if _, exempt := auditExempt[parts[1]]; exempt {
			return
		}
	}

	repo, err := auditlog.Open()
	if err != nil {
		return
	}
	defer repo.Close()

	meta := auditlog.MetadataFromContext(cmd.Context())

	entry := &auditlog.AuditEntry{
		Timestamp:    start,
		Command:      cmd.CommandPath(),
		Args:         strings.Join(auditlog.SanitizeArgs(os.Args[1:]), " "),
		Domain:       meta.Domain,
		ResourceType: meta.ResourceType,
		ResourceID:   meta.ResourceID,
		ResourceName: meta.ResourceName,
		DurationMs:   time.Since(start).Milliseconds(),
	}
	if runErr != nil {
		entry.Outcome = auditlog.OutcomeError
		entry.Detail = runErr.Error()
	} else {
		entry.Outcome = auditlog.OutcomeSuccess
	}
	_ = repo.Save(entry)
}
