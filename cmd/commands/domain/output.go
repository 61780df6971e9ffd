package domain

import (
	"encoding/json"

	"sondreal/domctl/internal/domeneshop"

	"github.com/spf13/cobra"
)

// printDomainJSON encodes a domain as indented JSON to the command's stdout.
func printDomainJSON(cmd *cobra.Command, d *domeneshop.Domain) {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.Encode(d)
}

// printDomainsJSON encodes a slice of domains as indented JSON to stdout.
func printDomainsJSON(cmd *cobra.Command, domains []domeneshop.Domain) {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.Encode(domains)
}
