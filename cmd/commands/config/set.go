package config

import (
	"fmt"
	"net/url"
	"strings"

	"sondreal/domctl/internal/config"
	"sondreal/domctl/internal/util"

	"github.com/spf13/cobra"
)

// SetCommand returns the "config set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: "Set a persistent configuration value.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  domctl config set default-domain example.no\n" +
			"  domctl config set api-url https://api.domeneshop.no/v0",
		Args: cobra.ExactArgs(2),
		Run:  runSet,
	}

	return cmd
}

// validators maps key names to optional pre-save validation functions.
// Keys not present in this map have no extra validation.
var validators = map[string]func(cmd *cobra.Command, value string) error{
	"api-url": validateAPIURL,
}

// normalizers maps key names to value normalization functions. Keys not
// present keep the value as typed, trimmed.
var normalizers = map[string]func(value string) string{
	"default-domain": util.NormalizeKey,
}

func runSet(cmd *cobra.Command, args []string) {
	key := util.NormalizeKey(args[0])
	value := args[1]

	spec := config.Lookup(key)
	if spec == nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: unknown configuration key %q\n", args[0])
		fmt.Fprintf(cmd.ErrOrStderr(), "Valid keys: %s\n", strings.Join(config.KeyNames(), ", "))
		return
	}

	if validate, ok := validators[spec.Name]; ok {
		if err := validate(cmd, value); err != nil {
			return // validate already printed the error
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	normalized := strings.TrimSpace(value)
	if normalize, ok := normalizers[spec.Name]; ok {
		normalized = normalize(value)
	}
	spec.Set(cfg, normalized)
	if err := cfg.Save(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", spec.Name, normalized)
}

// validateAPIURL checks that the value is an absolute http(s) URL.
func validateAPIURL(cmd *cobra.Command, value string) error {
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: api-url must be an absolute http(s) URL, got %q\n", value)
		return fmt.Errorf("invalid api-url %q", value)
	}
	return nil
}
