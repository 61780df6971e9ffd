// Package api builds authenticated Domeneshop clients for the CLI.
//
// Credentials come from the environment when set, falling back to the
// system keychain. The base URL can be overridden for testing against
// a different endpoint.
package api

import (
	"errors"
	"fmt"
	"os"

	"sondreal/domctl/internal/config"
	"sondreal/domctl/internal/domeneshop"
	"sondreal/domctl/internal/services/auth"
)

// Environment variables recognized by NewClient.
const (
	EnvToken  = "DOMCTL_API_TOKEN"
	EnvSecret = "DOMCTL_API_SECRET"
	EnvAPIURL = "DOMCTL_API_URL"
)

// NewClient returns a Domeneshop client authenticated with the stored
// credentials. DOMCTL_API_TOKEN and DOMCTL_API_SECRET take precedence
// over the keychain; DOMCTL_API_URL takes precedence over the api-url
// config key.
func NewClient(store auth.Store) (*domeneshop.Client, error) {
	token := os.Getenv(EnvToken)
	secret := os.Getenv(EnvSecret)

	if token == "" || secret == "" {
		storedToken, storedSecret, err := auth.Credentials(store)
		if err != nil {
			if errors.Is(err, auth.ErrCredentialNotFound) {
				return nil, fmt.Errorf("not logged in: run 'domctl auth login' or set %s and %s", EnvToken, EnvSecret)
			}
			return nil, fmt.Errorf("failed to read credentials: %w", err)
		}
		if token == "" {
			token = storedToken
		}
		if secret == "" {
			secret = storedSecret
		}
	}

	var opts []domeneshop.Option
	if baseURL, err := resolveBaseURL(); err != nil {
		return nil, err
	} else if baseURL != "" {
		opts = append(opts, domeneshop.WithBaseURL(baseURL))
	}

	return domeneshop.New(token, secret, opts...)
}

func resolveBaseURL() (string, error) {
	if env := os.Getenv(EnvAPIURL); env != "" {
		return env, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg.APIURL, nil
}
