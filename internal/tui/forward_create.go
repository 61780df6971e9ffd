package tui

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"sondreal/domctl/internal/domeneshop"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// ErrAborted is returned when a user cancels an interactive flow.
var ErrAborted = errors.New("aborted by user")

// ForwardLister is the slice of the forward service the wizard needs.
type ForwardLister interface {
	List(ctx context.Context, domainID int) ([]domeneshop.Forward, error)
}

// ForwardForm runs an interactive wizard that collects options for a new
// HTTP forward. Existing forwards are fetched up front so the wizard can
// reject hosts that already have one.
func ForwardForm(svc ForwardLister, domainID int, domainName string, prefill domeneshop.Forward) (*domeneshop.Forward, error) {
	accessible := os.Getenv("ACCESSIBLE") != ""

	var existing []domeneshop.Forward
	fetchErr := spinner.New().
		Title("Fetching existing forwards...").
		Accessible(accessible).
		Output(os.Stderr).
		ActionWithErr(func(ctx context.Context) error {
			var err error
			existing, err = svc.List(ctx, domainID)
			return err
		}).
		Run()
	if fetchErr != nil {
		if errors.Is(fetchErr, huh.ErrUserAborted) || errors.Is(fetchErr, context.Canceled) {
			return nil, ErrAborted
		}
		return nil, fetchErr
	}

	taken := make(map[string]struct{}, len(existing))
	for _, f := range existing {
		taken[f.Host] = struct{}{}
	}

	opts := prefill

	hostField := huh.NewInput().
		Title("Host").
		Description(fmt.Sprintf("Subdomain of %s to forward; leave empty for the root domain", domainName)).
		Value(&opts.Host).
		Validate(func(value string) error {
			host := strings.ToLower(strings.TrimSpace(value))
			if host == "" {
				host = "@"
			}
			if _, ok := taken[host]; ok {
				return fmt.Errorf("a forward for %q already exists", host)
			}
			return nil
		})

	urlField := huh.NewInput().
		Title("Target URL").
		Description("Where visitors should be sent").
		Value(&opts.URL).
		Validate(func(value string) error {
			u, err := url.Parse(strings.TrimSpace(value))
			if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
				return errors.New("must be an absolute http(s) URL")
			}
			return nil
		})

	frameField := huh.NewConfirm().
		Title("Use frame forwarding?").
		Description("Keeps the original address in the browser by serving the target in a frame").
		Value(&opts.Frame)

	confirm := true
	confirmField := huh.NewConfirm().
		Title("Create forward?").
		Value(&confirm)

	err := huh.NewForm(
		huh.NewGroup(hostField, urlField, frameField),
		huh.NewGroup(confirmField),
	).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrAborted
		}
		return nil, err
	}
	if !confirm {
		return nil, ErrAborted
	}

	return &opts, nil
}
