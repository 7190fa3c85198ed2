// Package provider implements the sources that return the HTML of the exchange-rates page.
package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNoContents is returned when the proxy answers without page contents.
var ErrNoContents = errors.New("proxy response has no contents")

// PageProvider returns the HTML of the configured rates page.
type PageProvider interface {
	FetchPage(ctx context.Context) (string, error)
}

// Mode selects how the rates page is fetched.
type Mode string

// Supported modes.
const (
	ModeProxy  Mode = "proxy"
	ModeDirect Mode = "direct"
)

// Options configure a PageProvider.
type Options struct {
	Mode       Mode
	ProxyURL   string
	TargetURL  string
	TimeoutSec int
}

// New builds the PageProvider selected by opts.Mode.
func New(opts Options) (PageProvider, error) {
	switch opts.Mode {
	case ModeProxy, "":
		return NewAllOriginsProvider(opts.ProxyURL, opts.TargetURL, opts.TimeoutSec), nil
	case ModeDirect:
		return NewDirectProvider(opts.TargetURL, opts.TimeoutSec), nil
	default:
		return nil, fmt.Errorf("unknown rates mode %q", opts.Mode)
	}
}

func newClient(timeoutSec int) *http.Client {
	return &http.Client{Timeout: time.Duration(timeoutSec) * time.Second}
}
