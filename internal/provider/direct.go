package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

var _ PageProvider = (*DirectProvider)(nil)

// maxPageSize caps the body read from the rates page.
const maxPageSize = 4 << 20

// DirectProvider fetches the rates page itself. A server is not bound by browser
// cross-origin rules, so no relay is needed.
type DirectProvider struct {
	targetURL string
	client    *http.Client
}

// NewDirectProvider creates a new DirectProvider.
func NewDirectProvider(targetURL string, timeoutSec int) *DirectProvider {
	return &DirectProvider{
		targetURL: targetURL,
		client:    newClient(timeoutSec),
	}
}

// FetchPage returns the body of the rates page.
func (p *DirectProvider) FetchPage(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.targetURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("rates page request creation failed: %w", err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("rates page request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("rates page returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return "", fmt.Errorf("failed to read rates page: %w", err)
	}
	if len(body) == 0 {
		return "", ErrNoContents
	}
	return string(body), nil
}
