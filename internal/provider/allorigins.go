package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

var _ PageProvider = (*AllOriginsProvider)(nil)

// AllOriginsProvider fetches the rates page through an allorigins-style relay,
// which returns the page wrapped in a JSON document.
type AllOriginsProvider struct {
	proxyURL  string
	targetURL string
	client    *http.Client
}

// NewAllOriginsProvider creates a new AllOriginsProvider.
func NewAllOriginsProvider(proxyURL, targetURL string, timeoutSec int) *AllOriginsProvider {
	if proxyURL == "" {
		proxyURL = "https://api.allorigins.win"
	}
	return &AllOriginsProvider{
		proxyURL:  strings.TrimRight(proxyURL, "/"),
		targetURL: targetURL,
		client:    newClient(timeoutSec),
	}
}

type allOriginsResponse struct {
	Contents *string `json:"contents"`
}

// requestURL wraps the target address in the proxy query.
func (p *AllOriginsProvider) requestURL() string {
	return p.proxyURL + "/get?url=" + url.QueryEscape(p.targetURL)
}

// FetchPage returns the contents field of the proxy response.
func (p *AllOriginsProvider) FetchPage(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.requestURL(), http.NoBody)
	if err != nil {
		return "", fmt.Errorf("proxy request creation failed: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("proxy request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("proxy returned status %d: %s", resp.StatusCode, string(body))
	}

	var result allOriginsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode proxy response: %w", err)
	}
	if result.Contents == nil || *result.Contents == "" {
		return "", ErrNoContents
	}

	return *result.Contents, nil
}
