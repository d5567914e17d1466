package workload

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Fetch downloads a workload and parses it by the extension of the URL path.
// A nil client means http.DefaultClient.
func Fetch(ctx context.Context, client *http.Client, rawURL string) (*Workload, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	format, err := FormatFromPath(u.Path)
	if err != nil {
		return nil, err
	}

	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: %s", rawURL, resp.Status)
	}

	return Parse(resp.Body, format)
}
