package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fd-calculator/domain"
)

// lookupClient talks to one of the platform services that answer with the
// domain.APIResponse envelope.
type lookupClient struct {
	service    string
	baseURL    string
	httpClient *http.Client
}

func newLookupClient(service, baseURL string, timeout time.Duration) lookupClient {
	return lookupClient{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c lookupClient) upstreamError(op string, err error) error {
	return &domain.UpstreamLookupError{Service: c.service, Op: op, Err: err}
}

// getData fetches path and unwraps the envelope. found is false for a 404 or
// an envelope that reports no success; every other failure is an
// *domain.UpstreamLookupError.
func getData[T any](ctx context.Context, c lookupClient, op, path string, query url.Values) (data T, found bool, err error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return data, false, c.upstreamError(op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return data, false, c.upstreamError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return data, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return data, false, c.upstreamError(op, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body)))
	}

	var envelope domain.APIResponse[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return data, false, c.upstreamError(op, fmt.Errorf("decode response: %w", err))
	}
	if !envelope.Success {
		return data, false, nil
	}
	return envelope.Data, true, nil
}
