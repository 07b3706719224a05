// Package pricefeed talks to the CoinGecko simple/price endpoint.
package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client fetches spot quotes. One request can carry any number of
// coin ids; the response maps coin id to currency to price.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// SimplePrice returns quotes for the given coin ids in the given
// currencies. Missing coins are simply absent from the result map.
func (c *Client) SimplePrice(ctx context.Context, ids, currencies []string) (map[string]map[string]float64, error) {
	if len(ids) == 0 {
		return map[string]map[string]float64{}, nil
	}

	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	q.Set("vs_currencies", strings.Join(currencies, ","))
	if c.apiKey != "" {
		q.Set("x_cg_demo_api_key", c.apiKey)
	}

	reqURL := fmt.Sprintf("%s/simple/price?%s", c.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build price request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("price request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read price response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("price api returned %d: %s", resp.StatusCode, body)
	}

	var quotes map[string]map[string]float64
	if err := json.Unmarshal(body, &quotes); err != nil {
		return nil, fmt.Errorf("failed to decode price response: %w", err)
	}
	return quotes, nil
}
