package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/exp/slog"
)

// httpClient wraps the data proxy endpoints. Documents are whole JSON
// arrays; there is no partial-document operation, so this stays tiny.
type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func newHTTPClient(baseURL string, log *slog.Logger) *httpClient {
	return &httpClient{
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		log:       log,
		baseURL:   baseURL,
		userAgent: "cryptofolio-client/1.0",
	}
}

// HealthCheck verifies the proxy answers at all.
func (h *httpClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/api/health", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("proxy unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("proxy returned status: %d", resp.StatusCode)
	}
	return nil
}

// ReadDocument fetches the raw body of one named document.
func (h *httpClient) ReadDocument(ctx context.Context, filename string) ([]byte, error) {
	reqURL := h.baseURL + "/api/data?filename=" + url.QueryEscape(filename)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)

	h.log.Debug("reading document", "filename", filename)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("proxy unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remote read failed: %d", resp.StatusCode)
	}

	return body, nil
}

// WriteDocument posts the full serialized value as the document's new
// content and waits for the resulting commit.
func (h *httpClient) WriteDocument(ctx context.Context, filename string, data any, message string) error {
	payload := struct {
		Filename string `json:"filename"`
		Data     any    `json:"data"`
		Message  string `json:"message,omitempty"`
	}{
		Filename: filename,
		Data:     data,
		Message:  message,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/api/data", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)

	h.log.Debug("writing document", "filename", filename)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("proxy unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("remote write failed: %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		OK     bool   `json:"ok"`
		Commit string `json:"commit"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("remote write not acknowledged")
	}

	h.log.Debug("document committed", "filename", filename, "commit", result.Commit)
	return nil
}
