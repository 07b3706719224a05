// Package contentstore talks to the version-controlled content host
// (GitHub Contents API shape). Every file state carries a sha; updates
// must present the current sha or the host rejects them with 409.
package contentstore

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/exp/slog"

	"cryptofolio/internal/config"
	"cryptofolio/internal/errs"
)

const userAgent = "cryptofolio-proxy/1.0"

type Client struct {
	client *http.Client
	cfg    config.Store
	log    *slog.Logger
}

// File is one decoded document plus its current version token.
type File struct {
	Content []byte
	SHA     string
}

// UpstreamError preserves the host's status and raw body so the proxy
// can forward them unchanged.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("content store returned status %d", e.StatusCode)
}

func New(cfg config.Store, log *slog.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		cfg: cfg,
		log: log,
	}
}

func (c *Client) fileURL(filename string) string {
	return fmt.Sprintf("%s/repos/%s/contents/%s/%s",
		c.cfg.APIURL, c.cfg.Repo, c.cfg.DataDir, url.PathEscape(filename))
}

// GetFile fetches and decodes a document at the configured branch.
// Non-2xx responses come back as *UpstreamError; 404 additionally
// matches errs.ErrNotFound.
func (c *Client) GetFile(ctx context.Context, filename string) (*File, error) {
	status, body, err := c.do(ctx, http.MethodGet, c.fileURL(filename)+"?ref="+url.QueryEscape(c.cfg.Branch), nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		if status == http.StatusNotFound {
			return nil, fmt.Errorf("%s: %w", filename, errs.ErrNotFound)
		}
		return nil, &UpstreamError{StatusCode: status, Body: body}
	}

	var payload struct {
		Content string `json:"content"`
		SHA     string `json:"sha"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode contents response: %w", err)
	}

	raw, err := base64.StdEncoding.DecodeString(payload.Content)
	if err != nil {
		// The API wraps base64 at 60 columns; retry tolerating newlines.
		raw, err = base64.StdEncoding.DecodeString(stripNewlines(payload.Content))
		if err != nil {
			return nil, fmt.Errorf("decode file content: %w", err)
		}
	}

	return &File{Content: raw, SHA: payload.SHA}, nil
}

// GetSHA returns the current version token, or "" when the file does
// not exist yet (first-time creation).
func (c *Client) GetSHA(ctx context.Context, filename string) (string, error) {
	f, err := c.GetFile(ctx, filename)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return f.SHA, nil
}

// PutFile writes content under the given commit message. An empty sha
// signals create-new; a stale sha makes the host answer 409, surfaced
// as *UpstreamError wrapped with errs.ErrVersionConflict.
func (c *Client) PutFile(ctx context.Context, filename string, content []byte, sha, message string) (string, error) {
	reqBody := map[string]any{
		"message": message,
		"content": base64.StdEncoding.EncodeToString(content),
		"branch":  c.cfg.Branch,
	}
	if sha != "" {
		reqBody["sha"] = sha
	}

	status, body, err := c.do(ctx, http.MethodPut, c.fileURL(filename), reqBody)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		upErr := &UpstreamError{StatusCode: status, Body: body}
		if status == http.StatusConflict {
			return "", fmt.Errorf("%w: %w", errs.ErrVersionConflict, upErr)
		}
		return "", upErr
	}

	var result struct {
		Commit struct {
			SHA string `json:"sha"`
		} `json:"commit"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decode commit response: %w", err)
	}

	return result.Commit.SHA, nil
}

func (c *Client) do(ctx context.Context, method, rawURL string, body any) (int, []byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "token "+c.cfg.Token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("content store request", "method", method, "url", req.URL.Path)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("content store unreachable: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}

	return resp.StatusCode, respBody, nil
}

func stripNewlines(s string) string {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\n' && s[i] != '\r' {
			buf = append(buf, s[i])
		}
	}
	return string(buf)
}
