// Package data implements the proxy's two logical operations: read a
// named document from the content store and write one back with
// read-current-sha-then-write semantics.
package data

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"cryptofolio/internal/config"
	"cryptofolio/internal/contentstore"
	"cryptofolio/internal/errs"
)

// Store is the slice of the content store client the proxy needs.
type Store interface {
	GetFile(ctx context.Context, filename string) (*contentstore.File, error)
	GetSHA(ctx context.Context, filename string) (string, error)
	PutFile(ctx context.Context, filename string, content []byte, sha, message string) (string, error)
}

type Handler struct {
	store      Store
	cfg        config.Store
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(store Store, cfg config.Store, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		store:      store,
		cfg:        cfg,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.readOp(), h.read)
	huma.Register(api, h.writeOp(http.MethodPost, "data-write"), h.write)
	huma.Register(api, h.writeOp(http.MethodPut, "data-write-put"), h.write)
}

func (h *Handler) read(ctx context.Context, input *readInput) (*readOutput, error) {
	if err := h.cfg.Validate(); err != nil {
		h.log.Error("proxy misconfigured", "error", err)
		return nil, huma.Error500InternalServerError("Server misconfiguration: missing token or repository info")
	}

	if err := checkFilename(input.Filename); err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	f, err := h.store.GetFile(ctx, input.Filename)
	if err != nil {
		return nil, h.upstreamError(err, "read", input.Filename)
	}

	return &readOutput{
		ContentType: "application/json",
		Body:        f.Content,
	}, nil
}

func (h *Handler) write(ctx context.Context, input *writeInput) (*writeOutput, error) {
	if err := h.cfg.Validate(); err != nil {
		h.log.Error("proxy misconfigured", "error", err)
		return nil, huma.Error500InternalServerError("Server misconfiguration: missing token or repository info")
	}

	req := input.Body
	if err := checkFilename(req.Filename); err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}
	if len(req.Data) == 0 {
		return nil, huma.Error400BadRequest("data is required")
	}

	payload, err := renderPayload(req.Data)
	if err != nil {
		return nil, huma.Error400BadRequest("data is not valid JSON")
	}

	message := req.Message
	if message == "" {
		message = fmt.Sprintf("Update %s via proxy", req.Filename)
	}

	// Read-then-write: capture the current version token so a concurrent
	// edit makes the store reject us instead of being clobbered. A failed
	// lookup is treated as first-time creation, like the store's own 404.
	sha, err := h.store.GetSHA(ctx, req.Filename)
	if err != nil {
		h.log.Warn("sha lookup failed, writing without version token",
			"filename", req.Filename, "error", err)
		sha = ""
	}

	commit, err := h.store.PutFile(ctx, req.Filename, payload, sha, message)
	if err != nil {
		return nil, h.upstreamError(err, "write", req.Filename)
	}

	h.log.Info("document written", "filename", req.Filename, "commit", commit)

	return &writeOutput{
		Body: writeResponse{OK: true, Commit: commit},
	}, nil
}

// upstreamError forwards the content store's status and body so callers
// can tell "missing file" from "forbidden" from "stale version".
func (h *Handler) upstreamError(err error, op, filename string) error {
	var upErr *contentstore.UpstreamError
	if errors.As(err, &upErr) {
		h.log.Warn("content store "+op+" failed",
			"filename", filename, "status", upErr.StatusCode)
		return huma.NewError(upErr.StatusCode,
			fmt.Sprintf("content store %s failed: %d", op, upErr.StatusCode),
			errors.New(string(upErr.Body)))
	}
	if errors.Is(err, errs.ErrNotFound) {
		return huma.Error404NotFound(fmt.Sprintf("content store %s failed: 404", op))
	}

	h.log.Error("content store unreachable", "filename", filename, "error", err)
	return huma.Error500InternalServerError("content store request failed", err)
}

// renderPayload mirrors the browser-era contract: a JSON string is
// written verbatim, every other value is pretty-printed two-space JSON.
func renderPayload(data json.RawMessage) ([]byte, error) {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return []byte(s), nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func checkFilename(name string) error {
	if name == "" {
		return errors.New("filename is required")
	}
	// Traversal guard: documents live flat in the data directory.
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return fmt.Errorf("%s: %s", name, errs.ErrInvalidFilename)
	}
	return nil
}
