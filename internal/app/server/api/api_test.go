package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"cryptofolio/internal/config"
)

// fakeHost is an in-memory content host speaking the contents-API shape
// the proxy expects: base64 payloads, sha version tokens, 409 on stale
// sha.
type fakeHost struct {
	mu      sync.Mutex
	files   map[string]fakeFile
	shaSeq  int
	conflict bool // when set, every update answers 409
}

type fakeFile struct {
	content []byte
	sha     string
}

func newFakeHost() *fakeHost {
	return &fakeHost{files: map[string]fakeFile{}}
}

func (h *fakeHost) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		defer h.mu.Unlock()

		filename := r.URL.Path[len("/repos/acme/portal-data/contents/data/"):]

		switch r.Method {
		case http.MethodGet:
			f, ok := h.files[filename]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprint(w, `{"message":"Not Found"}`)
				return
			}
			json.NewEncoder(w).Encode(map[string]string{
				"content": base64.StdEncoding.EncodeToString(f.content),
				"sha":     f.sha,
			})

		case http.MethodPut:
			raw, _ := io.ReadAll(r.Body)
			var req struct {
				Content string `json:"content"`
				SHA     string `json:"sha"`
			}
			if err := json.Unmarshal(raw, &req); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}

			existing, exists := h.files[filename]
			if h.conflict || (exists && req.SHA != existing.sha) {
				w.WriteHeader(http.StatusConflict)
				fmt.Fprint(w, `{"message":"does not match"}`)
				return
			}

			content, err := base64.StdEncoding.DecodeString(req.Content)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}

			h.shaSeq++
			sha := fmt.Sprintf("sha-%d", h.shaSeq)
			h.files[filename] = fakeFile{content: content, sha: sha}

			status := http.StatusOK
			if !exists {
				status = http.StatusCreated
			}
			w.WriteHeader(status)
			fmt.Fprintf(w, `{"content":{"sha":%q},"commit":{"sha":"commit-%d"}}`, sha, h.shaSeq)

		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}

func testConfig(hostURL string) *config.Config {
	return &config.Config{
		Env: config.EnvLocal,
		Store: config.Store{
			APIURL:  hostURL,
			Token:   "test-token",
			Repo:    "acme/portal-data",
			Branch:  "main",
			DataDir: "data",
		},
	}
}

func TestProxyRoundTrip(t *testing.T) {
	host := newFakeHost()
	hostSrv := httptest.NewServer(host.handler())
	defer hostSrv.Close()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	proxy := httptest.NewServer(New(testConfig(hostSrv.URL), log))
	defer proxy.Close()

	// First write creates the file (no sha yet upstream).
	writeBody := `{"filename":"plans.json","data":[{"id":"p1","name":"Starter"}]}`
	resp, err := http.Post(proxy.URL+"/api/data", "application/json", bytes.NewBufferString(writeBody))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var wr struct {
		OK     bool   `json:"ok"`
		Commit string `json:"commit"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&wr))
	assert.True(t, wr.OK)
	assert.Equal(t, "commit-1", wr.Commit)

	// Read back: the payload comes out pretty-printed, verbatim bytes.
	getResp, err := http.Get(proxy.URL + "/api/data?filename=plans.json")
	require.NoError(t, err)
	defer getResp.Body.Close()
	require.Equal(t, http.StatusOK, getResp.StatusCode)

	raw, err := io.ReadAll(getResp.Body)
	require.NoError(t, err)

	var plans []map[string]any
	require.NoError(t, json.Unmarshal(raw, &plans))
	require.Len(t, plans, 1)
	assert.Equal(t, "p1", plans[0]["id"])

	// Second write carries the stored sha and must succeed.
	resp2, err := http.Post(proxy.URL+"/api/data", "application/json",
		bytes.NewBufferString(`{"filename":"plans.json","data":[]}`))
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}

func TestProxyForwardsConflict(t *testing.T) {
	host := newFakeHost()
	host.files["users.json"] = fakeFile{content: []byte("[]"), sha: "sha-0"}
	host.conflict = true

	hostSrv := httptest.NewServer(host.handler())
	defer hostSrv.Close()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	proxy := httptest.NewServer(New(testConfig(hostSrv.URL), log))
	defer proxy.Close()

	resp, err := http.Post(proxy.URL+"/api/data", "application/json",
		bytes.NewBufferString(`{"filename":"users.json","data":[]}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestProxyMissingFilename(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	proxy := httptest.NewServer(New(testConfig("http://unused.invalid"), log))
	defer proxy.Close()

	resp, err := http.Get(proxy.URL + "/api/data")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProxyHealth(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	proxy := httptest.NewServer(New(testConfig("http://unused.invalid"), log))
	defer proxy.Close()

	resp, err := http.Get(proxy.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProxyRejectsUnknownMethod(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	proxy := httptest.NewServer(New(testConfig("http://unused.invalid"), log))
	defer proxy.Close()

	req, err := http.NewRequest(http.MethodDelete, proxy.URL+"/api/data", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestProxyCORSPreflight(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	proxy := httptest.NewServer(New(testConfig("http://unused.invalid"), log))
	defer proxy.Close()

	req, err := http.NewRequest(http.MethodOptions, proxy.URL+"/api/data", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
