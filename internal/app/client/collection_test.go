package client

import (
	"context"
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

	"cryptofolio/internal/model"
)

// fakeProxy is an in-memory stand-in for the data proxy: documents keyed
// by filename, with switches to fail reads or writes.
type fakeProxy struct {
	mu         sync.Mutex
	docs       map[string][]byte
	failReads  bool
	failWrites bool
	writes     int
}

func newFakeProxy() *fakeProxy {
	return &fakeProxy{docs: map[string][]byte{}}
}

func (p *fakeProxy) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		defer p.mu.Unlock()

		switch r.Method {
		case http.MethodGet:
			if p.failReads {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			doc, ok := p.docs[r.URL.Query().Get("filename")]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write(doc)

		case http.MethodPost, http.MethodPut:
			if p.failWrites {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			raw, _ := io.ReadAll(r.Body)
			var req struct {
				Filename string          `json:"filename"`
				Data     json.RawMessage `json:"data"`
			}
			if err := json.Unmarshal(raw, &req); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			p.docs[req.Filename] = req.Data
			p.writes++
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"ok":true,"commit":"commit-%d"}`, p.writes)

		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}

func testStore(t *testing.T, proxyURL string) *store {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newStore(newHTTPClient(proxyURL, log), NewMemoryCache(), log)
}

func TestCollectionCreateThenGetAll(t *testing.T) {
	proxy := newFakeProxy()
	srv := httptest.NewServer(proxy.handler())
	defer srv.Close()

	s := testStore(t, srv.URL)
	plans := NewPlans(s)
	ctx := context.Background()

	require.True(t, plans.Create(ctx, model.Plan{ID: "p9", Name: "Growth", Asset: "ETH"}))

	loaded := plans.GetAll(ctx)
	assert.Equal(t, ProvenanceRemote, loaded.Provenance)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "p9", loaded.Items[0].ID)
	assert.Equal(t, "Growth", loaded.Items[0].Name)
}

func TestWalletUpdateMatchesCompositeKey(t *testing.T) {
	proxy := newFakeProxy()
	srv := httptest.NewServer(proxy.handler())
	defer srv.Close()

	s := testStore(t, srv.URL)
	wallets := NewWallets(s)
	ctx := context.Background()

	require.True(t, wallets.Create(ctx, model.Wallet{UserID: "u1", Asset: "BTC", Balance: 1}))
	require.True(t, wallets.Create(ctx, model.Wallet{UserID: "u1", Asset: "ETH", Balance: 2}))
	require.True(t, wallets.Create(ctx, model.Wallet{UserID: "u2", Asset: "ETH", Balance: 3}))

	newBalance := 7.5
	require.True(t, wallets.Update(ctx, "u1", "ETH", WalletUpdate{Balance: &newBalance}))

	wl, found := wallets.Get(ctx, "u1", "ETH")
	require.True(t, found)
	assert.Equal(t, 7.5, wl.Balance)

	// The sibling wallets stay untouched.
	wl, found = wallets.Get(ctx, "u1", "BTC")
	require.True(t, found)
	assert.Equal(t, float64(1), wl.Balance)
	wl, found = wallets.Get(ctx, "u2", "ETH")
	require.True(t, found)
	assert.Equal(t, float64(3), wl.Balance)
}

func TestUpdateMissingEntityWritesNothing(t *testing.T) {
	proxy := newFakeProxy()
	proxy.docs[model.PlansFile] = []byte(`[{"id":"p1","name":"Starter"}]`)
	srv := httptest.NewServer(proxy.handler())
	defer srv.Close()

	s := testStore(t, srv.URL)
	plans := NewPlans(s)

	name := "Renamed"
	assert.False(t, plans.Update(context.Background(), "nope", PlanUpdate{Name: &name}))
	assert.Zero(t, proxy.writes)
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	proxy := newFakeProxy()
	proxy.docs[model.PlansFile] = []byte(`[{"id":"p1"},{"id":"p2"},{"id":"p3"}]`)
	srv := httptest.NewServer(proxy.handler())
	defer srv.Close()

	s := testStore(t, srv.URL)
	plans := NewPlans(s)
	ctx := context.Background()

	require.True(t, plans.Delete(ctx, "p2"))

	loaded := plans.GetAll(ctx)
	require.Len(t, loaded.Items, 2)
	assert.Equal(t, "p1", loaded.Items[0].ID)
	assert.Equal(t, "p3", loaded.Items[1].ID)
}

func TestFallbackPrefersCacheOverSeed(t *testing.T) {
	proxy := newFakeProxy()
	srv := httptest.NewServer(proxy.handler())
	defer srv.Close()

	s := testStore(t, srv.URL)
	require.NoError(t, s.cache.Put(model.UsersFile, []byte(`[{"id":"u42","name":"Cached"}]`)))
	proxy.failReads = true

	loaded := NewUsers(s).GetAll(context.Background())
	assert.Equal(t, ProvenanceCache, loaded.Provenance)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "u42", loaded.Items[0].ID)
}

func TestFallbackSeedWhenCacheEmpty(t *testing.T) {
	proxy := newFakeProxy()
	proxy.failReads = true
	srv := httptest.NewServer(proxy.handler())
	defer srv.Close()

	loaded := NewUsers(testStore(t, srv.URL)).GetAll(context.Background())
	assert.Equal(t, ProvenanceSeed, loaded.Provenance)
	assert.NotEmpty(t, loaded.Items)
}

func TestFallbackEmptyOnTotalFailure(t *testing.T) {
	proxy := newFakeProxy()
	proxy.failReads = true
	srv := httptest.NewServer(proxy.handler())
	defer srv.Close()

	// A filename with no bundled snapshot exhausts every tier.
	c := NewCollection[model.Plan](testStore(t, srv.URL), "unknown.json")
	loaded := c.GetAll(context.Background())

	assert.Equal(t, ProvenanceEmpty, loaded.Provenance)
	assert.NotNil(t, loaded.Items)
	assert.Empty(t, loaded.Items)
}

func TestWriteDegradesToCache(t *testing.T) {
	proxy := newFakeProxy()
	proxy.failWrites = true
	proxy.docs[model.PlansFile] = []byte(`[]`)
	srv := httptest.NewServer(proxy.handler())
	defer srv.Close()

	s := testStore(t, srv.URL)
	plans := NewPlans(s)
	ctx := context.Background()

	require.True(t, plans.Create(ctx, model.Plan{ID: "p1"}))

	// Nothing reached the proxy; the cache holds the new state.
	assert.Zero(t, proxy.writes)
	cached, err := s.cache.Get(model.PlansFile)
	require.NoError(t, err)

	var items []model.Plan
	require.NoError(t, json.Unmarshal(cached, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
}

func TestRemoteReadRefreshesCache(t *testing.T) {
	proxy := newFakeProxy()
	proxy.docs[model.PlansFile] = []byte(`[{"id":"p1"}]`)
	srv := httptest.NewServer(proxy.handler())
	defer srv.Close()

	s := testStore(t, srv.URL)
	plans := NewPlans(s)
	ctx := context.Background()

	require.Equal(t, ProvenanceRemote, plans.GetAll(ctx).Provenance)

	proxy.failReads = true

	loaded := plans.GetAll(ctx)
	assert.Equal(t, ProvenanceCache, loaded.Provenance)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "p1", loaded.Items[0].ID)
}
