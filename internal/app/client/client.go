// Package client is the portal client core: collection repositories
// with remote, cached and seeded tiers, authentication, and the price
// cache. The CLI in cmd/client is a thin shell over this package.
package client

import (
	"context"
	"time"

	"golang.org/x/exp/slog"

	"cryptofolio/internal/app/client/config"
	"cryptofolio/internal/pricefeed"
)

// App wires the client services together.
type App struct {
	Cfg *config.Config
	Log *slog.Logger

	Users        *Users
	Wallets      *Wallets
	Plans        *Plans
	Transactions *Transactions
	Settings     *SettingsService
	Auth         *Auth
	Prices       *Prices

	cache DocumentCache
	http  *httpClient
}

// New builds the client. The persisted cache tier prefers SQLite at
// cfg.CachePath and degrades to the in-memory cache when the database
// cannot be opened.
func New(cfg *config.Config, log *slog.Logger) *App {
	var cache DocumentCache
	sqliteCache, err := NewSQLiteCache(cfg.CachePath)
	if err != nil {
		log.Warn("failed to open cache database, using in-memory cache", "path", cfg.CachePath, "error", err)
		cache = NewMemoryCache()
	} else {
		cache = sqliteCache
	}

	httpc := newHTTPClient(cfg.ProxyURL, log)
	s := newStore(httpc, cache, log)

	users := NewUsers(s)
	wallets := NewWallets(s)

	feed := pricefeed.New(cfg.PriceAPIURL, cfg.PriceAPIKey)
	prices := NewPrices(feed, time.Duration(cfg.PriceTTLMS)*time.Millisecond, log)

	return &App{
		Cfg:          cfg,
		Log:          log,
		Users:        users,
		Wallets:      wallets,
		Plans:        NewPlans(s),
		Transactions: NewTransactions(s),
		Settings:     NewSettings(s),
		Auth:         NewAuth(users, wallets, cfg.SessionPath, log),
		Prices:       prices,
		cache:        cache,
		http:         httpc,
	}
}

// CheckConnection pings the proxy health endpoint.
func (a *App) CheckConnection(ctx context.Context) error {
	return a.http.HealthCheck(ctx)
}

// ApplySettings pulls runtime knobs from the settings singleton: the
// price cache TTL and, when configured there, the feed API key.
func (a *App) ApplySettings(ctx context.Context) {
	st, _ := a.Settings.Get(ctx)

	ttl := time.Duration(a.Cfg.PriceTTLMS) * time.Millisecond
	if st.CacheDuration > 0 {
		ttl = time.Duration(st.CacheDuration) * time.Millisecond
	}

	if st.CoingeckoAPIKey != "" && a.Cfg.PriceAPIKey == "" {
		feed := pricefeed.New(a.Cfg.PriceAPIURL, st.CoingeckoAPIKey)
		a.Prices = NewPrices(feed, ttl, a.Log)
		return
	}
	a.Prices.SetTTL(ttl)
}

// Close releases the cache database.
func (a *App) Close() error {
	return a.cache.Close()
}
