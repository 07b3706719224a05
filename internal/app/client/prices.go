package client

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

// QuoteFeed is what Prices needs from the upstream price source.
type QuoteFeed interface {
	SimplePrice(ctx context.Context, ids, currencies []string) (map[string]map[string]float64, error)
}

// coinIDs maps portal asset symbols to the feed's coin ids. Assets
// outside this map never reach the feed; they price at the default.
var coinIDs = map[string]string{
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"USDT": "tether",
	"USDC": "usd-coin",
}

// defaultPrices keep the portal usable when the feed is down. Values
// are EUR and deliberately rough.
var defaultPrices = map[string]float64{
	"BTC":  45000,
	"ETH":  3000,
	"USDT": 0.92,
	"USDC": 0.92,
}

const fallbackPrice = 1.0

type cachedQuote struct {
	price    float64
	cachedAt time.Time
}

// Prices is a read-through quote cache over the price feed. Lookups
// never fail: a dead feed degrades to hardcoded defaults.
type Prices struct {
	feed QuoteFeed
	log  *slog.Logger
	ttl  time.Duration

	mu    sync.Mutex
	cache map[string]cachedQuote
}

func NewPrices(feed QuoteFeed, ttl time.Duration, log *slog.Logger) *Prices {
	return &Prices{
		feed:  feed,
		log:   log,
		ttl:   ttl,
		cache: make(map[string]cachedQuote),
	}
}

// SetTTL overrides the cache lifetime, e.g. from the portal settings.
func (p *Prices) SetTTL(ttl time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ttl = ttl
}

// GetPrice returns one quote in the given currency.
func (p *Prices) GetPrice(ctx context.Context, asset, currency string) float64 {
	return p.GetPrices(ctx, []string{asset}, currency)[strings.ToUpper(asset)]
}

// GetPrices returns quotes for several assets in one feed round trip.
// Fresh cache entries are served as is; the remaining mapped assets go
// out in a single batched request. Unmapped or failed assets get their
// default price, which is cached too so a dead feed is hit at most
// once per TTL window.
func (p *Prices) GetPrices(ctx context.Context, assets []string, currency string) map[string]float64 {
	currency = strings.ToLower(currency)
	result := make(map[string]float64, len(assets))

	p.mu.Lock()
	now := time.Now()
	var missing []string
	for _, raw := range assets {
		asset := strings.ToUpper(raw)
		if q, ok := p.cache[cacheKey(asset, currency)]; ok && now.Sub(q.cachedAt) < p.ttl {
			result[asset] = q.price
			continue
		}
		missing = append(missing, asset)
	}
	p.mu.Unlock()

	if len(missing) == 0 {
		return result
	}

	var ids []string
	idToAsset := make(map[string]string, len(missing))
	for _, asset := range missing {
		if id, ok := coinIDs[asset]; ok {
			ids = append(ids, id)
			idToAsset[id] = asset
		}
	}

	var quotes map[string]map[string]float64
	if len(ids) > 0 {
		var err error
		quotes, err = p.feed.SimplePrice(ctx, ids, []string{currency})
		if err != nil {
			p.log.Warn("price feed unavailable, using defaults", "error", err)
			quotes = nil
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	now = time.Now()
	for _, asset := range missing {
		price := defaultPrice(asset)
		if id, ok := coinIDs[asset]; ok {
			if fetched, ok := quotes[id][currency]; ok {
				price = fetched
			}
		}
		p.cache[cacheKey(asset, currency)] = cachedQuote{price: price, cachedAt: now}
		result[asset] = price
	}
	return result
}

// ConvertToEUR values an asset amount in EUR.
func (p *Prices) ConvertToEUR(ctx context.Context, asset string, amount float64) float64 {
	return amount * p.GetPrice(ctx, asset, "eur")
}

// ConvertFromEUR converts a EUR amount into asset units.
func (p *Prices) ConvertFromEUR(ctx context.Context, asset string, amountEUR float64) float64 {
	price := p.GetPrice(ctx, asset, "eur")
	if price == 0 {
		return 0
	}
	return amountEUR / price
}

// CalculateROI is the simple-interest return for a plan position.
func CalculateROI(principal, yieldPercent float64, months int) float64 {
	return principal * (yieldPercent / 100) * (float64(months) / 12)
}

// ClearCache drops every cached quote, forcing fresh fetches.
func (p *Prices) ClearCache() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache = make(map[string]cachedQuote)
}

func cacheKey(asset, currency string) string {
	return asset + "_" + strings.ToUpper(currency)
}

func defaultPrice(asset string) float64 {
	if price, ok := defaultPrices[asset]; ok {
		return price
	}
	return fallbackPrice
}
