// Package model holds the portal entities. Each entity type lives in one
// named JSON-array collection in the content store; there is no schema
// enforcement beyond what these structs decode.
package model

// Collection filenames as stored in the content store data directory.
const (
	UsersFile        = "users.json"
	WalletsFile      = "wallets.json"
	PlansFile        = "plans.json"
	TransactionsFile = "transactions.json"
	SettingsFile     = "settings.json"
)

// Roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Transaction types.
const (
	TxDeposit  = "DEPOSIT"
	TxWithdraw = "WITHDRAW"
	TxInvest   = "INVEST"
	TxProfit   = "PROFIT"
)

// Transaction statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusRejected  = "rejected"
)

// SupportedAssets are the assets every new account gets a wallet for.
var SupportedAssets = []string{"BTC", "ETH", "USDT", "USDC"}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	// Stored in clear, matching the deployed data files. Hashing would
	// orphan every existing account; see DESIGN.md before "fixing" this.
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Wallet has no id of its own; (UserID, Asset) is the identity.
// One wallet per pair is a caller-side convention, not enforced here.
type Wallet struct {
	UserID         string  `json:"user_id"`
	Asset          string  `json:"asset"`
	Balance        float64 `json:"balance"`
	DepositAddress string  `json:"deposit_address"`
}

type Plan struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Asset          string  `json:"asset"`
	YieldPercent   float64 `json:"yield_percent"`
	MinEUR         float64 `json:"min_eur"`
	MaxEUR         float64 `json:"max_eur"`
	DurationMonths int     `json:"duration_months"`
	Description    string  `json:"description"`
}

// Transaction is immutable after creation except Status and Reason,
// which only admin actions touch.
type Transaction struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Type        string  `json:"type"`
	Asset       string  `json:"asset"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	Timestamp   string  `json:"timestamp"`
	Description string  `json:"description,omitempty"`
	PlanID      string  `json:"plan_id,omitempty"`
	Reason      string  `json:"reason,omitempty"`
}

// Settings is a singleton: settings.json is a one-element array and
// reads always take index 0.
type Settings struct {
	CoingeckoAPIKey string   `json:"coingecko_api_key"`
	CacheDuration   int      `json:"cache_duration"` // milliseconds
	SupportedAssets []string `json:"supported_assets"`
	DefaultCurrency string   `json:"default_currency"`
	AppName         string   `json:"app_name"`
	Version         string   `json:"version"`
	MaintenanceMode bool     `json:"maintenance_mode"`
	Features        Features `json:"features"`
}

type Features struct {
	ArbitrageSimulation bool `json:"arbitrage_simulation"`
	RealTimePrices      bool `json:"real_time_prices"`
	AdminPanel          bool `json:"admin_panel"`
	UserRegistration    bool `json:"user_registration"`
}
