package client

import (
	"context"

	"cryptofolio/internal/model"
)

// Users wraps the users.json collection.
type Users struct {
	c *Collection[model.User]
}

func NewUsers(s *store) *Users {
	return &Users{c: NewCollection[model.User](s, model.UsersFile)}
}

func (u *Users) GetAll(ctx context.Context) Loaded[model.User] {
	return u.c.GetAll(ctx)
}

func (u *Users) GetByEmail(ctx context.Context, email string) (model.User, bool) {
	loaded := u.c.GetAll(ctx)
	for _, usr := range loaded.Items {
		if usr.Email == email {
			return usr, true
		}
	}
	return model.User{}, false
}

func (u *Users) GetByID(ctx context.Context, id string) (model.User, bool) {
	loaded := u.c.GetAll(ctx)
	for _, usr := range loaded.Items {
		if usr.ID == id {
			return usr, true
		}
	}
	return model.User{}, false
}

func (u *Users) Create(ctx context.Context, usr model.User) bool {
	return u.c.Create(ctx, usr)
}

// UserUpdate carries the fields a user update may change; nil means
// keep the stored value.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
}

func (u *Users) Update(ctx context.Context, id string, upd UserUpdate) bool {
	return u.c.Update(ctx,
		func(usr model.User) bool { return usr.ID == id },
		func(usr *model.User) {
			if upd.Name != nil {
				usr.Name = *upd.Name
			}
			if upd.Email != nil {
				usr.Email = *upd.Email
			}
			if upd.Password != nil {
				usr.Password = *upd.Password
			}
			if upd.Role != nil {
				usr.Role = *upd.Role
			}
		})
}

func (u *Users) Delete(ctx context.Context, id string) bool {
	return u.c.Delete(ctx, func(usr model.User) bool { return usr.ID == id })
}

// Wallets wraps wallets.json. Identity is the (user_id, asset) pair.
type Wallets struct {
	c *Collection[model.Wallet]
}

func NewWallets(s *store) *Wallets {
	return &Wallets{c: NewCollection[model.Wallet](s, model.WalletsFile)}
}

func (w *Wallets) GetAll(ctx context.Context) Loaded[model.Wallet] {
	return w.c.GetAll(ctx)
}

func (w *Wallets) GetByUserID(ctx context.Context, userID string) Loaded[model.Wallet] {
	return w.c.Filter(ctx, func(wl model.Wallet) bool { return wl.UserID == userID })
}

func (w *Wallets) Get(ctx context.Context, userID, asset string) (model.Wallet, bool) {
	loaded := w.GetByUserID(ctx, userID)
	for _, wl := range loaded.Items {
		if wl.Asset == asset {
			return wl, true
		}
	}
	return model.Wallet{}, false
}

func (w *Wallets) Create(ctx context.Context, wl model.Wallet) bool {
	return w.c.Create(ctx, wl)
}

type WalletUpdate struct {
	Balance        *float64
	DepositAddress *string
}

func (w *Wallets) Update(ctx context.Context, userID, asset string, upd WalletUpdate) bool {
	return w.c.Update(ctx,
		func(wl model.Wallet) bool { return wl.UserID == userID && wl.Asset == asset },
		func(wl *model.Wallet) {
			if upd.Balance != nil {
				wl.Balance = *upd.Balance
			}
			if upd.DepositAddress != nil {
				wl.DepositAddress = *upd.DepositAddress
			}
		})
}

func (w *Wallets) Delete(ctx context.Context, userID, asset string) bool {
	return w.c.Delete(ctx, func(wl model.Wallet) bool {
		return wl.UserID == userID && wl.Asset == asset
	})
}

// Plans wraps plans.json.
type Plans struct {
	c *Collection[model.Plan]
}

func NewPlans(s *store) *Plans {
	return &Plans{c: NewCollection[model.Plan](s, model.PlansFile)}
}

func (p *Plans) GetAll(ctx context.Context) Loaded[model.Plan] {
	return p.c.GetAll(ctx)
}

func (p *Plans) GetByID(ctx context.Context, id string) (model.Plan, bool) {
	loaded := p.c.GetAll(ctx)
	for _, pl := range loaded.Items {
		if pl.ID == id {
			return pl, true
		}
	}
	return model.Plan{}, false
}

func (p *Plans) Create(ctx context.Context, pl model.Plan) bool {
	return p.c.Create(ctx, pl)
}

type PlanUpdate struct {
	Name           *string
	Asset          *string
	YieldPercent   *float64
	MinEUR         *float64
	MaxEUR         *float64
	DurationMonths *int
	Description    *string
}

func (p *Plans) Update(ctx context.Context, id string, upd PlanUpdate) bool {
	return p.c.Update(ctx,
		func(pl model.Plan) bool { return pl.ID == id },
		func(pl *model.Plan) {
			if upd.Name != nil {
				pl.Name = *upd.Name
			}
			if upd.Asset != nil {
				pl.Asset = *upd.Asset
			}
			if upd.YieldPercent != nil {
				pl.YieldPercent = *upd.YieldPercent
			}
			if upd.MinEUR != nil {
				pl.MinEUR = *upd.MinEUR
			}
			if upd.MaxEUR != nil {
				pl.MaxEUR = *upd.MaxEUR
			}
			if upd.DurationMonths != nil {
				pl.DurationMonths = *upd.DurationMonths
			}
			if upd.Description != nil {
				pl.Description = *upd.Description
			}
		})
}

func (p *Plans) Delete(ctx context.Context, id string) bool {
	return p.c.Delete(ctx, func(pl model.Plan) bool { return pl.ID == id })
}

// Transactions wraps transactions.json. Rows are append-only except for
// the status/reason fields an admin decision sets.
type Transactions struct {
	c *Collection[model.Transaction]
}

func NewTransactions(s *store) *Transactions {
	return &Transactions{c: NewCollection[model.Transaction](s, model.TransactionsFile)}
}

func (t *Transactions) GetAll(ctx context.Context) Loaded[model.Transaction] {
	return t.c.GetAll(ctx)
}

func (t *Transactions) GetByUserID(ctx context.Context, userID string) Loaded[model.Transaction] {
	return t.c.Filter(ctx, func(tx model.Transaction) bool { return tx.UserID == userID })
}

func (t *Transactions) Create(ctx context.Context, tx model.Transaction) bool {
	return t.c.Create(ctx, tx)
}

type TransactionUpdate struct {
	Status *string
	Reason *string
}

func (t *Transactions) Update(ctx context.Context, id string, upd TransactionUpdate) bool {
	return t.c.Update(ctx,
		func(tx model.Transaction) bool { return tx.ID == id },
		func(tx *model.Transaction) {
			if upd.Status != nil {
				tx.Status = *upd.Status
			}
			if upd.Reason != nil {
				tx.Reason = *upd.Reason
			}
		})
}

// SettingsService wraps settings.json, a one-element array read as a
// singleton. An empty collection yields the zero Settings.
type SettingsService struct {
	c *Collection[model.Settings]
}

func NewSettings(s *store) *SettingsService {
	return &SettingsService{c: NewCollection[model.Settings](s, model.SettingsFile)}
}

func (s *SettingsService) Get(ctx context.Context) (model.Settings, Provenance) {
	loaded := s.c.GetAll(ctx)
	if len(loaded.Items) == 0 {
		return model.Settings{}, loaded.Provenance
	}
	return loaded.Items[0], loaded.Provenance
}

type SettingsUpdate struct {
	CoingeckoAPIKey *string
	CacheDuration   *int
	DefaultCurrency *string
	MaintenanceMode *bool
}

// Update merges the patch into the current singleton and rewrites the
// one-element array. Works even when the document was missing.
func (s *SettingsService) Update(ctx context.Context, upd SettingsUpdate) bool {
	current, _ := s.Get(ctx)
	if upd.CoingeckoAPIKey != nil {
		current.CoingeckoAPIKey = *upd.CoingeckoAPIKey
	}
	if upd.CacheDuration != nil {
		current.CacheDuration = *upd.CacheDuration
	}
	if upd.DefaultCurrency != nil {
		current.DefaultCurrency = *upd.DefaultCurrency
	}
	if upd.MaintenanceMode != nil {
		current.MaintenanceMode = *upd.MaintenanceMode
	}

	l := s.c.store.lock(s.c.filename)
	l.Lock()
	defer l.Unlock()
	return writeDocument(ctx, s.c.store, s.c.filename, []model.Settings{current})
}
