package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"cryptofolio/internal/errs"
	"cryptofolio/internal/model"
)

// Session is what survives between CLI invocations. The stored user is
// a snapshot from login time; fields may drift until the next login.
type Session struct {
	User     model.User `json:"user"`
	LoggedAt string     `json:"logged_at"`
}

// Auth handles login, registration and the on-disk session.
type Auth struct {
	users       *Users
	wallets     *Wallets
	sessionPath string
	log         *slog.Logger
}

func NewAuth(users *Users, wallets *Wallets, sessionPath string, log *slog.Logger) *Auth {
	return &Auth{users: users, wallets: wallets, sessionPath: sessionPath, log: log}
}

// Login matches email and password against the users collection and
// persists a session on success.
func (a *Auth) Login(ctx context.Context, email, password string) (model.User, error) {
	usr, ok := a.users.GetByEmail(ctx, email)
	if !ok || usr.Password != password {
		return model.User{}, fmt.Errorf("invalid credentials: %w", errs.ErrUnauthorized)
	}

	if err := a.saveSession(usr); err != nil {
		return model.User{}, fmt.Errorf("failed to persist session: %w", err)
	}
	return usr, nil
}

// Register creates the account plus one empty wallet per supported
// asset, then logs the new user in.
func (a *Auth) Register(ctx context.Context, name, email, password string) (model.User, error) {
	if _, exists := a.users.GetByEmail(ctx, email); exists {
		return model.User{}, fmt.Errorf("email %s: %w", email, errs.ErrAlreadyExists)
	}

	now := time.Now().UnixMilli()
	usr := model.User{
		ID:       fmt.Sprintf("u%d", now),
		Name:     name,
		Email:    email,
		Password: password,
		Role:     model.RoleUser,
	}
	if !a.users.Create(ctx, usr) {
		return model.User{}, fmt.Errorf("failed to store new user %s", usr.ID)
	}

	for _, asset := range model.SupportedAssets {
		wl := model.Wallet{
			UserID:         usr.ID,
			Asset:          asset,
			Balance:        0,
			DepositAddress: depositAddress(asset, usr.ID),
		}
		if !a.wallets.Create(ctx, wl) {
			a.log.Warn("failed to create wallet for new user", "user_id", usr.ID, "asset", asset)
		}
	}

	if err := a.saveSession(usr); err != nil {
		return model.User{}, fmt.Errorf("failed to persist session: %w", err)
	}
	return usr, nil
}

// Logout drops the session file. A missing file is not an error.
func (a *Auth) Logout() error {
	if err := os.Remove(a.sessionPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}

// CurrentUser returns the logged-in user from the session file.
func (a *Auth) CurrentUser() (model.User, error) {
	raw, err := os.ReadFile(a.sessionPath)
	if err != nil {
		return model.User{}, fmt.Errorf("not logged in: %w", errs.ErrUnauthorized)
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return model.User{}, fmt.Errorf("session file is corrupt: %w", err)
	}
	return sess.User, nil
}

func (a *Auth) saveSession(usr model.User) error {
	sess := Session{User: usr, LoggedAt: time.Now().UTC().Format(time.RFC3339)}
	raw, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(a.sessionPath, raw, 0o600)
}

func depositAddress(asset, userID string) string {
	return fmt.Sprintf("%s_%s_%d", strings.ToLower(asset), userID, time.Now().UnixMilli())
}
