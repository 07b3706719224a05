// Package types carries the context key that hands the initialized
// client application down to the subcommand packages.
package types

import (
	"fmt"

	"github.com/spf13/cobra"

	"cryptofolio/internal/app/client"
	"cryptofolio/internal/model"
)

type ctxKey string

// ClientAppKey is where root stores the *client.App in the command
// context.
const ClientAppKey ctxKey = "clientApp"

// AppFrom extracts the client application from the command context.
func AppFrom(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("application is not initialized")
	}
	return app, nil
}

// RequireUser returns the app plus the logged-in user, failing when
// there is no session.
func RequireUser(cmd *cobra.Command) (*client.App, model.User, error) {
	app, err := AppFrom(cmd)
	if err != nil {
		return nil, model.User{}, err
	}
	usr, err := app.Auth.CurrentUser()
	if err != nil {
		return nil, model.User{}, err
	}
	return app, usr, nil
}

// RequireAdmin is RequireUser plus a role check.
func RequireAdmin(cmd *cobra.Command) (*client.App, model.User, error) {
	app, usr, err := RequireUser(cmd)
	if err != nil {
		return nil, model.User{}, err
	}
	if usr.Role != model.RoleAdmin {
		return nil, model.User{}, fmt.Errorf("admin role required")
	}
	return app, usr, nil
}
