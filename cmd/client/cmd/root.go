package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"cryptofolio/cmd/client/cmd/types"
	"cryptofolio/internal/app/client"
	"cryptofolio/internal/app/client/config"
	"cryptofolio/internal/utils/logger"
)

var (
	cfg      *config.Config
	log      *slog.Logger
	app      *client.App
	proxyURL string
)

var rootCmd = &cobra.Command{
	Use:   "cryptofolio",
	Short: "Cryptofolio - crypto investment portal client",
	Long: `Cryptofolio is the command line client of the crypto investment
portal. It reads and writes the portal collections through the data
proxy and keeps working offline from a local cache or bundled demo
data when the backend is unreachable.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	if proxyURL != "" {
		cfg.ProxyURL = proxyURL
	}

	log = logger.New(cfg.Env)

	app = client.New(cfg, log)
	app.ApplySettings(cmd.Context())

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&proxyURL, "proxy", "", "data proxy URL (overrides PROXY_URL)")
}
