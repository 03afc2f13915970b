// Package cli provides the demo command-line front-end for the ledger.
// It plays the role of the app's UI layer: it owns the single ledger
// instance and displays trade errors verbatim.
package cli

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"papertrader/internal/config"
	"papertrader/internal/ledger"
	"papertrader/internal/logging"
	"papertrader/internal/market"
	"papertrader/internal/store"
)

// Version information
const Version = "0.1.0"

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Ledger *ledger.Ledger
	Prices *market.StaticSource
	Store  store.Store
}

// NewRootCmd creates the root command and wires the application together.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) (*cobra.Command, *App) {
	app := &App{
		Config: cfg,
		Logger: logger,
		Prices: market.NewStaticSource(),
	}

	dataStore, err := store.NewSQLiteStore(cfg.Storage.DBPath, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to open ledger store, running in memory only")
	} else {
		app.Store = dataStore
	}

	app.Ledger = ledger.New(cfg.Ledger, app.Store, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	app.Ledger.Load(ctx)
	cancel()

	rootCmd := &cobra.Command{
		Use:   "papertrader",
		Short: "Paper Trader - demo brokerage ledger CLI",
		Long: `Paper Trader is a demo stock trading simulator.

You start with a demo cash balance and a small seed portfolio. Buys and
sells run against simulated money only; nothing here touches a real
brokerage.

Use 'papertrader help <command>' for more information about a command.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		newBuyCmd(app),
		newSellCmd(app),
		newPortfolioCmd(app),
		newHistoryCmd(app),
		newQuotesCmd(app),
		newProfileCmd(app),
		newResetCmd(app),
	)

	return rootCmd, app
}

// Close flushes pending saves and releases the store.
func (a *App) Close() {
	if a.Ledger != nil {
		a.Ledger.Flush()
	}
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Closing ledger store failed")
		}
	}
}
