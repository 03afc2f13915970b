package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"papertrader/internal/ledger"
	"papertrader/internal/market"
	"papertrader/pkg/utils"
)

func newPortfolioCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "portfolio",
		Aliases: []string{"pf"},
		Short:   "Show balance, holdings, and profit/loss",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Ledger.Snapshot()
			live := ledger.PriceMap(app.Prices.Snapshot())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cash balance: %s\n\n", utils.FormatEuro(snap.Balance))

			if len(snap.Holdings) == 0 {
				fmt.Fprintln(out, "No open positions.")
			} else {
				ids := make([]string, 0, len(snap.Holdings))
				for id := range snap.Holdings {
					ids = append(ids, id)
				}
				sort.Strings(ids)

				w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "TICKER\tSHARES\tAVG COST\tVALUE\tP&L")
				for _, id := range ids {
					h := snap.Holdings[id]
					price, ok := live[id]
					if !ok {
						price, ok = app.Prices.Price(id)
					}
					value := 0.0
					if ok {
						value = utils.RoundMoney(h.Shares * price)
					}
					avgCost := 0.0
					if h.Shares > 0 {
						avgCost = utils.RoundMoney(h.TotalCost / h.Shares)
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
						h.Ticker,
						utils.FormatShares(h.Shares),
						utils.FormatEuro(avgCost),
						utils.FormatEuro(value),
						utils.FormatEuro(value-h.TotalCost))
				}
				w.Flush()
			}

			cost := ledger.PortfolioCost(snap)
			value := ledger.PortfolioValue(snap, live, app.Prices)
			pnl, pnlPercent := ledger.PortfolioPnL(snap, live, app.Prices)
			fmt.Fprintf(out, "\nInvested: %s  Value: %s  P&L: %s (%s)\n",
				utils.FormatEuro(cost), utils.FormatEuro(value),
				utils.FormatEuro(pnl), utils.FormatPercent(pnlPercent))
			return nil
		},
	}
}

func newHistoryCmd(app *App) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the trade log, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Ledger.Snapshot()
			out := cmd.OutOrStdout()

			if len(snap.Trades) == 0 {
				fmt.Fprintln(out, "No trades yet.")
				return nil
			}

			n := len(snap.Trades)
			if limit > 0 && limit < n {
				n = limit
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tSIDE\tTICKER\tAMOUNT\tSHARES\tPRICE")
			for i := len(snap.Trades) - 1; i >= len(snap.Trades)-n; i-- {
				t := snap.Trades[i]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					t.Timestamp.Format("2006-01-02 15:04"),
					t.Side, t.Ticker,
					utils.FormatEuro(t.Amount),
					utils.FormatShares(t.Shares),
					utils.FormatEuro(t.Price))
			}
			w.Flush()
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of trades to show")
	return cmd
}

func newQuotesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "quotes",
		Short: "List the demo stock universe with current prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TICKER\tNAME\tPRICE")
			for _, s := range market.Catalog() {
				price, _ := app.Prices.Price(s.ID)
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.Ticker, s.Name, utils.FormatEuro(price))
			}
			return w.Flush()
		},
	}
}

func newProfileCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show XP, level, and streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Ledger.Snapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "Level %d  •  %d XP  •  %d day streak\n",
				snap.Level, snap.XP, snap.Streak)
			return nil
		},
	}
}

func newResetCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the demo portfolio to its starting state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("this wipes your demo portfolio and trade history; re-run with --yes to confirm")
			}
			app.Ledger.Reset()
			snap := app.Ledger.Snapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "Portfolio reset. Balance: %s, holdings: %d\n",
				utils.FormatEuro(snap.Balance), len(snap.Holdings))
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")
	return cmd
}
