package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"papertrader/internal/market"
	"papertrader/internal/models"
	"papertrader/pkg/utils"
)

func newBuyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "buy TICKER AMOUNT",
		Short: "Buy shares for a euro amount at the current price",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrade(app, cmd, models.TradeBuy, args[0], args[1])
		},
	}
}

func newSellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sell TICKER AMOUNT",
		Short: "Sell shares for a euro amount at the current price",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrade(app, cmd, models.TradeSell, args[0], args[1])
		},
	}
}

func runTrade(app *App, cmd *cobra.Command, side models.TradeSide, ticker, amountArg string) error {
	stock, ok := market.LookupTicker(strings.ToUpper(ticker))
	if !ok {
		return fmt.Errorf("unknown ticker %q; see 'papertrader quotes'", ticker)
	}

	amount, err := strconv.ParseFloat(amountArg, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", amountArg)
	}

	price, ok := app.Prices.Price(stock.ID)
	if !ok {
		return fmt.Errorf("no price available for %s", stock.Ticker)
	}

	result := app.Ledger.Trade(models.TradeRequest{
		StockID: stock.ID,
		Ticker:  stock.Ticker,
		Name:    stock.Name,
		Side:    side,
		Amount:  amount,
		Price:   price,
	})

	if !result.Success {
		// The error message is written for end users; show it as-is.
		fmt.Fprintln(cmd.OutOrStdout(), result.Error)
		return nil
	}

	trade := result.Trade
	verb := "Bought"
	if side == models.TradeSell {
		verb = "Sold"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s for %s at %s\n",
		verb, utils.FormatShares(trade.Shares), trade.Ticker,
		utils.FormatEuro(trade.Amount), utils.FormatEuro(trade.Price))

	snap := app.Ledger.Snapshot()
	fmt.Fprintf(cmd.OutOrStdout(), "Balance: %s\n", utils.FormatEuro(snap.Balance))
	return nil
}
