package ledger

import (
	"papertrader/internal/config"
	"papertrader/internal/market"
	"papertrader/internal/models"
	"papertrader/pkg/utils"
)

// seedPosition is one entry of the fixed demo portfolio every new user
// starts with.
type seedPosition struct {
	stockID   string
	shares    float64
	totalCost float64
}

var seedPortfolio = []seedPosition{
	{stockID: "aapl", shares: 2, totalCost: 350},
	{stockID: "tsla", shares: 1.5, totalCost: 375},
	{stockID: "nvda", shares: 2, totalCost: 275},
}

// BuildSeed constructs the canonical starting snapshot: the demo
// holdings plus whatever remains of the demo balance after paying for
// them. Calling it repeatedly always yields an identical snapshot.
func BuildSeed(cfg config.LedgerConfig) Snapshot {
	holdings := make(map[string]models.Holding, len(seedPortfolio))
	var seedCost float64
	for _, p := range seedPortfolio {
		stock, ok := market.Lookup(p.stockID)
		if !ok {
			continue
		}
		holdings[p.stockID] = models.Holding{
			StockID:   p.stockID,
			Ticker:    stock.Ticker,
			Name:      stock.Name,
			Shares:    utils.RoundShares(p.shares),
			TotalCost: utils.RoundMoney(p.totalCost),
		}
		seedCost += p.totalCost
	}

	balance := utils.RoundMoney(cfg.DemoBalance - seedCost)
	if balance < 0 {
		balance = 0
	}

	return Snapshot{
		Balance:  balance,
		Holdings: holdings,
		Trades:   []models.Trade{},
		XP:       cfg.SeedXP,
		Level:    LevelForXP(cfg.SeedXP),
		Streak:   cfg.SeedStreak,
	}
}
