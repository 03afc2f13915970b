package ledger

import "papertrader/pkg/utils"

// PriceMap maps stock IDs to live prices, supplied fresh by the
// market-data layer on each valuation call.
type PriceMap map[string]float64

// PriceSource supplies last-known prices for holdings missing from a
// live price map.
type PriceSource interface {
	Price(stockID string) (float64, bool)
}

// PortfolioCost returns the total cost basis of all holdings.
func PortfolioCost(snap Snapshot) float64 {
	var cost float64
	for _, h := range snap.Holdings {
		cost += h.TotalCost
	}
	return utils.RoundMoney(cost)
}

// PortfolioValue returns the current market value of all holdings. A
// holding is valued at its live price when present, else at the
// fallback source's last-known price; with no price at all it
// contributes zero.
func PortfolioValue(snap Snapshot, live PriceMap, fallback PriceSource) float64 {
	var value float64
	for id, h := range snap.Holdings {
		price, ok := live[id]
		if !ok && fallback != nil {
			price, ok = fallback.Price(id)
		}
		if !ok {
			continue
		}
		value += h.Shares * price
	}
	return utils.RoundMoney(value)
}

// PortfolioPnL returns the absolute and percentage profit/loss of the
// portfolio. The percentage is defined as zero when the cost basis is
// zero, so an empty portfolio never yields NaN or Inf.
func PortfolioPnL(snap Snapshot, live PriceMap, fallback PriceSource) (pnl, pnlPercent float64) {
	cost := PortfolioCost(snap)
	value := PortfolioValue(snap, live, fallback)

	pnl = utils.RoundMoney(value - cost)
	if cost > 0 {
		pnlPercent = utils.RoundMoney(pnl / cost * 100)
	}
	return pnl, pnlPercent
}
