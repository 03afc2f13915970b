package ledger

import (
	"math"
	"testing"

	"papertrader/internal/models"
)

// mapSource is a test PriceSource backed by a plain map.
type mapSource map[string]float64

func (m mapSource) Price(stockID string) (float64, bool) {
	p, ok := m[stockID]
	return p, ok
}

func TestPortfolioCost(t *testing.T) {
	snap := emptySnapshot(0)
	snap.Holdings["aapl"] = models.Holding{StockID: "aapl", Shares: 10, TotalCost: 100}
	snap.Holdings["tsla"] = models.Holding{StockID: "tsla", Shares: 2, TotalCost: 450.50}

	if got := PortfolioCost(snap); got != 550.50 {
		t.Errorf("PortfolioCost = %v, want 550.50", got)
	}
}

func TestPortfolioValuePrefersLivePrices(t *testing.T) {
	snap := emptySnapshot(0)
	snap.Holdings["aapl"] = models.Holding{StockID: "aapl", Shares: 10, TotalCost: 100}
	snap.Holdings["tsla"] = models.Holding{StockID: "tsla", Shares: 2, TotalCost: 400}

	live := PriceMap{"aapl": 12}
	fallback := mapSource{"aapl": 99, "tsla": 250}

	// aapl valued at the live 12, tsla at the stale 250.
	if got := PortfolioValue(snap, live, fallback); got != 620 {
		t.Errorf("PortfolioValue = %v, want 620", got)
	}
}

func TestPortfolioValueUnpricedHoldingContributesZero(t *testing.T) {
	snap := emptySnapshot(0)
	snap.Holdings["aapl"] = models.Holding{StockID: "aapl", Shares: 10, TotalCost: 100}
	snap.Holdings["xyz"] = models.Holding{StockID: "xyz", Shares: 5, TotalCost: 50}

	live := PriceMap{"aapl": 11}

	if got := PortfolioValue(snap, live, nil); got != 110 {
		t.Errorf("PortfolioValue = %v, want 110", got)
	}
}

func TestPortfolioPnL(t *testing.T) {
	snap := emptySnapshot(0)
	snap.Holdings["aapl"] = models.Holding{StockID: "aapl", Shares: 10, TotalCost: 100}

	pnl, pnlPercent := PortfolioPnL(snap, PriceMap{"aapl": 12}, nil)
	if pnl != 20 {
		t.Errorf("pnl = %v, want 20", pnl)
	}
	if pnlPercent != 20 {
		t.Errorf("pnlPercent = %v, want 20", pnlPercent)
	}
}

func TestPortfolioPnLEmptyPortfolio(t *testing.T) {
	snap := emptySnapshot(1000)

	pnl, pnlPercent := PortfolioPnL(snap, PriceMap{}, nil)
	if pnl != 0 {
		t.Errorf("pnl = %v, want 0", pnl)
	}
	if pnlPercent != 0 || math.IsNaN(pnlPercent) || math.IsInf(pnlPercent, 0) {
		t.Errorf("pnlPercent = %v, want exactly 0", pnlPercent)
	}
}
