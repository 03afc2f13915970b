// Package models provides domain models for the demo brokerage ledger.
package models

import "time"

// TradeSide represents the side of a trade.
type TradeSide string

const (
	TradeBuy  TradeSide = "buy"
	TradeSell TradeSide = "sell"
)

// Valid reports whether the side is one of the known trade sides.
func (s TradeSide) Valid() bool {
	return s == TradeBuy || s == TradeSell
}

// Holding represents one open position. TotalCost is the cumulative
// amount paid for all currently held shares (weighted-average cost
// basis, not per-lot).
type Holding struct {
	StockID   string  `json:"stockId"`
	Ticker    string  `json:"ticker"`
	Name      string  `json:"name"`
	Shares    float64 `json:"shares"`
	TotalCost float64 `json:"totalCost"`
}

// Trade represents one immutable entry in the append-only trade log.
type Trade struct {
	ID        string    `json:"id"`
	StockID   string    `json:"stockId"`
	Ticker    string    `json:"ticker"`
	Name      string    `json:"name"`
	Side      TradeSide `json:"type"`
	Amount    float64   `json:"amount"`
	Shares    float64   `json:"shares"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// TradeRequest is the input contract consumed from the UI layer.
type TradeRequest struct {
	StockID string
	Ticker  string
	Name    string
	Side    TradeSide
	Amount  float64
	Price   float64
}

// TradeResult is the outcome of a trade request. Error carries a
// human-readable message suitable for displaying verbatim.
type TradeResult struct {
	Success bool
	Error   string
	Trade   *Trade
}
