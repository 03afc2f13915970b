// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"papertrader/internal/models"
)

// Persisted key names. Each key holds one independently parsed JSON value;
// a missing or corrupt key degrades to the default for that field alone.
const (
	KeyBalance  = "balance"
	KeyHoldings = "holdings"
	KeyTrades   = "trades"
	KeyXP       = "xp"
	KeyStreak   = "streak"
)

// Fields is the result of a load. Pointer fields are nil when the key was
// absent or failed to parse; slice and map fields are nil in those cases.
type Fields struct {
	Balance  *float64
	Holdings map[string]models.Holding
	Trades   []models.Trade
	XP       *int
	Streak   *int
}

// Record is a full set of ledger fields for saving.
type Record struct {
	Balance  float64
	Holdings map[string]models.Holding
	Trades   []models.Trade
	XP       int
	Streak   int
}

// Store defines the interface for ledger persistence.
type Store interface {
	// Load reads all persisted fields. Individual field failures are
	// tolerated; only a wholly unreadable store returns an error.
	Load(ctx context.Context) (*Fields, error)

	// Save writes all fields in a single batch.
	Save(ctx context.Context, rec Record) error

	// Clear deletes every persisted key.
	Clear(ctx context.Context) error

	// Lifecycle
	Close() error
}
