// Package ledger implements the simulated brokerage ledger: demo cash
// balance, share holdings on a weighted-average cost basis, the
// append-only trade log, and gamification counters.
package ledger

import "papertrader/internal/models"

// Snapshot is the full ledger state at one point in time. Snapshots are
// replaced wholesale on every mutation; callers never observe a
// partially updated one.
type Snapshot struct {
	Balance  float64
	Holdings map[string]models.Holding
	Trades   []models.Trade
	XP       int
	Level    int
	Streak   int
}

// LevelForXP derives the gamification level from accumulated XP.
func LevelForXP(xp int) int {
	return xp/100 + 1
}

// Clone returns a deep copy of the snapshot. The holdings map and trade
// log are copied so the original can never be mutated through the clone.
func (s Snapshot) Clone() Snapshot {
	next := s
	next.Holdings = make(map[string]models.Holding, len(s.Holdings))
	for id, h := range s.Holdings {
		next.Holdings[id] = h
	}
	next.Trades = make([]models.Trade, len(s.Trades))
	copy(next.Trades, s.Trades)
	return next
}

// Holding returns the holding for a stock ID, if present.
func (s Snapshot) Holding(stockID string) (models.Holding, bool) {
	h, ok := s.Holdings[stockID]
	return h, ok
}
