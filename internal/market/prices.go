package market

import "sync"

// StaticSource serves last-known prices for the demo universe, seeded
// from the catalog base prices. The app's feed overwrites entries as
// ticks arrive; valuation falls back to whatever was seen last.
type StaticSource struct {
	mu     sync.RWMutex
	prices map[string]float64
}

// NewStaticSource creates a price source seeded with catalog base prices.
func NewStaticSource() *StaticSource {
	prices := make(map[string]float64, len(catalog))
	for _, s := range catalog {
		prices[s.ID] = s.BasePrice
	}
	return &StaticSource{prices: prices}
}

// Price returns the last-known price for a stock ID.
func (s *StaticSource) Price(stockID string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.prices[stockID]
	return p, ok
}

// SetPrice records a fresh price for a stock ID.
func (s *StaticSource) SetPrice(stockID string, price float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices[stockID] = price
}

// Snapshot returns a copy of all current prices, keyed by stock ID.
func (s *StaticSource) Snapshot() map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]float64, len(s.prices))
	for id, p := range s.prices {
		out[id] = p
	}
	return out
}
