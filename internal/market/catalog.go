// Package market provides the demo stock catalog and price lookup.
// The ledger consumes prices from here; it never fetches them itself.
package market

// Stock describes one tradable demo instrument.
type Stock struct {
	ID        string
	Ticker    string
	Name      string
	BasePrice float64
}

// catalog is the fixed demo universe shown in the app.
var catalog = []Stock{
	{ID: "aapl", Ticker: "AAPL", Name: "Apple Inc.", BasePrice: 187.40},
	{ID: "tsla", Ticker: "TSLA", Name: "Tesla, Inc.", BasePrice: 246.10},
	{ID: "nvda", Ticker: "NVDA", Name: "NVIDIA Corporation", BasePrice: 131.25},
	{ID: "amzn", Ticker: "AMZN", Name: "Amazon.com, Inc.", BasePrice: 178.90},
	{ID: "goog", Ticker: "GOOG", Name: "Alphabet Inc.", BasePrice: 165.30},
	{ID: "msft", Ticker: "MSFT", Name: "Microsoft Corporation", BasePrice: 421.75},
	{ID: "meta", Ticker: "META", Name: "Meta Platforms, Inc.", BasePrice: 502.60},
	{ID: "nflx", Ticker: "NFLX", Name: "Netflix, Inc.", BasePrice: 645.20},
}

// Catalog returns the demo stock universe.
func Catalog() []Stock {
	out := make([]Stock, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a stock by its ID.
func Lookup(id string) (Stock, bool) {
	for _, s := range catalog {
		if s.ID == id {
			return s, true
		}
	}
	return Stock{}, false
}

// LookupTicker finds a stock by its ticker symbol.
func LookupTicker(ticker string) (Stock, bool) {
	for _, s := range catalog {
		if s.Ticker == ticker {
			return s, true
		}
	}
	return Stock{}, false
}
