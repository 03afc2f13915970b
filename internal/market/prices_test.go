package market

import "testing"

func TestStaticSourceSeededFromCatalog(t *testing.T) {
	s := NewStaticSource()
	for _, stock := range Catalog() {
		p, ok := s.Price(stock.ID)
		if !ok {
			t.Errorf("no price for %s", stock.ID)
			continue
		}
		if p != stock.BasePrice {
			t.Errorf("price for %s = %v, want seeded base price %v", stock.ID, p, stock.BasePrice)
		}
	}
}

func TestStaticSourceSetPriceOverwrites(t *testing.T) {
	s := NewStaticSource()
	s.SetPrice("aapl", 210.55)

	p, ok := s.Price("aapl")
	if !ok || p != 210.55 {
		t.Errorf("price after update = %v,%v, want 210.55", p, ok)
	}
	if snap := s.Snapshot(); snap["aapl"] != 210.55 {
		t.Errorf("snapshot price = %v, want the updated 210.55", snap["aapl"])
	}
}

func TestStaticSourceUnknownStock(t *testing.T) {
	s := NewStaticSource()
	if _, ok := s.Price("doge"); ok {
		t.Error("unknown stock ID reported a price")
	}
}

func TestStaticSourceSnapshotIsolated(t *testing.T) {
	s := NewStaticSource()
	snap := s.Snapshot()
	snap["aapl"] = 1

	if p, _ := s.Price("aapl"); p == 1 {
		t.Error("mutating a snapshot leaked into the source")
	}
}
