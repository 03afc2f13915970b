// Package integration contains cross-package tests that exercise the
// ledger against the real SQLite store.
package integration

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"papertrader/internal/config"
	"papertrader/internal/ledger"
	"papertrader/internal/models"
	"papertrader/internal/store"
)

func testConfig() config.LedgerConfig {
	return config.LedgerConfig{
		DemoBalance: 10000,
		XPPerTrade:  15,
		DustEpsilon: 1e-4,
	}
}

func openStore(t *testing.T, dbPath string) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLiteStore(dbPath, zerolog.Nop())
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	return s
}

// TestLedgerSurvivesRestart drives trades through a ledger backed by a
// real SQLite file, then rebuilds everything from disk the way an app
// restart would, and checks the state is equivalent.
func TestLedgerSurvivesRestart(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ledger.db")
	ctx := context.Background()
	cfg := testConfig()

	s := openStore(t, dbPath)
	l := ledger.New(cfg, s, zerolog.Nop())
	l.Load(ctx)

	buy := models.TradeRequest{
		StockID: "aapl", Ticker: "AAPL", Name: "Apple Inc.",
		Side: models.TradeBuy, Amount: 100, Price: 10,
	}
	if result := l.Trade(buy); !result.Success {
		t.Fatalf("buy failed: %s", result.Error)
	}
	sell := models.TradeRequest{
		StockID: "aapl", Ticker: "AAPL", Name: "Apple Inc.",
		Side: models.TradeSell, Amount: 60, Price: 12,
	}
	if result := l.Trade(sell); !result.Success {
		t.Fatalf("sell failed: %s", result.Error)
	}
	l.AwardXP(25)
	l.AdvanceStreak()

	before := l.Snapshot()
	l.Flush()
	if err := s.Close(); err != nil {
		t.Fatalf("closing store: %v", err)
	}

	// Restart: fresh store, fresh ledger, hydrate from disk.
	s2 := openStore(t, dbPath)
	defer s2.Close()
	l2 := ledger.New(cfg, s2, zerolog.Nop())
	l2.Load(ctx)

	after := l2.Snapshot()
	if after.Balance != before.Balance {
		t.Errorf("balance after restart = %v, want %v", after.Balance, before.Balance)
	}
	if !reflect.DeepEqual(after.Holdings, before.Holdings) {
		t.Errorf("holdings after restart = %+v, want %+v", after.Holdings, before.Holdings)
	}
	if len(after.Trades) != len(before.Trades) {
		t.Errorf("trade log length after restart = %d, want %d", len(after.Trades), len(before.Trades))
	}
	if after.XP != before.XP || after.Level != before.Level || after.Streak != before.Streak {
		t.Errorf("counters after restart = %d/%d/%d, want %d/%d/%d",
			after.XP, after.Level, after.Streak, before.XP, before.Level, before.Streak)
	}
}

// TestResetWipesDisk checks that a reset clears the persisted keys, so a
// restart after reset comes up with the seed state.
func TestResetWipesDisk(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ledger.db")
	ctx := context.Background()
	cfg := testConfig()

	s := openStore(t, dbPath)
	l := ledger.New(cfg, s, zerolog.Nop())
	l.Load(ctx)

	l.Trade(models.TradeRequest{
		StockID: "tsla", Ticker: "TSLA", Name: "Tesla, Inc.",
		Side: models.TradeBuy, Amount: 500, Price: 250,
	})
	l.Flush()

	l.Reset()
	l.Flush()
	if err := s.Close(); err != nil {
		t.Fatalf("closing store: %v", err)
	}

	s2 := openStore(t, dbPath)
	defer s2.Close()
	l2 := ledger.New(cfg, s2, zerolog.Nop())
	l2.Load(ctx)

	if !reflect.DeepEqual(l2.Snapshot(), ledger.BuildSeed(cfg)) {
		t.Error("restart after reset should come up with the canonical seed")
	}
}
