package ledger

import (
	"reflect"
	"testing"
)

func TestBuildSeed(t *testing.T) {
	cfg := testLedgerConfig()
	snap := BuildSeed(cfg)

	// Demo balance minus the cost of the seed holdings.
	if snap.Balance != 9000 {
		t.Errorf("balance = %v, want 9000", snap.Balance)
	}
	if len(snap.Holdings) != 3 {
		t.Fatalf("holdings = %d, want 3", len(snap.Holdings))
	}

	aapl, ok := snap.Holdings["aapl"]
	if !ok {
		t.Fatal("seed portfolio missing aapl")
	}
	if aapl.Ticker != "AAPL" || aapl.Name == "" {
		t.Errorf("seed holding not enriched from catalog: %+v", aapl)
	}
	if aapl.Shares != 2 || aapl.TotalCost != 350 {
		t.Errorf("aapl seed = {shares:%v cost:%v}, want {shares:2 cost:350}", aapl.Shares, aapl.TotalCost)
	}

	if len(snap.Trades) != 0 {
		t.Error("seed trade log must be empty")
	}
	if snap.Level != LevelForXP(snap.XP) {
		t.Error("seed level not derived from xp")
	}
}

func TestBuildSeedDeterministic(t *testing.T) {
	cfg := testLedgerConfig()
	if !reflect.DeepEqual(BuildSeed(cfg), BuildSeed(cfg)) {
		t.Error("BuildSeed is not deterministic")
	}
}

func TestBuildSeedBalanceNeverNegative(t *testing.T) {
	cfg := testLedgerConfig()
	cfg.DemoBalance = 100 // less than the seed holdings cost
	if got := BuildSeed(cfg).Balance; got != 0 {
		t.Errorf("balance = %v, want clamp to 0", got)
	}
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 3},
		{1000, 11},
	}
	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}
