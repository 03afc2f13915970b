package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"papertrader/internal/config"
	apperrors "papertrader/internal/errors"
	"papertrader/internal/logging"
	"papertrader/internal/models"
	"papertrader/internal/store"
)

// saveTimeout bounds a single background save so a wedged disk cannot
// pile up goroutines forever.
const saveTimeout = 5 * time.Second

// Ledger owns the authoritative in-memory snapshot and is the single
// writer path for all mutations. Every update reads the latest snapshot
// under the lock and replaces it wholesale, so two independently
// computed next-states can never race each other.
type Ledger struct {
	mu   sync.RWMutex
	snap Snapshot
	seq  uint64

	exec   *Executor
	store  store.Store
	logger zerolog.Logger
	cfg    config.LedgerConfig

	loaded bool
	saves  sync.WaitGroup

	// persistMu serializes background saves and clears. persisted is the
	// seq of the newest snapshot committed to storage; writes carrying an
	// older seq are skipped so the durable mirror never goes backwards.
	persistMu sync.Mutex
	persisted uint64
}

// New creates a ledger seeded with the demo portfolio. The store may be
// nil, in which case the ledger runs purely in memory. Call Load before
// trading to hydrate persisted state.
func New(cfg config.LedgerConfig, st store.Store, logger zerolog.Logger) *Ledger {
	return &Ledger{
		snap:   BuildSeed(cfg),
		exec:   NewExecutor(cfg),
		store:  st,
		logger: logging.WithComponent(logger, "ledger"),
		cfg:    cfg,
	}
}

// Load hydrates the snapshot from storage. Each persisted field falls
// back to its seed default independently, so a corrupt value never
// discards the rest of the state or fails startup. Persistence writes
// are suppressed until Load has completed; without that, an early trade
// would clobber the stored state with seed data.
func (l *Ledger) Load(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loaded {
		return
	}

	if l.store == nil {
		l.loaded = true
		return
	}

	fields, err := l.store.Load(ctx)
	if err != nil {
		l.logger.Warn().Err(err).Msg("Loading persisted ledger failed, starting from seed")
		l.loaded = true
		return
	}

	snap := BuildSeed(l.cfg)
	if fields.Balance != nil {
		if *fields.Balance >= 0 {
			snap.Balance = *fields.Balance
		} else {
			l.logDiscardedField(store.KeyBalance)
		}
	}
	if fields.Holdings != nil {
		if validHoldings(fields.Holdings) {
			snap.Holdings = fields.Holdings
		} else {
			l.logDiscardedField(store.KeyHoldings)
		}
	}
	if fields.Trades != nil {
		if validTrades(fields.Trades) {
			snap.Trades = fields.Trades
		} else {
			l.logDiscardedField(store.KeyTrades)
		}
	}
	if fields.XP != nil {
		if *fields.XP >= 0 {
			snap.XP = *fields.XP
			snap.Level = LevelForXP(*fields.XP)
		} else {
			l.logDiscardedField(store.KeyXP)
		}
	}
	if fields.Streak != nil {
		if *fields.Streak >= 0 {
			snap.Streak = *fields.Streak
		} else {
			l.logDiscardedField(store.KeyStreak)
		}
	}

	l.snap = snap
	l.loaded = true
	l.logger.Debug().
		Float64("balance", snap.Balance).
		Int("holdings", len(snap.Holdings)).
		Int("trades", len(snap.Trades)).
		Msg("Ledger hydrated from storage")
}

// Loaded reports whether startup hydration has completed.
func (l *Ledger) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

// Snapshot returns a copy of the current state. The copy is detached;
// mutating it cannot affect the ledger.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snap.Clone()
}

// Trade validates and applies a buy or sell against the latest snapshot.
// On success the snapshot is replaced and persisted in the background;
// on failure the state is untouched and the result carries the message.
func (l *Ledger) Trade(req models.TradeRequest) models.TradeResult {
	l.mu.Lock()
	next, result := l.exec.Execute(l.snap, req)
	if result.Success {
		l.snap = next
		l.seq++
	}
	l.mu.Unlock()

	if result.Success {
		logging.LogTrade(l.logger, string(req.Side), req.Ticker, req.Amount, result.Trade.Shares, req.Price)
		l.persistAsync()
	} else {
		l.logger.Debug().
			Str("ticker", req.Ticker).
			Str("side", string(req.Side)).
			Str("reason", result.Error).
			Msg("Trade rejected")
	}
	return result
}

// AwardXP grants experience points outside of trading, e.g. for
// completing a lesson or a daily challenge.
func (l *Ledger) AwardXP(points int) {
	if points <= 0 {
		return
	}
	l.mu.Lock()
	l.snap.XP += points
	l.snap.Level = LevelForXP(l.snap.XP)
	l.seq++
	l.mu.Unlock()

	l.persistAsync()
}

// AdvanceStreak bumps the daily activity streak.
func (l *Ledger) AdvanceStreak() {
	l.mu.Lock()
	l.snap.Streak++
	l.seq++
	l.mu.Unlock()

	l.persistAsync()
}

// Reset replaces the state with the canonical seed snapshot and deletes
// all persisted keys. Calling it repeatedly yields identical snapshots.
func (l *Ledger) Reset() {
	l.mu.Lock()
	l.snap = BuildSeed(l.cfg)
	l.seq++
	seq := l.seq
	loaded := l.loaded
	l.mu.Unlock()

	l.logger.Info().Msg("Ledger reset to seed state")

	if l.store == nil || !loaded {
		return
	}
	l.saves.Add(1)
	go func() {
		defer l.saves.Done()
		l.persistMu.Lock()
		defer l.persistMu.Unlock()
		if seq <= l.persisted {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if err := l.store.Clear(ctx); err != nil {
			l.logger.Error().Err(err).Msg("Clearing persisted ledger failed")
			return
		}
		l.persisted = seq
	}()
}

// persistAsync mirrors the current snapshot to storage without blocking
// the caller. Failures are logged and swallowed. Saves are suppressed
// until Load completes, and writes are serialized with a seq check so a
// slow save captured before a newer mutation can never commit last and
// leave the durable mirror stale.
func (l *Ledger) persistAsync() {
	l.mu.RLock()
	loaded := l.loaded
	snap := l.snap.Clone()
	seq := l.seq
	l.mu.RUnlock()

	if l.store == nil {
		return
	}
	if !loaded {
		l.logger.Debug().Err(apperrors.ErrNotLoaded).Msg("Skipping save before initial load")
		return
	}

	l.saves.Add(1)
	go func() {
		defer l.saves.Done()
		l.persistMu.Lock()
		defer l.persistMu.Unlock()
		if seq <= l.persisted {
			// A newer snapshot already reached storage.
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		rec := store.Record{
			Balance:  snap.Balance,
			Holdings: snap.Holdings,
			Trades:   snap.Trades,
			XP:       snap.XP,
			Streak:   snap.Streak,
		}
		if err := l.store.Save(ctx, rec); err != nil {
			l.logger.Error().Err(err).Msg("Saving ledger failed")
			return
		}
		l.persisted = seq
	}()
}

// Flush waits for all in-flight background saves. Intended for shutdown
// and tests.
func (l *Ledger) Flush() {
	l.saves.Wait()
}

func (l *Ledger) logDiscardedField(key string) {
	l.logger.Warn().
		Str("key", key).
		Msg("Persisted field violates the data model, falling back to seed value")
}

// validHoldings reports whether every persisted holding satisfies the
// data model: keyed by its own stock ID, a positive share count, and a
// non-negative cost basis.
func validHoldings(holdings map[string]models.Holding) bool {
	for id, h := range holdings {
		if h.StockID != id || h.Shares <= 0 || h.TotalCost < 0 {
			return false
		}
	}
	return true
}

// validTrades reports whether every persisted trade log entry is well
// formed.
func validTrades(trades []models.Trade) bool {
	for _, tr := range trades {
		if !tr.Side.Valid() || tr.Amount <= 0 || tr.Shares <= 0 || tr.Price <= 0 {
			return false
		}
	}
	return true
}
