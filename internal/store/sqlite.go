// Package store provides data persistence implementations.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	apperrors "papertrader/internal/errors"
	"papertrader/internal/models"
)

// SQLiteStore implements Store using a single SQLite key-value table.
// Values are JSON-encoded per key so each field loads independently.
type SQLiteStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewSQLiteStore creates a new SQLite-based ledger store.
func NewSQLiteStore(dbPath string, logger zerolog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db, logger: logger}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS ledger_kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	_, err := s.db.Exec(schema)
	return err
}

// Load reads all ledger keys. Each field is parsed in isolation: a key
// that is missing or holds unparseable JSON leaves the corresponding
// Fields entry nil and is logged, never failing the whole load.
func (s *SQLiteStore) Load(ctx context.Context) (*Fields, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM ledger_kv`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying ledger keys: %w", apperrors.ErrStoreRead, err)
	}
	defer rows.Close()

	raw := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: scanning ledger key: %w", apperrors.ErrStoreRead, err)
		}
		raw[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading ledger keys: %w", apperrors.ErrStoreRead, err)
	}

	fields := &Fields{}

	if v, ok := raw[KeyBalance]; ok {
		var balance float64
		if err := json.Unmarshal([]byte(v), &balance); err != nil {
			s.logDecodeFailure(KeyBalance, err)
		} else {
			fields.Balance = &balance
		}
	}

	if v, ok := raw[KeyHoldings]; ok {
		var holdings map[string]models.Holding
		if err := json.Unmarshal([]byte(v), &holdings); err != nil {
			s.logDecodeFailure(KeyHoldings, err)
		} else {
			fields.Holdings = holdings
		}
	}

	if v, ok := raw[KeyTrades]; ok {
		var trades []models.Trade
		if err := json.Unmarshal([]byte(v), &trades); err != nil {
			s.logDecodeFailure(KeyTrades, err)
		} else {
			fields.Trades = trades
		}
	}

	if v, ok := raw[KeyXP]; ok {
		var xp int
		if err := json.Unmarshal([]byte(v), &xp); err != nil {
			s.logDecodeFailure(KeyXP, err)
		} else {
			fields.XP = &xp
		}
	}

	if v, ok := raw[KeyStreak]; ok {
		var streak int
		if err := json.Unmarshal([]byte(v), &streak); err != nil {
			s.logDecodeFailure(KeyStreak, err)
		} else {
			fields.Streak = &streak
		}
	}

	return fields, nil
}

func (s *SQLiteStore) logDecodeFailure(key string, err error) {
	s.logger.Warn().
		Str("key", key).
		Err(err).
		Msg("Corrupt persisted field, falling back to default")
}

// Save writes every ledger field in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, rec Record) error {
	entries := []struct {
		key   string
		value interface{}
	}{
		{KeyBalance, rec.Balance},
		{KeyHoldings, rec.Holdings},
		{KeyTrades, rec.Trades},
		{KeyXP, rec.XP},
		{KeyStreak, rec.Streak},
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: starting save transaction: %w", apperrors.ErrStoreWrite, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO ledger_kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`)
	if err != nil {
		return fmt.Errorf("%w: preparing save statement: %w", apperrors.ErrStoreWrite, err)
	}
	defer stmt.Close()

	for _, e := range entries {
		data, err := json.Marshal(e.value)
		if err != nil {
			return fmt.Errorf("%w: encoding %s: %w", apperrors.ErrStoreWrite, e.key, err)
		}
		if _, err := stmt.ExecContext(ctx, e.key, string(data)); err != nil {
			return fmt.Errorf("%w: writing %s: %w", apperrors.ErrStoreWrite, e.key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing save: %w", apperrors.ErrStoreWrite, err)
	}
	return nil
}

// Clear deletes all persisted ledger keys.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM ledger_kv`); err != nil {
		return fmt.Errorf("%w: clearing ledger keys: %w", apperrors.ErrStoreWrite, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ensure SQLiteStore implements Store interface
var _ Store = (*SQLiteStore)(nil)
