package ledger

import (
	"time"

	"github.com/google/uuid"

	"papertrader/internal/config"
	apperrors "papertrader/internal/errors"
	"papertrader/internal/models"
	"papertrader/pkg/utils"
)

// Executor validates and applies a single trade against a snapshot,
// producing the next snapshot plus a result. It performs no I/O and
// holds no state of its own, so it is independently testable.
type Executor struct {
	xpPerTrade    int
	dustEpsilon   float64
	tradeLogLimit int

	// Injectable for tests.
	now   func() time.Time
	newID func() string
}

// NewExecutor creates an executor with the given ledger tunables.
func NewExecutor(cfg config.LedgerConfig) *Executor {
	return &Executor{
		xpPerTrade:    cfg.XPPerTrade,
		dustEpsilon:   cfg.DustEpsilon,
		tradeLogLimit: cfg.TradeLogLimit,
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

// Execute validates req against snap and, on success, returns the next
// snapshot plus the recorded trade. On any validation failure the input
// snapshot is returned untouched and the result carries a human-readable
// message for the UI to display verbatim.
func (e *Executor) Execute(snap Snapshot, req models.TradeRequest) (Snapshot, models.TradeResult) {
	amount := utils.RoundMoney(req.Amount)
	if terr := e.validate(snap, req, amount); terr != nil {
		return snap, models.TradeResult{Success: false, Error: terr.Message}
	}

	shares := utils.RoundShares(amount / req.Price)
	next := snap.Clone()

	if req.Side == models.TradeBuy {
		next.Balance = utils.RoundMoney(next.Balance - amount)
		if h, ok := next.Holdings[req.StockID]; ok {
			h.Shares = utils.RoundShares(h.Shares + shares)
			h.TotalCost = utils.RoundMoney(h.TotalCost + amount)
			next.Holdings[req.StockID] = h
		} else {
			next.Holdings[req.StockID] = models.Holding{
				StockID:   req.StockID,
				Ticker:    req.Ticker,
				Name:      req.Name,
				Shares:    shares,
				TotalCost: amount,
			}
		}
	} else {
		h := next.Holdings[req.StockID]
		avgCost := utils.RoundMoney(h.TotalCost / h.Shares)
		costRemoved := utils.RoundMoney(avgCost * shares)
		newShares := utils.RoundShares(h.Shares - shares)

		if newShares < e.dustEpsilon {
			// Fully closed; residual dust is discarded rather than
			// kept as a near-zero position.
			delete(next.Holdings, req.StockID)
		} else {
			h.Shares = newShares
			h.TotalCost = utils.RoundMoney(h.TotalCost - costRemoved)
			next.Holdings[req.StockID] = h
		}
		next.Balance = utils.RoundMoney(next.Balance + amount)
	}

	trade := models.Trade{
		ID:        e.newID(),
		StockID:   req.StockID,
		Ticker:    req.Ticker,
		Name:      req.Name,
		Side:      req.Side,
		Amount:    amount,
		Shares:    shares,
		Price:     req.Price,
		Timestamp: e.now(),
	}
	next.Trades = append(next.Trades, trade)
	if e.tradeLogLimit > 0 && len(next.Trades) > e.tradeLogLimit {
		trimmed := make([]models.Trade, e.tradeLogLimit)
		copy(trimmed, next.Trades[len(next.Trades)-e.tradeLogLimit:])
		next.Trades = trimmed
	}

	next.XP += e.xpPerTrade
	next.Level = LevelForXP(next.XP)

	return next, models.TradeResult{Success: true, Trade: &trade}
}

// validate checks the request preconditions in order, before any mutation.
// amount is the rounded value Execute will move, so every check sees
// exactly what a successful trade would apply.
func (e *Executor) validate(snap Snapshot, req models.TradeRequest, amount float64) *apperrors.TradeError {
	if amount <= 0 {
		return apperrors.NewTradeError(apperrors.CodeInvalidAmount,
			"Invalid amount. Enter an amount greater than zero.")
	}
	if req.Price <= 0 {
		return apperrors.NewTradeError(apperrors.CodeInvalidPrice,
			"Invalid price. A live quote is required to trade.")
	}

	shares := utils.RoundShares(amount / req.Price)
	if shares <= 0 {
		// Rounding to 4 decimals swallowed the whole order.
		return apperrors.NewTradeError(apperrors.CodeInvalidAmount,
			"Amount too small to trade at this price.")
	}

	switch req.Side {
	case models.TradeBuy:
		if amount > snap.Balance {
			return apperrors.NewTradeErrorf(apperrors.CodeInsufficientBalance,
				"Insufficient balance. You have %s but need %s.",
				utils.FormatEuro(snap.Balance), utils.FormatEuro(amount))
		}
	case models.TradeSell:
		h, ok := snap.Holding(req.StockID)
		if !ok || h.Shares < shares {
			held := 0.0
			if ok {
				held = h.Shares
			}
			return apperrors.NewTradeErrorf(apperrors.CodeInsufficientShares,
				"Insufficient shares. You hold %s but tried to sell %s.",
				utils.FormatShares(held), utils.FormatShares(shares))
		}
	default:
		return apperrors.NewTradeErrorf(apperrors.CodeInvalidAmount,
			"Unknown trade type %q.", string(req.Side))
	}

	return nil
}
