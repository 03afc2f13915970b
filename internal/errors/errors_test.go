package errors

import (
	"fmt"
	"testing"
)

func TestTradeErrorMessage(t *testing.T) {
	err := NewTradeErrorf(CodeInsufficientBalance, "Insufficient balance. You have %s.", "€5.00")

	if err.Message != "Insufficient balance. You have €5.00." {
		t.Errorf("message = %q", err.Message)
	}
	want := "trade rejected [InsufficientBalance]: Insufficient balance. You have €5.00."
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrap(fmt.Errorf("%w: disk full", ErrStoreWrite), "saving ledger")

	if !Is(err, ErrStoreWrite) {
		t.Errorf("wrapped error %v lost the ErrStoreWrite sentinel", err)
	}
	if Wrap(nil, "anything") != nil {
		t.Error("wrapping nil must stay nil")
	}
}

func TestAsFindsTradeError(t *testing.T) {
	err := Wrap(NewTradeError(CodeInvalidPrice, "Invalid price."), "placing order")

	var terr *TradeError
	if !As(err, &terr) {
		t.Fatalf("As failed on %v", err)
	}
	if terr.Code != CodeInvalidPrice {
		t.Errorf("code = %q, want %q", terr.Code, CodeInvalidPrice)
	}
}
