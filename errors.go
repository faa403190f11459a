package abgeltung

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure of the engine wraps exactly one of them, callers
// tell them apart with errors.Is.
var (
	// ErrClassification reports a ticker missing from the classification table.
	ErrClassification = errors.New("unknown security classification")

	// ErrDataIntegrity reports an invalid ledger record or carried lot: a
	// missing or non-positive rate, price or share count, an unknown currency,
	// or a record outside the tax year or out of acquisition order.
	ErrDataIntegrity = errors.New("data integrity violation")

	// ErrInsufficientLots reports a disposal larger than the open position.
	ErrInsufficientLots = errors.New("insufficient lots")

	// ErrDivisionGuard reports a per-share figure requested for a ticker with no
	// shares held.
	ErrDivisionGuard = errors.New("no shares held")

	// ErrUnknownYear reports a tax year missing from the tax table.
	ErrUnknownYear = errors.New("no tax constants for year")

	// ErrConfiguration reports an invalid engine configuration.
	ErrConfiguration = errors.New("invalid configuration")
)

// TickerError is the failure of processing one ticker.
type TickerError struct {
	Ticker string
	Err    error
}

func (e *TickerError) Error() string { return fmt.Sprintf("ticker %s: %v", e.Ticker, e.Err) }
func (e *TickerError) Unwrap() error { return e.Err }
