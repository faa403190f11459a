package abgeltung

import (
	"fmt"

	"github.com/rs/zerolog"
)

// MinPrecision is the smallest accepted number of decimal places kept by
// divisions.
const MinPrecision = 8

// Policy decides what a failing ticker does to the run.
type Policy int

const (
	// AbortRun stops the run on the first failing ticker.
	AbortRun Policy = iota
	// SkipTicker leaves the failing ticker out of the totals and carries its
	// state over unchanged.
	SkipTicker
)

func (p Policy) String() string {
	switch p {
	case AbortRun:
		return "abort"
	case SkipTicker:
		return "skip"
	default:
		return "unknown"
	}
}

// Config is the engine configuration. Tables are immutable values, the engine
// owns no global state.
type Config struct {
	Securities Securities
	TaxTable   TaxTable
	// Precision is the number of decimal places kept by divisions.
	Precision     int32
	OnTickerError Policy
	Withholding   WithholdingPlacement
	Logger        zerolog.Logger
}

// DefaultConfig returns the built-in tables, 16 decimal places, AbortRun, and
// a disabled logger.
func DefaultConfig() Config {
	return Config{
		Securities:    DefaultSecurities(),
		TaxTable:      DefaultTaxTable(),
		Precision:     16,
		OnTickerError: AbortRun,
		Withholding:   BeforeSurcharge,
		Logger:        zerolog.Nop(),
	}
}

func (c Config) validate() error {
	switch {
	case c.Precision < MinPrecision:
		return fmt.Errorf("%w: precision %d is below %d", ErrConfiguration, c.Precision, MinPrecision)
	case c.Securities.Len() == 0:
		return fmt.Errorf("%w: empty securities table", ErrConfiguration)
	case len(c.TaxTable.Years()) == 0:
		return fmt.Errorf("%w: empty tax table", ErrConfiguration)
	case c.OnTickerError != AbortRun && c.OnTickerError != SkipTicker:
		return fmt.Errorf("%w: unknown ticker error policy %d", ErrConfiguration, c.OnTickerError)
	case c.Withholding.String() == "unknown":
		return fmt.Errorf("%w: unknown withholding placement %d", ErrConfiguration, c.Withholding)
	}
	return nil
}
