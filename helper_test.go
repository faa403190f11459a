package abgeltung

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// places is the precision used by tests.
const places int32 = 16

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, HomeCurrency) }

// dec is a helper for test to create a decimal from a string constant.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// at returns a timestamp at ten in the morning of the given day.
func at(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 10, 0, 0, 0, time.UTC)
}

// buy returns a euro buy of shares at price.
func buy(ticker string, on time.Time, shares, price float64) Transaction {
	return MustTransaction(ActBuy, ticker, on, decimal.NewFromInt(1), decimal.NewFromFloat(price), Q(shares), HomeCurrency)
}

// sell returns a euro sale of shares at price.
func sell(ticker string, on time.Time, shares, price float64) Transaction {
	return MustTransaction(ActSell, ticker, on, decimal.NewFromInt(1), decimal.NewFromFloat(price), Q(shares), HomeCurrency)
}

// div returns a euro dividend of perShare on shares.
func div(ticker string, on time.Time, shares, perShare float64) Transaction {
	return MustTransaction(ActDividend, ticker, on, decimal.NewFromInt(1), decimal.NewFromFloat(perShare), Q(shares), HomeCurrency)
}

// newTestEngine returns an engine with the default tables.
func newTestEngine(t *testing.T, opts ...func(*Config)) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	e, err := NewEngine(cfg)
	if err != nil {
		t.Fatalf("NewEngine() unexpected error: %v", err)
	}
	return e
}

// assertMoney fails the test when got is not want.
func assertMoney(t *testing.T, name string, got, want Money) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %s (%s), want %s (%s)", name, got, got.Decimal(), want, want.Decimal())
	}
}
