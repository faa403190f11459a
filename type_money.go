package abgeltung

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// HomeCurrency is the currency every tax figure is expressed in.
const HomeCurrency = "EUR"

// Pence is the London quote currency: British pence, a hundredth of GBP.
const Pence = "GBX"

func init() {
	// go-money only knows ISO currencies, pence are quoted at the LSE.
	if money.GetCurrency(Pence) == nil {
		money.AddCurrency(Pence, "p", "1$", ".", ",", 0)
	}
}

// quoteScale lists quote currencies whose prices are expressed in a minor
// unit: a price must be divided by the scale to get the major unit value the
// exchange rate applies to.
var quoteScale = map[string]decimal.Decimal{
	Pence: decimal.NewFromInt(100),
}

// QuoteScale returns the minor unit scale of a quote currency, 1 for currencies
// quoted in major units.
func QuoteScale(currency string) decimal.Decimal {
	if s, ok := quoteScale[currency]; ok {
		return s
	}
	return decimal.NewFromInt(1)
}

// ValidateCurrency checks that code is a currency known to go-money.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency %q", code)
	}
	return nil
}

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns a Money.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, rounded to the
// currency fraction.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string                   { return m.cur }
func (m Money) Decimal() decimal.Decimal           { return m.value }
func (m Money) Equal(n Money) bool                 { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                       { return m.value.IsZero() }
func (m Money) IsPositive() bool                   { return m.value.IsPositive() }
func (m Money) IsNegative() bool                   { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool              { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool           { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                         { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(q Quantity) Money               { return Money{value: m.value.Mul(q.value), cur: m.cur} }
func (m Money) MulDecimal(d decimal.Decimal) Money { return Money{value: m.value.Mul(d), cur: m.cur} }

// DivRound divides by d, rounding to places decimal places.
func (m Money) DivRound(d decimal.Decimal, places int32) Money {
	return Money{value: m.value.DivRound(d, places), cur: m.cur}
}

// Floor returns m, or zero when m is negative.
func (m Money) Floor() Money {
	if m.value.IsNegative() {
		return Money{value: decimal.Zero, cur: m.cur}
	}
	return m
}

// Min returns the smallest of m and n.
func (m Money) Min(n Money) Money {
	if n.LessThan(m) {
		return Money{value: n.value, cur: cur(m, n)}
	}
	return Money{value: m.value, cur: cur(m, n)}
}

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// toHome converts price, quoted in currency at rate units of currency per
// home unit, into the home currency.
func toHome(price decimal.Decimal, currency string, rate decimal.Decimal, places int32) Money {
	major := price.DivRound(QuoteScale(currency), places)
	return M(major.DivRound(rate, places), HomeCurrency)
}
