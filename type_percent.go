package abgeltung

import "github.com/shopspring/decimal"

// Percent is a rate expressed in percentage points, as the Basiszins is
// published (0.88 means 0.88 %).
type Percent struct {
	value decimal.Decimal
}

// P returns a Percent.
func P[T float64 | int | int64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

// Ratio returns the rate as a plain ratio (0.0088 for 0.88 %).
func (p Percent) Ratio() decimal.Decimal { return p.value.Shift(-2) }

func (p Percent) Decimal() decimal.Decimal { return p.value }
func (p Percent) Equal(q Percent) bool     { return p.value.Equal(q.value) }
func (p Percent) String() string           { return p.value.StringFixed(2) + "%" }

func (p Percent) MarshalJSON() ([]byte, error) { return p.value.MarshalJSON() }

func (p *Percent) UnmarshalJSON(b []byte) error { return p.value.UnmarshalJSON(b) }
