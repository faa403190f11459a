package abgeltung

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// WithholdingPlacement selects where the foreign withholding tax
// (Quellensteuer) is credited in the tax formula.
type WithholdingPlacement int

const (
	// BeforeSurcharge credits it against the flat tax, before the surcharge
	// multiplier: (base × rate − W) × surcharge − return.
	BeforeSurcharge WithholdingPlacement = iota
	// AfterSurcharge credits it against the final tax:
	// base × rate × surcharge − W − return.
	AfterSurcharge
	// FromBase deducts it from the tax base:
	// max(0, base − W) × rate × surcharge − return.
	FromBase
)

func (p WithholdingPlacement) String() string {
	switch p {
	case BeforeSurcharge:
		return "before-surcharge"
	case AfterSurcharge:
		return "after-surcharge"
	case FromBase:
		return "from-base"
	default:
		return "unknown"
	}
}

// ParseWithholdingPlacement parses a string into a WithholdingPlacement.
func ParseWithholdingPlacement(s string) (WithholdingPlacement, error) {
	switch s {
	case "before-surcharge":
		return BeforeSurcharge, nil
	case "after-surcharge":
		return AfterSurcharge, nil
	case "from-base":
		return FromBase, nil
	default:
		return 0, fmt.Errorf("unknown withholding placement: %q", s)
	}
}

// taxableGain returns the taxable part of a realized gain: a gain is reduced
// to its taxable fraction, a loss counts in full.
func taxableGain(gain Money, fraction decimal.Decimal) Money {
	if gain.IsPositive() {
		return gain.MulDecimal(fraction)
	}
	return gain
}

// vorabpauschaleReturn is the credit for Vorabpauschale already taxed on
// disposed shares.
func vorabpauschaleReturn(disposed Quantity, perShare decimal.Decimal) Money {
	return M(perShare, HomeCurrency).Mul(disposed)
}

// assessment is the result of the final tax formula.
type assessment struct {
	Base Money // taxable base after the allowance, never negative
	Tax  Money // tax due, never negative
}

// assess applies the allowance, the flat rate and the surcharge.
//
//	base = max(0, taxable + vorabpauschale − freibetrag)
//	tax  = max(0, base × rate × surcharge − return)
//
// with the withholding tax credited where placement says.
func assess(c YearConstants, taxable, vap, vapReturn, withholding Money, placement WithholdingPlacement) assessment {
	base := taxable.Add(vap).Sub(c.Freibetrag).Floor()
	rate, soli := c.Pauschalsteuer, c.Solidaritaetszuschlag

	var tax Money
	switch placement {
	case AfterSurcharge:
		tax = base.MulDecimal(rate).MulDecimal(soli).Sub(withholding)
	case FromBase:
		tax = base.Sub(withholding).Floor().MulDecimal(rate).MulDecimal(soli)
	default:
		tax = base.MulDecimal(rate).Sub(withholding).MulDecimal(soli)
	}
	return assessment{Base: base, Tax: tax.Sub(vapReturn).Floor()}
}
