package abgeltung

import (
	"fmt"
	"time"

	"github.com/etnz/abgeltung/date"
	"github.com/shopspring/decimal"
)

// basisertragFactor is the statutory 70 % applied to the start of year value
// times the Basiszins.
var basisertragFactor = decimal.RequireFromString("0.7")

// dividend is an ordinary distribution, as a home currency amount per share.
type dividend struct {
	on       time.Time
	perShare Money
}

// monthFraction returns the share of the tax year a lot acquired at t is
// held: 1 for a lot carried into the year, (13 − M) / 12 for a lot acquired in
// month M.
func monthFraction(year date.Range, acquired time.Time, places int32) decimal.Decimal {
	held := decimal.NewFromInt(int64(year.MonthsHeld(date.Of(acquired))))
	return held.DivRound(decimal.NewFromInt(12), places)
}

// accrual is the Vorabpauschale of one ticker for one year.
type accrual struct {
	Basisertrag Money           // min(soy × Basiszins × 0.7, eoy − soy)
	Total       Money           // sum of the lot bases
	PerShare    decimal.Decimal // Total / open shares
	Lots        []Money         // base of each open lot, in FIFO order
}

// vorabpauschale computes the deemed distribution of a ticker for the year.
//
// Each lot open at year end contributes
//
//	max(0, min(soy × Basiszins × 0.7, eoy − soy) × monthFraction − dividends)
//
// where dividends are the distributions paid on the lot's open shares after it
// was acquired. The per share value divides the sum by the open shares; with
// no open shares it is undefined and ErrDivisionGuard is returned.
func vorabpauschale(c YearConstants, soy, eoy Money, open Lots, dividends []dividend, places int32) (accrual, error) {
	year := date.TaxYear(c.Year)
	basisertrag := soy.MulDecimal(c.Basiszins.Ratio()).MulDecimal(basisertragFactor).Min(eoy.Sub(soy))
	a := accrual{Basisertrag: basisertrag, Total: M(0, HomeCurrency)}

	shares := open.Position()
	if !shares.IsPositive() {
		return a, fmt.Errorf("%w: per share vorabpauschale of %d is undefined", ErrDivisionGuard, c.Year)
	}

	for _, lot := range open {
		base := basisertrag.MulDecimal(monthFraction(year, lot.Acquired(), places))
		for _, d := range dividends {
			if !d.on.Before(lot.Acquired()) {
				base = base.Sub(d.perShare.Mul(lot.remaining))
			}
		}
		// a negative Basisertrag does not exist
		base = base.Floor()
		a.Lots = append(a.Lots, base)
		a.Total = a.Total.Add(base)
	}
	a.PerShare = a.Total.Decimal().DivRound(shares.Decimal(), places)
	return a, nil
}
