package abgeltung

import "github.com/shopspring/decimal"

// TickerYear holds the yearly aggregates of one ticker.
type TickerYear struct {
	Security Security
	// Matches are the (disposal, consumed lot) pairs in chronological order.
	Matches []Match

	Realized    Money // signed sum of the match gains
	Taxable     Money // Realized with Teilfreistellung applied to gains only
	Dividends   Money // ordinary dividends received
	Withholding Money // foreign tax withheld on dividends

	StartValue Money // open position carried into the year
	EndValue   Money // open position after the year's transactions

	Vorabpauschale         Money // accrued this year
	VorabpauschalePerShare decimal.Decimal
	// VorabpauschaleReturn is the credit for Vorabpauschale of previous years
	// on the shares disposed this year.
	VorabpauschaleReturn Money

	Disposed Quantity // shares sold this year
	Position Quantity // shares open at year end

	// Guard is set, wrapping ErrDivisionGuard, when no per share
	// Vorabpauschale could be computed because no share was open at year end.
	Guard error

	lots       Lots // open at year end
	cumulative decimal.Decimal
}

// Ticker returns the ticker.
func (t *TickerYear) Ticker() string { return t.Security.Ticker() }

// Lots returns the lots open at year end.
func (t *TickerYear) Lots() Lots { return t.lots }

// TaxYear is the result of a run.
type TaxYear struct {
	Constants YearConstants
	Tickers   []*TickerYear // sorted by ticker
	// Failed lists the tickers left out under the SkipTicker policy.
	Failed []*TickerError

	TotalRealized             Money
	TotalTaxableGain          Money
	TotalDividends            Money
	TotalVorabpauschale       Money
	TotalVorabpauschaleReturn Money
	TotalWithholding          Money

	TaxBase Money
	Tax     Money

	// State is the carried state for the next year.
	State *State
}

// Year returns the tax year.
func (y *TaxYear) Year() int { return y.Constants.Year }

// Ticker returns the aggregates of ticker, nil when it was not processed.
func (y *TaxYear) Ticker(ticker string) *TickerYear {
	for _, t := range y.Tickers {
		if t.Ticker() == ticker {
			return t
		}
	}
	return nil
}

// total sums f over the tickers.
func (y *TaxYear) total(f func(*TickerYear) Money) Money {
	total := M(0, HomeCurrency)
	for _, t := range y.Tickers {
		total = total.Add(f(t))
	}
	return total
}
