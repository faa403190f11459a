package abgeltung

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/etnz/abgeltung/date"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Input is one run of the engine: a tax year, its transactions and the state
// carried from the previous year.
type Input struct {
	Year    int
	Ledger  *Ledger
	Carried *State // nil for a first year
}

// Engine computes the tax of a year. It holds only immutable configuration,
// a single Engine can compute any number of years.
type Engine struct {
	cfg Config
	log zerolog.Logger
}

// NewEngine returns an engine for cfg.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg: cfg,
		log: cfg.Logger.With().Str("component", "abgeltung").Logger(),
	}, nil
}

// Compute folds the year's transactions into the carried state.
//
// Tickers are processed in sorted order. A failing ticker is reported as a
// *TickerError, under the SkipTicker policy it is left out of the totals and
// its carried state is handed over unchanged. Compute never modifies its
// inputs.
func (e *Engine) Compute(in Input) (*TaxYear, error) {
	c, err := e.cfg.TaxTable.Year(in.Year)
	if err != nil {
		return nil, err
	}
	if in.Carried != nil && in.Carried.Year >= in.Year {
		return nil, fmt.Errorf("%w: carried state closes %d, cannot compute %d", ErrDataIntegrity, in.Carried.Year, in.Year)
	}
	log := e.log.With().Int("year", in.Year).Logger()

	ty := &TaxYear{Constants: c, State: NewState(in.Year)}
	for _, ticker := range tickers(in) {
		t, err := e.ticker(log, c, ticker, in)
		if err != nil {
			terr := &TickerError{Ticker: ticker, Err: err}
			if e.cfg.OnTickerError == AbortRun {
				return nil, terr
			}
			log.Warn().Err(err).Str("ticker", ticker).Msg("ticker skipped")
			ty.Failed = append(ty.Failed, terr)
			ty.State.copyTicker(in.Carried, ticker)
			continue
		}
		ty.Tickers = append(ty.Tickers, t)
		ty.State.SetLots(ticker, t.lots)
		ty.State.SetVorabpauschalePerShare(ticker, t.cumulative)
	}

	ty.TotalRealized = ty.total(func(t *TickerYear) Money { return t.Realized })
	ty.TotalTaxableGain = ty.total(func(t *TickerYear) Money { return t.Taxable })
	ty.TotalDividends = ty.total(func(t *TickerYear) Money { return t.Dividends })
	ty.TotalVorabpauschale = ty.total(func(t *TickerYear) Money { return t.Vorabpauschale })
	ty.TotalVorabpauschaleReturn = ty.total(func(t *TickerYear) Money { return t.VorabpauschaleReturn })
	ty.TotalWithholding = ty.total(func(t *TickerYear) Money { return t.Withholding })

	a := assess(c, ty.TotalTaxableGain, ty.TotalVorabpauschale, ty.TotalVorabpauschaleReturn, ty.TotalWithholding, e.cfg.Withholding)
	ty.TaxBase, ty.Tax = a.Base, a.Tax

	if len(ty.Failed) > 0 {
		errs := make([]error, len(ty.Failed))
		for i, f := range ty.Failed {
			errs[i] = f
		}
		log.Warn().Err(errors.Join(errs...)).Int("skipped", len(ty.Failed)).Msg("tickers left out of the totals")
	}
	log.Info().
		Stringer("taxable", ty.TotalTaxableGain).
		Stringer("vorabpauschale", ty.TotalVorabpauschale).
		Stringer("return", ty.TotalVorabpauschaleReturn).
		Stringer("withholding", ty.TotalWithholding).
		Stringer("base", ty.TaxBase).
		Stringer("tax", ty.Tax).
		Msg("tax computed")
	return ty, nil
}

// tickers returns the union of traded and carried tickers, sorted.
func tickers(in Input) []string {
	set := make(map[string]struct{})
	for _, t := range in.Ledger.Tickers() {
		set[t] = struct{}{}
	}
	for _, t := range in.Carried.Tickers() {
		set[t] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set))
}

// ticker runs the pipeline of a single ticker.
func (e *Engine) ticker(log zerolog.Logger, c YearConstants, ticker string, in Input) (*TickerYear, error) {
	sec, err := e.cfg.Securities.Lookup(ticker)
	if err != nil {
		return nil, err
	}
	places := e.cfg.Precision
	year := date.TaxYear(c.Year)
	start := time.Date(c.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	log = log.With().Str("ticker", ticker).Logger()

	lots := in.Carried.Lots(ticker)
	for _, lot := range lots {
		if !lot.Acquired().Before(start) {
			return nil, fmt.Errorf("%w: carried lot %s does not predate %d", ErrDataIntegrity, lot.tx, c.Year)
		}
	}
	carried := in.Carried.VorabpauschalePerShare(ticker)

	t := &TickerYear{
		Security:             sec,
		Realized:             M(0, HomeCurrency),
		Taxable:              M(0, HomeCurrency),
		Dividends:            M(0, HomeCurrency),
		Withholding:          M(0, HomeCurrency),
		Vorabpauschale:       M(0, HomeCurrency),
		VorabpauschaleReturn: M(0, HomeCurrency),
		StartValue:           lots.Value(places),
	}

	var dividends []dividend
	for _, tx := range in.Ledger.Security(ticker) {
		if err := tx.Validate(); err != nil {
			return nil, err
		}
		if !year.ContainsTime(tx.time) {
			return nil, fmt.Errorf("%w: %s is outside of tax year %d", ErrDataIntegrity, tx, c.Year)
		}
		switch tx.action {
		case ActBuy:
			if lots, err = lots.acquire(tx); err != nil {
				return nil, err
			}
		case ActSell:
			tx = tx.classify(sec)
			var matches []Match
			if matches, lots, err = lots.dispose(tx, tx.shares); err != nil {
				return nil, err
			}
			for _, m := range matches {
				gain := m.Gain(places)
				t.Realized = t.Realized.Add(gain)
				t.Taxable = t.Taxable.Add(taxableGain(gain, tx.exemption))
				t.Disposed = t.Disposed.Add(m.Shares)
				// only shares carried into the year bear Vorabpauschale taxed before
				if m.Lot.Acquired().Before(start) {
					t.VorabpauschaleReturn = t.VorabpauschaleReturn.Add(vorabpauschaleReturn(m.Shares, carried))
				}
				log.Debug().
					Time("acquired", m.Lot.Acquired()).
					Time("sold", tx.time).
					Stringer("shares", m.Shares).
					Bool("full", m.Full).
					Stringer("gain", gain).
					Msg("lot matched")
			}
			t.Matches = append(t.Matches, matches...)
		case ActDividend:
			perShare := tx.HomePrice(places)
			t.Dividends = t.Dividends.Add(perShare.Mul(tx.shares))
			t.Withholding = t.Withholding.Add(tx.HomeWithholding(places))
			dividends = append(dividends, dividend{on: tx.time, perShare: perShare})
		}
	}

	t.lots = lots
	t.EndValue = lots.Value(places)
	t.Position = lots.Position()

	if sec.Kind() == Fund {
		a, err := vorabpauschale(c, t.StartValue, t.EndValue, lots, dividends, places)
		switch {
		case errors.Is(err, ErrDivisionGuard):
			log.Warn().Err(err).Msg("no vorabpauschale accrued")
			t.Guard = err
		case err != nil:
			return nil, err
		default:
			t.Vorabpauschale = a.Total
			t.VorabpauschalePerShare = a.PerShare
			log.Debug().
				Stringer("basisertrag", a.Basisertrag).
				Stringer("total", a.Total).
				Str("perShare", a.PerShare.String()).
				Msg("vorabpauschale accrued")
		}
	}
	t.cumulative = cumulative(carried, lots, start, t.VorabpauschalePerShare, places)

	log.Info().
		Stringer("realized", t.Realized).
		Stringer("taxable", t.Taxable).
		Stringer("vorabpauschale", t.Vorabpauschale).
		Stringer("position", t.Position).
		Msg("ticker processed")
	return t, nil
}

// cumulative returns the Vorabpauschale per share already taxed on the lots
// open at year end. The carried value was taxed only on the carried lots, it
// is spread over the whole position weighted by the carried shares still
// open. A closed position has none.
func cumulative(carried decimal.Decimal, open Lots, start time.Time, perShare decimal.Decimal, places int32) decimal.Decimal {
	position := open.Position()
	if !position.IsPositive() {
		return decimal.Zero
	}
	var old Quantity
	for _, lot := range open {
		if lot.Acquired().Before(start) {
			old = old.Add(lot.remaining)
		}
	}
	if old.Equal(position) {
		return carried.Add(perShare)
	}
	return carried.Mul(old.Decimal()).DivRound(position.Decimal(), places).Add(perShare)
}
