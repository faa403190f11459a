package abgeltung

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// State is what one tax year hands over to the next: the open lots of every
// ticker and the Vorabpauschale per share already taxed on them.
//
// A nil *State is an empty state, the one of a first year.
type State struct {
	// Year is the last tax year folded into the state, 0 when unknown.
	Year     int
	lots     map[string]Lots
	perShare map[string]decimal.Decimal
}

// NewState returns an empty state closing year.
func NewState(year int) *State {
	return &State{
		Year:     year,
		lots:     make(map[string]Lots),
		perShare: make(map[string]decimal.Decimal),
	}
}

// Lots returns a copy of the open lots of ticker, oldest first.
func (s *State) Lots(ticker string) Lots {
	if s == nil {
		return nil
	}
	return slices.Clone(s.lots[ticker])
}

// SetLots replaces the open lots of ticker. An empty queue removes the ticker.
func (s *State) SetLots(ticker string, lots Lots) {
	if len(lots) == 0 {
		delete(s.lots, ticker)
		return
	}
	s.lots[ticker] = slices.Clone(lots)
}

// VorabpauschalePerShare returns the cumulative Vorabpauschale per share
// already taxed for ticker, zero when none.
func (s *State) VorabpauschalePerShare(ticker string) decimal.Decimal {
	if s == nil {
		return decimal.Zero
	}
	return s.perShare[ticker]
}

// SetVorabpauschalePerShare replaces the cumulative Vorabpauschale per share of
// ticker. Zero removes the ticker.
func (s *State) SetVorabpauschalePerShare(ticker string, perShare decimal.Decimal) {
	if perShare.IsZero() {
		delete(s.perShare, ticker)
		return
	}
	s.perShare[ticker] = perShare
}

// Tickers returns every ticker with open lots or a cumulative value, sorted.
func (s *State) Tickers() []string {
	if s == nil {
		return nil
	}
	set := make(map[string]struct{}, len(s.lots)+len(s.perShare))
	for t := range s.lots {
		set[t] = struct{}{}
	}
	for t := range s.perShare {
		set[t] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set))
}

// copyTicker copies the state of ticker from src into s.
func (s *State) copyTicker(src *State, ticker string) {
	s.SetLots(ticker, src.Lots(ticker))
	s.SetVorabpauschalePerShare(ticker, src.VorabpauschalePerShare(ticker))
}
