package abgeltung

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Security is the tax classification of a ticker.
type Security struct {
	ticker string
	kind   Kind
	// teilfreistellung is the taxable fraction of a fund gain. Unused for stocks.
	teilfreistellung decimal.Decimal
}

// NewStock returns the classification of a fully taxable stock.
func NewStock(ticker string) Security {
	return Security{ticker: ticker, kind: Stock, teilfreistellung: decimal.NewFromInt(1)}
}

// NewFund returns the classification of a fund whose positive gains are taxed
// at fraction.
func NewFund(ticker string, fraction decimal.Decimal) Security {
	return Security{ticker: ticker, kind: Fund, teilfreistellung: fraction}
}

func (s Security) Ticker() string { return s.ticker }
func (s Security) Kind() Kind     { return s.kind }

// TaxableFraction returns the fraction of a positive gain that is taxable: 1
// for a stock, the configured Teilfreistellung fraction for a fund.
func (s Security) TaxableFraction() decimal.Decimal {
	if s.kind != Fund {
		return decimal.NewFromInt(1)
	}
	return s.teilfreistellung
}

// validate checks the classification itself.
func (s Security) validate() error {
	if s.ticker == "" {
		return fmt.Errorf("%w: security ticker is missing", ErrConfiguration)
	}
	f := s.TaxableFraction()
	if f.IsNegative() || f.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: %s taxable fraction %s is not within [0,1]", ErrConfiguration, s.ticker, f)
	}
	return nil
}

// Securities is the immutable classification table, indexed by ticker.
type Securities struct {
	byTicker map[string]Security
}

// NewSecurities builds a classification table. A ticker declared twice is an
// error.
func NewSecurities(secs ...Security) (Securities, error) {
	t := Securities{byTicker: make(map[string]Security, len(secs))}
	for _, s := range secs {
		if err := s.validate(); err != nil {
			return Securities{}, err
		}
		if _, exists := t.byTicker[s.ticker]; exists {
			return Securities{}, fmt.Errorf("%w: ticker %q is already classified", ErrConfiguration, s.ticker)
		}
		t.byTicker[s.ticker] = s
	}
	return t, nil
}

// Lookup returns the classification of ticker.
func (t Securities) Lookup(ticker string) (Security, error) {
	s, ok := t.byTicker[ticker]
	if !ok {
		return Security{}, fmt.Errorf("%w: %q", ErrClassification, ticker)
	}
	return s, nil
}

// Len returns the number of classified tickers.
func (t Securities) Len() int { return len(t.byTicker) }

// All iterates over securities in ticker order.
func (t Securities) All() iter.Seq[Security] {
	return func(yield func(Security) bool) {
		for _, ticker := range slices.Sorted(maps.Keys(t.byTicker)) {
			if !yield(t.byTicker[ticker]) {
				return
			}
		}
	}
}

// DefaultSecurities returns the built-in classification table.
func DefaultSecurities() Securities {
	equity := decimal.RequireFromString("0.7")
	whole := decimal.NewFromInt(1)
	t, err := NewSecurities(
		NewFund("BTCE", whole),
		NewFund("EQQQ", equity),
		NewFund("EUNL", equity),
		NewStock("GE"),
		NewFund("IS3N", equity),
		NewFund("INRG", equity),
		NewFund("IUSN", equity),
		NewFund("PHGP", whole),
		NewFund("SGLN", whole),
		NewFund("VUAA", equity),
		NewFund("VUSA", equity),
		NewFund("VWRA", equity),
		NewFund("VWRL", equity),
	)
	if err != nil {
		panic(err)
	}
	return t
}

// DecodeSecurities reads a classification table from JSONL, one security per
// line:
//
//	{"ticker":"EUNL","kind":"fund","teilfreistellung":0.7}
//	{"ticker":"GE","kind":"stock"}
func DecodeSecurities(r io.Reader) (Securities, error) {
	// jsecurity is the object read from the file using json parser.
	type jsecurity struct {
		Ticker           string           `json:"ticker"`
		Kind             *Kind            `json:"kind"`
		Teilfreistellung *decimal.Decimal `json:"teilfreistellung"`
	}

	var secs []Security
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var js jsecurity
		if err := json.Unmarshal(line, &js); err != nil {
			return Securities{}, fmt.Errorf("%w: securities line %d: %w", ErrConfiguration, n, err)
		}
		if js.Kind == nil {
			return Securities{}, fmt.Errorf("%w: securities line %d: %q has no kind", ErrConfiguration, n, js.Ticker)
		}
		switch *js.Kind {
		case Fund:
			if js.Teilfreistellung == nil {
				return Securities{}, fmt.Errorf("%w: securities line %d: fund %q without teilfreistellung", ErrConfiguration, n, js.Ticker)
			}
			secs = append(secs, NewFund(js.Ticker, *js.Teilfreistellung))
		default:
			if js.Teilfreistellung != nil {
				return Securities{}, fmt.Errorf("%w: securities line %d: stock %q with teilfreistellung", ErrConfiguration, n, js.Ticker)
			}
			secs = append(secs, NewStock(js.Ticker))
		}
	}
	if err := scanner.Err(); err != nil {
		return Securities{}, fmt.Errorf("reading securities: %w", err)
	}
	return NewSecurities(secs...)
}
