package abgeltung

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSecurities_Lookup(t *testing.T) {
	secs := DefaultSecurities()
	testCases := []struct {
		ticker       string
		wantKind     Kind
		wantFraction string
	}{
		{ticker: "GE", wantKind: Stock, wantFraction: "1"},
		{ticker: "EUNL", wantKind: Fund, wantFraction: "0.7"},
		{ticker: "SGLN", wantKind: Fund, wantFraction: "1"},
	}
	for _, tc := range testCases {
		t.Run(tc.ticker, func(t *testing.T) {
			s, err := secs.Lookup(tc.ticker)
			if err != nil {
				t.Fatalf("Lookup(%q) unexpected error: %v", tc.ticker, err)
			}
			if s.Kind() != tc.wantKind {
				t.Errorf("Kind() = %s, want %s", s.Kind(), tc.wantKind)
			}
			if got := s.TaxableFraction(); !got.Equal(dec(tc.wantFraction)) {
				t.Errorf("TaxableFraction() = %s, want %s", got, tc.wantFraction)
			}
		})
	}

	if _, err := secs.Lookup("TSLA"); !errors.Is(err, ErrClassification) {
		t.Errorf("Lookup(TSLA) error = %v, want ErrClassification", err)
	}
}

func TestNewSecurities_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		secs []Security
	}{
		{name: "duplicate", secs: []Security{NewStock("GE"), NewFund("GE", dec("0.7"))}},
		{name: "fraction above one", secs: []Security{NewFund("EUNL", dec("1.3"))}},
		{name: "negative fraction", secs: []Security{NewFund("EUNL", dec("-0.1"))}},
		{name: "missing ticker", secs: []Security{NewStock("")}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewSecurities(tc.secs...); !errors.Is(err, ErrConfiguration) {
				t.Errorf("NewSecurities() error = %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestDecodeSecurities(t *testing.T) {
	input := `{"ticker":"EUNL","kind":"fund","teilfreistellung":0.7}

{"ticker":"GE","kind":"stock"}
{"ticker":"SGLN","kind":"etf","teilfreistellung":1}
`
	secs, err := DecodeSecurities(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeSecurities() unexpected error: %v", err)
	}
	if secs.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", secs.Len())
	}
	var tickers []string
	for s := range secs.All() {
		tickers = append(tickers, s.Ticker())
	}
	if got := strings.Join(tickers, ","); got != "EUNL,GE,SGLN" {
		t.Errorf("All() = %s, want EUNL,GE,SGLN", got)
	}
	eunl, _ := secs.Lookup("EUNL")
	if !eunl.TaxableFraction().Equal(dec("0.7")) {
		t.Errorf("EUNL TaxableFraction() = %s, want 0.7", eunl.TaxableFraction())
	}
}

func TestDecodeSecurities_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "fund without fraction", input: `{"ticker":"EUNL","kind":"fund"}`},
		{name: "unknown kind", input: `{"ticker":"EUNL","kind":"bond"}`},
		{name: "not json", input: `EUNL fund 0.7`},
		{name: "missing kind", input: `{"ticker":"EUNL","teilfreistellung":0.7}`},
		{name: "missing kind on a stock", input: `{"ticker":"GE"}`},
		{name: "stock with fraction", input: `{"ticker":"GE","kind":"stock","teilfreistellung":0.7}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeSecurities(strings.NewReader(tc.input)); !errors.Is(err, ErrConfiguration) {
				t.Errorf("DecodeSecurities() error = %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for s, want := range map[string]Kind{"stock": Stock, "fund": Fund, "etf": Fund} {
		got, err := ParseKind(s)
		if err != nil || got != want {
			t.Errorf("ParseKind(%q) = %v, %v, want %v", s, got, err, want)
		}
	}
	if _, err := ParseKind("bond"); err == nil {
		t.Error("ParseKind(bond) expected an error")
	}
	if got := NewStock("GE").TaxableFraction(); !got.Equal(decimal.NewFromInt(1)) {
		t.Errorf("stock TaxableFraction() = %s, want 1", got)
	}
}
