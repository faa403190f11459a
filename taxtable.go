package abgeltung

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// YearConstants are the statutory figures of one tax year.
type YearConstants struct {
	Year int
	// Basiszins is the base rate of the Vorabpauschale, published in percent.
	Basiszins Percent
	// Freibetrag is the annual allowance, in the home currency.
	Freibetrag Money
	// Pauschalsteuer is the flat tax rate (0.25).
	Pauschalsteuer decimal.Decimal
	// Solidaritaetszuschlag is the surcharge multiplier (1.055).
	Solidaritaetszuschlag decimal.Decimal
}

func (c YearConstants) validate() error {
	switch {
	case c.Freibetrag.Currency() != HomeCurrency:
		return fmt.Errorf("%w: %d freibetrag must be in %s, got %q", ErrConfiguration, c.Year, HomeCurrency, c.Freibetrag.Currency())
	case c.Freibetrag.IsNegative():
		return fmt.Errorf("%w: %d freibetrag is negative", ErrConfiguration, c.Year)
	case !c.Pauschalsteuer.IsPositive() || c.Pauschalsteuer.GreaterThan(decimal.NewFromInt(1)):
		return fmt.Errorf("%w: %d pauschalsteuer %s is not within (0,1]", ErrConfiguration, c.Year, c.Pauschalsteuer)
	case c.Solidaritaetszuschlag.LessThan(decimal.NewFromInt(1)):
		return fmt.Errorf("%w: %d solidaritaetszuschlag %s is below 1", ErrConfiguration, c.Year, c.Solidaritaetszuschlag)
	}
	return nil
}

// TaxTable holds the constants of every supported year.
type TaxTable struct {
	years map[int]YearConstants
}

// NewTaxTable builds a TaxTable, each year at most once.
func NewTaxTable(years ...YearConstants) (TaxTable, error) {
	t := TaxTable{years: make(map[int]YearConstants, len(years))}
	for _, y := range years {
		if err := y.validate(); err != nil {
			return TaxTable{}, err
		}
		if _, exists := t.years[y.Year]; exists {
			return TaxTable{}, fmt.Errorf("%w: year %d is already defined", ErrConfiguration, y.Year)
		}
		t.years[y.Year] = y
	}
	return t, nil
}

// Year returns the constants of year.
func (t TaxTable) Year(year int) (YearConstants, error) {
	c, ok := t.years[year]
	if !ok {
		return YearConstants{}, fmt.Errorf("%w: %d", ErrUnknownYear, year)
	}
	return c, nil
}

// Years returns the supported years in ascending order.
func (t TaxTable) Years() []int { return slices.Sorted(maps.Keys(t.years)) }

// DefaultTaxTable returns the built-in tax table.
func DefaultTaxTable() TaxTable {
	rate := decimal.RequireFromString("0.25")
	soli := decimal.RequireFromString("1.055")
	year := func(y int, basiszins string, freibetrag int) YearConstants {
		return YearConstants{
			Year:                  y,
			Basiszins:             P(decimal.RequireFromString(basiszins)),
			Freibetrag:            M(freibetrag, HomeCurrency),
			Pauschalsteuer:        rate,
			Solidaritaetszuschlag: soli,
		}
	}
	t, err := NewTaxTable(
		year(2020, "0.88", 801),
		year(2021, "-0.45", 801),
		year(2022, "-0.05", 801),
		year(2023, "2.55", 1000),
		year(2024, "2.29", 1000),
		year(2025, "2.53", 1000),
	)
	if err != nil {
		panic(err)
	}
	return t
}

// DecodeTaxTable reads a tax table from JSONL, one year per line:
//
//	{"year":2024,"basiszins":2.29,"freibetrag":1000,"pauschalsteuer":0.25,"solidaritaetszuschlag":1.055}
func DecodeTaxTable(r io.Reader) (TaxTable, error) {
	type jyear struct {
		Year                  int             `json:"year"`
		Basiszins             *decimal.Decimal `json:"basiszins"`
		Freibetrag            *decimal.Decimal `json:"freibetrag"`
		Pauschalsteuer        decimal.Decimal  `json:"pauschalsteuer"`
		Solidaritaetszuschlag decimal.Decimal  `json:"solidaritaetszuschlag"`
	}

	var years []YearConstants
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var jy jyear
		if err := json.Unmarshal(line, &jy); err != nil {
			return TaxTable{}, fmt.Errorf("%w: tax table line %d: %w", ErrConfiguration, n, err)
		}
		if jy.Basiszins == nil || jy.Freibetrag == nil {
			return TaxTable{}, fmt.Errorf("%w: tax table line %d: basiszins and freibetrag are required", ErrConfiguration, n)
		}
		years = append(years, YearConstants{
			Year:                  jy.Year,
			Basiszins:             P(*jy.Basiszins),
			Freibetrag:            M(*jy.Freibetrag, HomeCurrency),
			Pauschalsteuer:        jy.Pauschalsteuer,
			Solidaritaetszuschlag: jy.Solidaritaetszuschlag,
		})
	}
	if err := scanner.Err(); err != nil {
		return TaxTable{}, fmt.Errorf("reading tax table: %w", err)
	}
	return NewTaxTable(years...)
}
