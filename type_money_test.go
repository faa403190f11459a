package abgeltung

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestToHome(t *testing.T) {
	testCases := []struct {
		name     string
		price    string
		currency string
		rate     string
		want     Money
	}{
		{name: "euro", price: "61.2", currency: "EUR", rate: "1", want: EUR(61.2)},
		{name: "dollar", price: "110", currency: "USD", rate: "1.1", want: EUR(100)},
		{name: "pound", price: "10", currency: "GBP", rate: "0.8", want: EUR(12.5)},
		{name: "pence", price: "1000", currency: "GBX", rate: "0.8", want: EUR(12.5)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := toHome(dec(tc.price), tc.currency, dec(tc.rate), places)
			assertMoney(t, "toHome()", got, tc.want)
		})
	}
}

// A position quoted in pence is worth the same as the position quoted in the
// major unit.
func TestPenceNormalisation(t *testing.T) {
	pence := MustTransaction(ActBuy, "SGLN", at(2023, 3, 1), decimal.NewFromInt(1), decimal.NewFromInt(1000), Q(10), Pence)
	pounds := MustTransaction(ActBuy, "SGLN", at(2023, 3, 1), decimal.NewFromInt(1), decimal.NewFromInt(10), Q(10), "GBP")

	got := pence.HomePrice(places).Mul(pence.Shares())
	want := pounds.HomePrice(places).Mul(pounds.Shares())
	assertMoney(t, "pence value", got, want)
	assertMoney(t, "pence value", got, EUR(100))
}

func TestQuoteScale(t *testing.T) {
	if got := QuoteScale(Pence); !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("QuoteScale(GBX) = %s, want 100", got)
	}
	if got := QuoteScale("USD"); !got.Equal(decimal.NewFromInt(1)) {
		t.Errorf("QuoteScale(USD) = %s, want 1", got)
	}
}

func TestValidateCurrency(t *testing.T) {
	for _, code := range []string{"EUR", "USD", "GBP", "GBX", "CHF"} {
		if err := ValidateCurrency(code); err != nil {
			t.Errorf("ValidateCurrency(%q) unexpected error: %v", code, err)
		}
	}
	for _, code := range []string{"", "XYZ", "eur"} {
		if err := ValidateCurrency(code); err == nil {
			t.Errorf("ValidateCurrency(%q) expected an error", code)
		}
	}
}

func TestMoney_Floor(t *testing.T) {
	assertMoney(t, "Floor(-3)", EUR(-3).Floor(), EUR(0))
	assertMoney(t, "Floor(0)", EUR(0).Floor(), EUR(0))
	assertMoney(t, "Floor(3)", EUR(3).Floor(), EUR(3))
}

func TestMoney_Min(t *testing.T) {
	assertMoney(t, "Min(2,3)", EUR(2).Min(EUR(3)), EUR(2))
	assertMoney(t, "Min(3,-1)", EUR(3).Min(EUR(-1)), EUR(-1))
}

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{m: EUR(1234.567), want: "€1,234.57"},
		{m: M(250, "USD"), want: "$250.00"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.m.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMoney_CurrencyMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding EUR and USD should panic")
		}
	}()
	EUR(1).Add(M(1, "USD"))
}
