package abgeltung

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Action is the kind of a ledger event, as the broker export names it.
type Action string

// Ledger actions. Only buys and sells mutate lots.
const (
	ActBuy      Action = "Market buy"
	ActSell     Action = "Market sell"
	ActDividend Action = "Dividend (Ordinary)"
	ActDeposit  Action = "Deposit"
)

// ParseAction maps a ledger action string to an Action.
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActBuy, ActSell, ActDividend, ActDeposit:
		return a, nil
	default:
		return "", fmt.Errorf("%w: unknown action %q", ErrDataIntegrity, s)
	}
}

// IsSecurity reports whether the action concerns a security (and therefore
// carries a ticker, a rate, a price and a share count).
func (a Action) IsSecurity() bool { return a != ActDeposit }

// Transaction is one normalized ledger record. It is immutable: every method
// returning a modified Transaction returns a copy.
type Transaction struct {
	action   Action
	ticker   string
	time     time.Time
	rate     decimal.Decimal // quote currency units per home currency unit
	price    decimal.Decimal // per share, in the quote currency
	shares   Quantity
	currency string // quote currency

	withholding decimal.Decimal // foreign tax withheld on a dividend, in the quote currency
	exemption   decimal.Decimal // taxable fraction, stamped by classify
}

// NewTransaction returns a validated Transaction.
//
// For an action on a security the ticker must be set, the rate, the price and
// the number of shares must be positive and the currency must be known. A zero
// rate or price is never a valid default: it is reported as ErrDataIntegrity.
func NewTransaction(action Action, ticker string, on time.Time, rate, price decimal.Decimal, shares Quantity, currency string) (Transaction, error) {
	tx := Transaction{
		action:    action,
		ticker:    ticker,
		time:      on,
		rate:      rate,
		price:     price,
		shares:    shares,
		currency:  currency,
		exemption: decimal.NewFromInt(1),
	}
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// MustTransaction is like NewTransaction but panics on error.
func MustTransaction(action Action, ticker string, on time.Time, rate, price decimal.Decimal, shares Quantity, currency string) Transaction {
	tx, err := NewTransaction(action, ticker, on, rate, price, shares, currency)
	if err != nil {
		panic(err)
	}
	return tx
}

// Validate checks the record invariants.
func (t Transaction) Validate() error {
	if _, err := ParseAction(string(t.action)); err != nil {
		return err
	}
	if t.time.IsZero() {
		return fmt.Errorf("%w: %s without timestamp", ErrDataIntegrity, t.action)
	}
	if !t.action.IsSecurity() {
		return nil
	}
	switch {
	case t.ticker == "":
		return fmt.Errorf("%w: %s on %s: ticker is missing", ErrDataIntegrity, t.action, t.time)
	case !t.rate.IsPositive():
		return fmt.Errorf("%w: %s %s on %s: exchange rate must be positive, got %s", ErrDataIntegrity, t.action, t.ticker, t.time, t.rate)
	case !t.price.IsPositive():
		return fmt.Errorf("%w: %s %s on %s: price per share must be positive, got %s", ErrDataIntegrity, t.action, t.ticker, t.time, t.price)
	case !t.shares.IsPositive():
		return fmt.Errorf("%w: %s %s on %s: number of shares must be positive, got %s", ErrDataIntegrity, t.action, t.ticker, t.time, t.shares)
	case t.withholding.IsNegative():
		return fmt.Errorf("%w: %s %s on %s: withholding tax is negative", ErrDataIntegrity, t.action, t.ticker, t.time)
	}
	if err := ValidateCurrency(t.currency); err != nil {
		return fmt.Errorf("%w: %s %s on %s: %w", ErrDataIntegrity, t.action, t.ticker, t.time, err)
	}
	return nil
}

func (t Transaction) Action() Action               { return t.action }
func (t Transaction) Ticker() string               { return t.ticker }
func (t Transaction) Time() time.Time              { return t.time }
func (t Transaction) Rate() decimal.Decimal        { return t.rate }
func (t Transaction) Price() decimal.Decimal       { return t.price }
func (t Transaction) Shares() Quantity             { return t.shares }
func (t Transaction) Currency() string             { return t.currency }
func (t Transaction) Withholding() decimal.Decimal { return t.withholding }

// Exemption returns the taxable fraction applied to a positive gain on this
// record: 1 until the record is classified as a fund.
func (t Transaction) Exemption() decimal.Decimal { return t.exemption }

// WithWithholding returns a copy of a dividend carrying the foreign tax
// withheld, in the quote currency.
func (t Transaction) WithWithholding(amount decimal.Decimal) (Transaction, error) {
	if t.action != ActDividend {
		return t, fmt.Errorf("%w: withholding tax on a %s", ErrDataIntegrity, t.action)
	}
	t.withholding = amount
	if err := t.Validate(); err != nil {
		return Transaction{}, err
	}
	return t, nil
}

// classify returns a copy stamped with the taxable fraction of sec.
func (t Transaction) classify(sec Security) Transaction {
	t.exemption = sec.TaxableFraction()
	return t
}

// HomePrice returns the per share price converted into the home currency.
func (t Transaction) HomePrice(places int32) Money {
	return toHome(t.price, t.currency, t.rate, places)
}

// HomeWithholding returns the withheld tax converted into the home currency.
func (t Transaction) HomeWithholding(places int32) Money {
	if t.withholding.IsZero() {
		return M(0, HomeCurrency)
	}
	return toHome(t.withholding, t.currency, t.rate, places)
}

func (t Transaction) String() string {
	if !t.action.IsSecurity() {
		return fmt.Sprintf("%s %s", t.time.Format(time.DateTime), t.action)
	}
	return fmt.Sprintf("%s %s %s %s @ %s %s / %s", t.time.Format(time.DateTime), t.action, t.shares, t.ticker, t.price, t.currency, t.rate)
}
