package abgeltung

import (
	"fmt"
	"time"
)

// Lot is an acquisition still (partially) open. The acquisition record is
// never modified, only the remaining share count shrinks.
type Lot struct {
	tx        Transaction
	remaining Quantity
}

// NewLot returns a lot for an acquisition, holding shares of it. It is used to
// rebuild carried lots.
func NewLot(tx Transaction, remaining Quantity) (Lot, error) {
	if tx.action != ActBuy {
		return Lot{}, fmt.Errorf("%w: a lot must be a %s, got %s", ErrDataIntegrity, ActBuy, tx.action)
	}
	if err := tx.Validate(); err != nil {
		return Lot{}, err
	}
	if !remaining.IsPositive() || remaining.GreaterThan(tx.shares) {
		return Lot{}, fmt.Errorf("%w: lot %s remaining shares %s not within (0,%s]", ErrDataIntegrity, tx, remaining, tx.shares)
	}
	return Lot{tx: tx, remaining: remaining}, nil
}

// Transaction returns the acquisition record.
func (l Lot) Transaction() Transaction { return l.tx }

// Remaining returns the shares still open.
func (l Lot) Remaining() Quantity { return l.remaining }

// Acquired returns the acquisition time.
func (l Lot) Acquired() time.Time { return l.tx.time }

// Value returns the home value of the remaining shares at acquisition price.
func (l Lot) Value(places int32) Money { return l.tx.HomePrice(places).Mul(l.remaining) }

// split takes q shares out of the lot. It returns the taken fragment and the
// remainder as new values. q must be strictly less than the remaining shares.
func (l Lot) split(q Quantity) (taken, rest Lot) {
	taken = Lot{tx: l.tx, remaining: q}
	rest = Lot{tx: l.tx, remaining: l.remaining.Sub(q)}
	return taken, rest
}

// Lots is a FIFO queue of open lots for one ticker, oldest first.
type Lots []Lot

// Position returns the number of open shares.
func (l Lots) Position() Quantity {
	var total Quantity
	for _, lot := range l {
		total = total.Add(lot.remaining)
	}
	return total
}

// Value returns the home value of the open position, each lot valued at its
// acquisition price and rate.
func (l Lots) Value(places int32) Money {
	total := M(0, HomeCurrency)
	for _, lot := range l {
		total = total.Add(lot.Value(places))
	}
	return total
}

// acquire returns the queue with a new lot for tx appended. tx must not be
// older than the newest lot.
func (l Lots) acquire(tx Transaction) (Lots, error) {
	if n := len(l); n > 0 && tx.time.Before(l[n-1].tx.time) {
		return l, fmt.Errorf("%w: %s is older than the open lot of %s", ErrDataIntegrity, tx, l[n-1].tx.time.Format(time.DateTime))
	}
	next := make(Lots, len(l), len(l)+1)
	copy(next, l)
	return append(next, Lot{tx: tx, remaining: tx.shares}), nil
}

// Match pairs a disposal with the lot fragment it consumed.
type Match struct {
	Lot    Lot         // consumed fragment, Remaining is the consumed shares
	Sale   Transaction // the disposal
	Shares Quantity    // shares consumed from Lot
	Full   bool        // true when the lot was consumed entirely
}

// Gain returns the realized gain of the match in the home currency:
// shares × (sale price − acquisition price), both converted at their own rate.
func (m Match) Gain(places int32) Money {
	return m.Sale.HomePrice(places).Sub(m.Lot.tx.HomePrice(places)).Mul(m.Shares)
}

// dispose consumes quantity shares from the front of the queue for sale. It
// returns the matches in consumption order and the remaining queue. When the
// open position is smaller than quantity it fails with ErrInsufficientLots and
// the queue is left as it was.
func (l Lots) dispose(sale Transaction, quantity Quantity) ([]Match, Lots, error) {
	if pos := l.Position(); pos.LessThan(quantity) {
		return nil, l, fmt.Errorf("%w: on %s cannot sell %s of %s, position is only %s",
			ErrInsufficientLots, sale.time.Format(time.DateTime), quantity, sale.ticker, pos)
	}

	var matches []Match
	rest := quantity
	i := 0
	next := Lots{}
	for ; i < len(l) && rest.IsPositive(); i++ {
		front := l[i]
		if front.remaining.LessThanOrEqual(rest) {
			// Full sale of this lot
			matches = append(matches, Match{Lot: front, Sale: sale, Shares: front.remaining, Full: true})
			rest = rest.Sub(front.remaining)
			continue
		}
		// Partial sale from this lot
		taken, remainder := front.split(rest)
		matches = append(matches, Match{Lot: taken, Sale: sale, Shares: rest})
		next = append(next, remainder)
		i++
		break
	}
	next = append(next, l[i:]...)
	return matches, next, nil
}
