package abgeltung

import (
	"iter"
	"maps"
	"slices"
	"sort"
)

// Ledger is the list of one year's transactions.
//
// In a Ledger transactions are always in chronological order. Transactions
// sharing a timestamp keep the order in which they were appended.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates a ledger holding txs.
func NewLedger(txs ...Transaction) *Ledger {
	l := &Ledger{}
	l.Append(txs...)
	return l
}

// Append appends transactions to this ledger and maintains the chronological order of transactions.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// stableSort sorts the transactions by time, preserving the relative order of
// transactions on the same instant.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].time.Before(l.transactions[j].time)
	})
}

// Len returns the number of transactions.
func (l *Ledger) Len() int {
	if l == nil {
		return 0
	}
	return len(l.transactions)
}

// Transactions iterates over the transactions in chronological order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		if l == nil {
			return
		}
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// Security returns the chronological transactions on ticker.
func (l *Ledger) Security(ticker string) []Transaction {
	var txs []Transaction
	for tx := range l.Transactions() {
		if tx.action.IsSecurity() && tx.ticker == ticker {
			txs = append(txs, tx)
		}
	}
	return txs
}

// Tickers returns the tickers traded in the ledger, sorted.
func (l *Ledger) Tickers() []string {
	set := make(map[string]struct{})
	for tx := range l.Transactions() {
		if tx.action.IsSecurity() {
			set[tx.ticker] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(set))
}
