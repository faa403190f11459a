package abgeltung

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/abgeltung/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// state line kinds.
const (
	kindYear           = "year"
	kindLot            = "lot"
	kindVorabpauschale = "vorabpauschale"
)

// EncodeState writes s as JSONL: a year line, then for each ticker its lots in
// FIFO order and its cumulative Vorabpauschale per share.
//
//	{"kind":"year","year":2020}
//	{"kind":"lot","ticker":"EUNL","time":"2020-03-02 09:01:00","currency":"EUR","rate":1,"price":61.2,"shares":10,"remaining":4}
//	{"kind":"vorabpauschale","ticker":"EUNL","perShare":0.31}
func EncodeState(w io.Writer, s *State) error {
	if s == nil {
		s = NewState(0)
	}
	enc := json.NewEncoder(w)

	var head jsonObjectWriter
	head.Append("kind", kindYear)
	head.Append("year", s.Year)
	if err := enc.Encode(&head); err != nil {
		return fmt.Errorf("encoding state year: %w", err)
	}

	for _, ticker := range s.Tickers() {
		for _, lot := range s.lots[ticker] {
			var line jsonObjectWriter
			line.Append("kind", kindLot)
			line.Append("ticker", ticker)
			line.Append("time", lot.tx.time.Format(date.TimestampFormat))
			line.Append("currency", lot.tx.currency)
			line.Append("rate", lot.tx.rate)
			line.Append("price", lot.tx.price)
			line.Append("shares", lot.tx.shares)
			line.Append("remaining", lot.remaining)
			if err := enc.Encode(&line); err != nil {
				return fmt.Errorf("encoding %s lot: %w", ticker, err)
			}
		}
		if v, ok := s.perShare[ticker]; ok {
			var line jsonObjectWriter
			line.Append("kind", kindVorabpauschale)
			line.Append("ticker", ticker)
			line.Append("perShare", v)
			if err := enc.Encode(&line); err != nil {
				return fmt.Errorf("encoding %s vorabpauschale: %w", ticker, err)
			}
		}
	}
	return nil
}

// DecodeState reads a state written by EncodeState. Lots of a ticker must be
// in FIFO order.
func DecodeState(r io.Reader) (*State, error) {
	s := NewState(0)
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Kind string `json:"kind"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify state line %d %q: %w", n, string(line), err)
		}

		switch identifier.Kind {
		case kindYear:
			var temp struct {
				Year int `json:"year"`
			}
			if err := json.Unmarshal(line, &temp); err != nil {
				return nil, fmt.Errorf("state line %d: %w", n, err)
			}
			s.Year = temp.Year
		case kindLot:
			var temp struct {
				Ticker    string          `json:"ticker"`
				Time      string          `json:"time"`
				Currency  string          `json:"currency"`
				Rate      decimal.Decimal `json:"rate"`
				Price     decimal.Decimal `json:"price"`
				Shares    Quantity        `json:"shares"`
				Remaining Quantity        `json:"remaining"`
			}
			if err := json.Unmarshal(line, &temp); err != nil {
				return nil, fmt.Errorf("state line %d: %w", n, err)
			}
			on, err := date.ParseTimestamp(temp.Time)
			if err != nil {
				return nil, fmt.Errorf("%w: state line %d: %w", ErrDataIntegrity, n, err)
			}
			tx, err := NewTransaction(ActBuy, temp.Ticker, on, temp.Rate, temp.Price, temp.Shares, temp.Currency)
			if err != nil {
				return nil, fmt.Errorf("state line %d: %w", n, err)
			}
			lot, err := NewLot(tx, temp.Remaining)
			if err != nil {
				return nil, fmt.Errorf("state line %d: %w", n, err)
			}
			queue := s.lots[temp.Ticker]
			if k := len(queue); k > 0 && on.Before(queue[k-1].tx.time) {
				return nil, fmt.Errorf("%w: state line %d: %s lot is older than the previous one", ErrDataIntegrity, n, temp.Ticker)
			}
			s.lots[temp.Ticker] = append(queue, lot)
		case kindVorabpauschale:
			var temp struct {
				Ticker   string          `json:"ticker"`
				PerShare decimal.Decimal `json:"perShare"`
			}
			if err := json.Unmarshal(line, &temp); err != nil {
				return nil, fmt.Errorf("state line %d: %w", n, err)
			}
			if temp.PerShare.IsNegative() {
				return nil, fmt.Errorf("%w: state line %d: negative vorabpauschale for %s", ErrDataIntegrity, n, temp.Ticker)
			}
			s.SetVorabpauschalePerShare(temp.Ticker, temp.PerShare)
		default:
			return nil, fmt.Errorf("unknown state line kind %q on line %d", identifier.Kind, n)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading state: %w", err)
	}
	return s, nil
}
