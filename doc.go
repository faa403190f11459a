// Package abgeltung computes the German flat tax on investment income
// (Abgeltungsteuer) of a private portfolio for one tax year.
//
// A run folds the chronological transactions of a year into the state carried
// from the previous year:
//   - Lots: every acquisition opens a lot, disposals consume the oldest lots
//     first (FIFO) and realize a gain per consumed lot.
//   - Teilfreistellung: realized gains on funds are reduced to their taxable
//     fraction, losses always count in full.
//   - Vorabpauschale: funds accrue a deemed yearly distribution on the open
//     lots, credited back when the shares are disposed in a later year.
//   - Tax: the allowance (Freibetrag), the flat rate and the solidarity
//     surcharge turn the yearly totals into the tax due.
//
// All amounts are converted into euros at the exchange rate recorded on each
// transaction. Prices quoted in pence (GBX) are scaled to pounds first.
//
// The open lots and the Vorabpauschale already taxed are handed to the next
// year as a State, persisted as JSONL with EncodeState and DecodeState.
package abgeltung
