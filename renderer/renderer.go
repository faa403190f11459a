// Package renderer turns a computed tax year into a markdown report, and
// markdown into terminal output.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/abgeltung"
	md "github.com/nao1215/markdown"
)

// Summary labels, in the order they appear in the report.
const (
	LabelVorabpauschale       = "Total Vorabpauschale This Year"
	LabelVorabpauschaleReturn = "Total Vorabpauschale Return"
	LabelTax                  = "Total Tax"
)

// Markdown renders y as a markdown report. The three summary figures always
// come first, in a fixed order.
func Markdown(y *abgeltung.TaxYear) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Tax Year %d", y.Year()))
	doc.BulletList(
		fmt.Sprintf("%s: %s", LabelVorabpauschale, y.TotalVorabpauschale),
		fmt.Sprintf("%s: %s", LabelVorabpauschaleReturn, y.TotalVorabpauschaleReturn),
		fmt.Sprintf("%s: %s", LabelTax, y.Tax),
	)

	c := y.Constants
	doc.H2("Tax Base")
	doc.Table(md.TableSet{
		Header: []string{"Item", "Amount"},
		Rows: [][]string{
			{"Taxable Gain", y.TotalTaxableGain.SignedString()},
			{"Vorabpauschale", y.TotalVorabpauschale.String()},
			{"Freibetrag", c.Freibetrag.String()},
			{md.Bold("Tax Base"), md.Bold(y.TaxBase.String())},
			{"Quellensteuer", y.TotalWithholding.String()},
			{"Vorabpauschale Return", y.TotalVorabpauschaleReturn.String()},
			{md.Bold("Tax"), md.Bold(y.Tax.String())},
		},
	})
	doc.PlainText(fmt.Sprintf("Basiszins %s, Pauschalsteuer %s, Solidaritätszuschlag %s.",
		c.Basiszins, c.Pauschalsteuer, c.Solidaritaetszuschlag))

	if len(y.Tickers) > 0 {
		doc.H2("Securities")
		table := md.TableSet{
			Header: []string{"Ticker", "Kind", "Position", "Realized", "Taxable", "Dividends", "Vorabpauschale", "Return"},
		}
		for _, t := range y.Tickers {
			table.Rows = append(table.Rows, []string{
				t.Ticker(),
				t.Security.Kind().String(),
				t.Position.String(),
				t.Realized.SignedString(),
				t.Taxable.SignedString(),
				t.Dividends.String(),
				t.Vorabpauschale.String(),
				t.VorabpauschaleReturn.String(),
			})
		}
		doc.Table(table)
	}

	var notes []string
	for _, t := range y.Tickers {
		if t.Guard != nil {
			notes = append(notes, fmt.Sprintf("%s: %v", t.Ticker(), t.Guard))
		}
	}
	if len(notes) > 0 {
		doc.H2("Notes")
		doc.BulletList(notes...)
	}

	if len(y.Failed) > 0 {
		doc.H2("Skipped")
		failed := make([]string, len(y.Failed))
		for i, f := range y.Failed {
			failed[i] = f.Error()
		}
		doc.BulletList(failed...)
	}

	return doc.String()
}

// Terminal renders markdown for a terminal of the given width.
func Terminal(markdown string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating terminal renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
