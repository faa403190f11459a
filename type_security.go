package abgeltung

import "fmt"

// Kind is the asset kind of a security, it decides whether a partial
// exemption applies.
type Kind int

const (
	// Stock is a single company share, fully taxable.
	Stock Kind = iota
	// Fund is an investment fund (ETF), subject to Teilfreistellung and
	// Vorabpauschale.
	Fund
)

func (k Kind) String() string {
	switch k {
	case Stock:
		return "stock"
	case Fund:
		return "fund"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind. "etf" is accepted for Fund.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "stock":
		return Stock, nil
	case "fund", "etf":
		return Fund, nil
	default:
		return 0, fmt.Errorf("unknown security kind: %q", s)
	}
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
