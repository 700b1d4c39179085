package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CategoryTotal contains the summed value for a single category.
type CategoryTotal struct {
	Category   string          `json:"Category"`
	TotalValue decimal.Decimal `json:"TotalValue"`
}

// categoryTotalJSON mirrors CategoryTotal for serialization. TotalValue is
// emitted as a raw JSON number; decimal.Decimal's own MarshalJSON would quote
// it as a string, which downstream consumers do not accept.
type categoryTotalJSON struct {
	Category   string          `json:"Category"`
	TotalValue json.RawMessage `json:"TotalValue"`
}

// MarshalJSON serializes the total with TotalValue as a bare number.
func (t CategoryTotal) MarshalJSON() ([]byte, error) {
	return json.Marshal(categoryTotalJSON{
		Category:   t.Category,
		TotalValue: json.RawMessage(t.TotalValue.String()),
	})
}

// Summary is the aggregation output: one CategoryTotal per distinct category,
// ordered by first appearance in the input.
type Summary []CategoryTotal

// Categories returns the category names in summary order.
func (s Summary) Categories() []string {
	names := make([]string, 0, len(s))
	for _, t := range s {
		names = append(names, t.Category)
	}
	return names
}

// Total returns the summed value for the named category, and whether the
// category is present in the summary.
func (s Summary) Total(category string) (decimal.Decimal, bool) {
	for _, t := range s {
		if t.Category == category {
			return t.TotalValue, true
		}
	}
	return decimal.Zero, false
}
