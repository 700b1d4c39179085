package services

import (
	"github.com/shopspring/decimal"

	"tally/internal/models"
)

type summaryService struct{}

// NewSummaryService creates a new SummaryServiceInterface instance
func NewSummaryService() SummaryServiceInterface {
	return &summaryService{}
}

// Summarize groups records by exact category string and sums their coerced
// values with decimal arithmetic, so totals do not depend on summation order.
// Output order is the first appearance of each category in the input, which
// keeps repeated runs on the same file byte-identical.
func (s *summaryService) Summarize(records []models.Record) models.Summary {
	totals := make(map[string]decimal.Decimal, len(records))
	var order []string

	for _, record := range records {
		current, seen := totals[record.Category]
		if !seen {
			order = append(order, record.Category)
			current = decimal.Zero
		}
		totals[record.Category] = current.Add(record.Value)
	}

	summary := make(models.Summary, 0, len(order))
	for _, category := range order {
		summary = append(summary, models.CategoryTotal{
			Category:   category,
			TotalValue: totals[category],
		})
	}
	return summary
}
