// Package aggregate computes group-by summaries over canonical records and
// renders them as fixed-width tables. Pure grouping: all parsing ambiguity
// is resolved upstream by the ingestion pipeline.
package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/releve-dev/releve/internal/model"
)

// Default display labels for records without a category or subcategory.
const (
	DefaultUncategorized = "Non catégorisé"
	DefaultUnspecified   = "Non spécifié"
)

// Totals accumulates one group's amounts.
type Totals struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
	Count  int
}

// Balance returns Credit - Debit.
func (t Totals) Balance() decimal.Decimal {
	return t.Credit.Sub(t.Debit)
}

func (t Totals) add(rec model.Record) Totals {
	if rec.Debit.Valid {
		t.Debit = t.Debit.Add(rec.Debit.Decimal)
	}
	if rec.Credit.Valid {
		t.Credit = t.Credit.Add(rec.Credit.Decimal)
	}
	t.Count++
	return t
}

// By groups records by keyFn and totals each group's debit and credit.
// Absent amounts contribute nothing; every record counts toward its group.
func By(records []model.Record, keyFn func(model.Record) string) map[string]Totals {
	groups := make(map[string]Totals)
	for _, rec := range records {
		key := keyFn(rec)
		groups[key] = groups[key].add(rec)
	}
	return groups
}

// CategoryKey returns a grouping function over Category, with fallback as
// the label for uncategorized records.
func CategoryKey(fallback string) func(model.Record) string {
	return func(rec model.Record) string {
		if rec.Category == "" {
			return fallback
		}
		return rec.Category
	}
}

// SubcategoryKey returns a grouping function over Subcategory.
func SubcategoryKey(fallback string) func(model.Record) string {
	return func(rec model.Record) string {
		if rec.Subcategory == "" {
			return fallback
		}
		return rec.Subcategory
	}
}

// GrandTotal sums every record into a single Totals.
func GrandTotal(records []model.Record) Totals {
	var t Totals
	for _, rec := range records {
		t = t.add(rec)
	}
	return t
}
