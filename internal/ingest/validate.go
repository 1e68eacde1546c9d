package ingest

import (
	"fmt"
	"time"

	"github.com/releve-dev/releve/internal/model"
	"github.com/releve-dev/releve/internal/schema"
)

// Finding is one advisory observation about an ingested record. Findings
// never fail an import: sources are permissive (a row may carry both a debit
// and a credit, or a negative value in a signed column) and that behavior is
// preserved. They exist so the check command can surface rows worth a look.
type Finding struct {
	Row     int // 1-based source row, header counted as row 1
	Field   schema.Field
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("row %d [%s]: %s", f.Row, f.Field, f.Message)
}

// Check inspects ingested records and reports negative amounts and booking
// dates that did not normalize to ISO form.
func Check(records []model.Record) []Finding {
	var findings []Finding
	for i, rec := range records {
		row := i + 2

		if rec.Debit.Valid && rec.Debit.Decimal.IsNegative() {
			findings = append(findings, Finding{
				Row:     row,
				Field:   schema.Debit,
				Message: fmt.Sprintf("negative debit %s", rec.Debit.Decimal),
			})
		}
		if rec.Credit.Valid && rec.Credit.Decimal.IsNegative() {
			findings = append(findings, Finding{
				Row:     row,
				Field:   schema.Credit,
				Message: fmt.Sprintf("negative credit %s", rec.Credit.Decimal),
			})
		}
		if rec.BookingDate != "" {
			if _, err := time.Parse("2006-01-02", rec.BookingDate); err != nil {
				findings = append(findings, Finding{
					Row:     row,
					Field:   schema.BookingDate,
					Message: fmt.Sprintf("unrecognized date %q kept as-is", rec.BookingDate),
				})
			}
		}
	}
	return findings
}
