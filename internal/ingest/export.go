package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/releve-dev/releve/internal/model"
)

// Header is the fixed export header. The exporter always writes plain
// comma-separated CSV regardless of the dialect the records came from.
const Header = "booking_date,short_label,full_label,reference,extra_info,operation_type,category,subcategory,debit,credit"

const (
	numFields   = 10
	colDate     = 0
	colShort    = 1
	colFull     = 2
	colRef      = 3
	colExtra    = 4
	colType     = 5
	colCategory = 6
	colSubcat   = 7
	colDebit    = 8
	colCredit   = 9
)

// Export writes records to w in the fixed 10-column schema, one row per
// record in input order. Amounts are rendered with exactly two decimals when
// present and left empty when absent.
func Export(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ExportFile writes records to the file at path, overwriting it.
func ExportFile(path string, records []model.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Export(f, records); err != nil {
		f.Close()
		return fmt.Errorf("exporting to %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// MarshalRecord converts a Record to an export CSV row.
func MarshalRecord(rec model.Record) []string {
	row := make([]string, numFields)
	row[colDate] = rec.BookingDate
	row[colShort] = rec.ShortLabel
	row[colFull] = rec.FullLabel
	row[colRef] = rec.Reference
	row[colExtra] = rec.ExtraInfo
	row[colType] = rec.OperationType
	row[colCategory] = rec.Category
	row[colSubcat] = rec.Subcategory
	row[colDebit] = formatAmount(rec.Debit)
	row[colCredit] = formatAmount(rec.Credit)
	return row
}

func formatAmount(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.StringFixed(2)
}
