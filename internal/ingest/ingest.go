// Package ingest turns a loosely-structured bank-statement CSV into the
// ordered sequence of canonical records, and serializes records back out to
// the fixed export schema. One call, one sequential scan, no state kept
// between calls.
package ingest

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/releve-dev/releve/internal/dialect"
	"github.com/releve-dev/releve/internal/model"
	"github.com/releve-dev/releve/internal/normalize"
	"github.com/releve-dev/releve/internal/parse"
	"github.com/releve-dev/releve/internal/schema"
)

var log = logrus.New()

// SetLogger replaces the package logger (and the dialect sniffer's).
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		dialect.SetLogger(logger)
	}
}

// Ingest reads the file at path with an auto-detected dialect and returns
// its rows as canonical records, in source order. It fails with *FormatError
// when no header row is found and with *RowError when a row cannot be
// converted; there is no partial-success mode.
func Ingest(path string) ([]model.Record, error) {
	return IngestDialect(path, dialect.Detect(path))
}

// IngestDialect is Ingest with a caller-chosen dialect.
func IngestDialect(path string, d dialect.Dialect) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	records, err := IngestReader(f, d)
	if ferr, ok := err.(*FormatError); ok {
		ferr.Path = path
		return nil, ferr
	}
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"file": path, "records": len(records)}).Debug("ingested")
	return records, nil
}

// IngestReader ingests from an open reader. Ill-formed UTF-8 sequences in
// the input are replaced, not rejected.
func IngestReader(r io.Reader, d dialect.Dialect) ([]model.Record, error) {
	cr := d.Reader(transform.NewReader(r, runes.ReplaceIllFormed()))

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &FormatError{}
	}
	if err != nil {
		return nil, &FormatError{}
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	tokens := make([]string, len(header))
	for i, h := range header {
		tokens[i] = normalize.Token(h)
	}
	fields := schema.Resolve(header)
	if len(fields) == 0 && emptyHeader(tokens) {
		return nil, &FormatError{}
	}

	var out []model.Record
	for row := 2; ; row++ {
		cells, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &RowError{Row: row, Err: err}
		}
		rec, err := buildRecord(fields, cells)
		if err != nil {
			return nil, &RowError{Row: row, Preview: preview(tokens, cells), Err: err}
		}
		out = append(out, rec)
	}
	return out, nil
}

func emptyHeader(tokens []string) bool {
	for _, t := range tokens {
		if t != "" {
			return false
		}
	}
	return true
}

// preview maps the row's cells back to their normalized header keys for
// error reporting.
func preview(tokens, cells []string) map[string]string {
	p := make(map[string]string, len(cells))
	for i, c := range cells {
		key := fmt.Sprintf("col_%d", i+1)
		if i < len(tokens) && tokens[i] != "" {
			key = tokens[i]
		}
		p[key] = c
	}
	return p
}

// buildRecord converts one data row into a canonical record: trim every
// cell, parse the date and amounts, then reconcile a single merged amount
// column into debit/credit when neither dedicated column carried a value.
func buildRecord(fields map[schema.Field]int, cells []string) (model.Record, error) {
	cell := func(f schema.Field) string {
		i, ok := fields[f]
		if !ok || i >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[i])
	}

	rec := model.Record{
		BookingDate:   parse.Date(cell(schema.BookingDate)),
		ShortLabel:    cell(schema.ShortLabel),
		FullLabel:     cell(schema.FullLabel),
		Reference:     cell(schema.Reference),
		ExtraInfo:     cell(schema.ExtraInfo),
		OperationType: cell(schema.OperationType),
		Category:      cell(schema.Category),
		Subcategory:   cell(schema.Subcategory),
	}

	if raw := cell(schema.Debit); raw != "" {
		rec.Debit = parse.Amount(raw)
	}
	if raw := cell(schema.Credit); raw != "" {
		rec.Credit = parse.Amount(raw)
	}

	// Reconciliation: a merged amount column carries the sign that the
	// dedicated debit/credit columns would otherwise split.
	if !rec.Debit.Valid && !rec.Credit.Valid {
		if raw := cell(schema.Amount); raw != "" {
			amount := parse.Amount(raw)
			switch {
			case !amount.Valid:
				// Unparseable merged amount: both sides stay absent.
			case amount.Decimal.IsNegative():
				rec.Debit = decimal.NullDecimal{Decimal: amount.Decimal.Abs(), Valid: true}
			case amount.Decimal.IsPositive():
				rec.Credit = amount
			default:
				rec.Debit = decimal.NullDecimal{Decimal: decimal.Zero, Valid: true}
				rec.Credit = decimal.NullDecimal{Decimal: decimal.Zero, Valid: true}
			}
		}
	}

	if rec.ShortLabel == "" {
		rec.ShortLabel = rec.FullLabel
	}
	return rec, nil
}
