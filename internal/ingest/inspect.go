package ingest

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/releve-dev/releve/internal/dialect"
	"github.com/releve-dev/releve/internal/model"
	"github.com/releve-dev/releve/internal/schema"
)

// Inspection describes how a file was understood: the dialect used, the raw
// headers, and which source header each logical field resolved to.
type Inspection struct {
	Dialect dialect.Dialect
	Headers []string
	Mapping map[schema.Field]string
	Records []model.Record
}

// Inspect ingests the file at path and reports how its columns were mapped.
// It shares Ingest's failure modes.
func Inspect(path string, d dialect.Dialect) (*Inspection, error) {
	records, err := IngestDialect(path, d)
	if err != nil {
		return nil, err
	}

	headers, err := readHeader(path, d)
	if err != nil {
		return nil, err
	}

	resolved := schema.Resolve(headers)
	mapping := make(map[schema.Field]string, len(resolved))
	for f, i := range resolved {
		mapping[f] = headers[i]
	}

	return &Inspection{
		Dialect: d,
		Headers: headers,
		Mapping: mapping,
		Records: records,
	}, nil
}

func readHeader(path string, d dialect.Dialect) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	cr := d.Reader(transform.NewReader(f, runes.ReplaceIllFormed()))
	header, err := cr.Read()
	if err != nil {
		return nil, &FormatError{Path: path}
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	return header, nil
}
