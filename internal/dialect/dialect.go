// Package dialect infers the CSV conventions of a statement export: which
// delimiter the bank chose and how fields are quoted. Detection is best
// effort and degrades to a fixed default rather than failing.
package dialect

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// sampleSize is how much of the file is read for sniffing.
const sampleSize = 4096

// candidates are the delimiters seen in real bank exports, in preference
// order for ties.
var candidates = []rune{';', ',', '|', '\t'}

// ErrAmbiguous is returned by Sniff when no candidate delimiter stands out.
var ErrAmbiguous = errors.New("ambiguous CSV dialect")

var log = logrus.New()

// SetLogger replaces the package logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Dialect describes the low-level CSV conventions of one file.
type Dialect struct {
	Delimiter        rune
	Quote            rune
	DoubleQuote      bool
	SkipInitialSpace bool
}

// Default is the fallback dialect: semicolon-delimited, double-quote
// escaping, spaces after delimiters ignored. Semicolon because French bank
// exports are the primary input and they use comma as the decimal separator.
func Default() Dialect {
	return Dialect{
		Delimiter:        ';',
		Quote:            '"',
		DoubleQuote:      true,
		SkipInitialSpace: true,
	}
}

// Reader returns a csv.Reader over r configured for this dialect. Rows may
// have varying field counts; length checks belong to the caller.
func (d Dialect) Reader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = d.Delimiter
	cr.TrimLeadingSpace = d.SkipInitialSpace
	cr.FieldsPerRecord = -1
	return cr
}

// Detect sniffs the dialect of the file at path. It never fails: any read or
// inference problem falls back to Default.
func Detect(path string) Dialect {
	return DetectWithFallback(path, Default())
}

// DetectWithFallback is Detect with a caller-chosen fallback dialect.
func DetectWithFallback(path string, fallback Dialect) Dialect {
	f, err := os.Open(path)
	if err != nil {
		log.WithError(err).WithField("file", path).Debug("dialect sniff: open failed, using fallback")
		return fallback
	}
	defer f.Close()

	buf := make([]byte, sampleSize)
	n, _ := io.ReadFull(f, buf)
	d, err := Sniff(string(buf[:n]))
	if err != nil {
		log.WithField("file", path).Debug("dialect sniff inconclusive, using fallback")
		return fallback
	}
	log.WithFields(logrus.Fields{"file": path, "delimiter": string(d.Delimiter)}).Debug("dialect detected")
	return d
}

// Sniff infers the delimiter from a sample. A candidate wins when it appears
// on the first line and its per-line count is consistent across the sampled
// lines; ties go to the candidate order. Returns ErrAmbiguous when nothing
// qualifies.
func Sniff(sample string) (Dialect, error) {
	lines := sampleLines(sample)
	if len(lines) == 0 {
		return Dialect{}, ErrAmbiguous
	}

	bestCount := 0
	var best rune
	for _, cand := range candidates {
		count := delimiterCount(lines[0], cand)
		if count == 0 {
			continue
		}
		consistent := true
		for _, line := range lines[1:] {
			if delimiterCount(line, cand) != count {
				consistent = false
				break
			}
		}
		if consistent && count > bestCount {
			bestCount = count
			best = cand
		}
	}
	if bestCount == 0 {
		return Dialect{}, ErrAmbiguous
	}

	d := Default()
	d.Delimiter = best
	return d, nil
}

// sampleLines returns the complete non-empty lines of the sample. The last
// line is dropped unless the sample ends on a newline, since a truncated
// read can cut it mid-field.
func sampleLines(sample string) []string {
	complete := strings.HasSuffix(sample, "\n")
	raw := strings.Split(strings.ReplaceAll(sample, "\r\n", "\n"), "\n")
	if !complete && len(raw) > 1 {
		raw = raw[:len(raw)-1]
	}
	var lines []string
	for _, l := range raw {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// delimiterCount counts occurrences of delim outside double-quoted sections.
func delimiterCount(line string, delim rune) int {
	count := 0
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == delim && !inQuotes:
			count++
		}
	}
	return count
}
