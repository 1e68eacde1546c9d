package ingest

import (
	"fmt"
	"sort"
	"strings"
)

// FormatError means the source file yielded no usable header row: nothing
// was ingested.
type FormatError struct {
	Path string
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return "no columns detected (check the file)"
	}
	return fmt.Sprintf("%s: no columns detected (check the file)", e.Path)
}

// RowError means one specific row could not be converted. The whole import
// is aborted at that row; no partial record list is returned. Row is
// 1-based with the header counted as row 1, so the first data row is row 2.
type RowError struct {
	Row     int
	Preview map[string]string // normalized header -> raw cell of the offending row
	Err     error
}

func (e *RowError) Error() string {
	msg := fmt.Sprintf("row %d: %v", e.Row, e.Err)
	if len(e.Preview) == 0 {
		return msg
	}
	keys := make([]string, 0, len(e.Preview))
	for k := range e.Preview {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%q", k, e.Preview[k])
	}
	return fmt.Sprintf("%s (row: %s)", msg, strings.Join(parts, " "))
}

func (e *RowError) Unwrap() error { return e.Err }
