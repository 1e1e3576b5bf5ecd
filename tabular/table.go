package tabular

import (
	"strconv"
	"strings"
	"unicode"
)

// Source resolves logical table names into tables. A name that does not
// exist in the backing store yields (nil, nil) so callers can degrade to
// empty results instead of failing the request.
type Source interface {
	Table(name string) (Table, error)
}

// Table is a read-only, row-oriented view with a single header row.
type Table interface {
	Name() string
	Headers() []string
	// Rows returns every data row for a full scan. An empty table (header
	// row only, or nothing at all) returns an empty slice.
	Rows() ([]Row, error)
}

// Searcher is implemented by sources that can locate rows by column value
// without scanning the whole table. Search matches rows whose cell equals
// value under Canon, so formatting in stored data cannot hide a row from
// the indexed path; callers re-check candidates against their own exact
// rules. SearchIn is a verbatim, case-sensitive full-value match.
type Searcher interface {
	Search(column, value string, limit int) ([]Row, error)
	SearchIn(column string, values []string, limit int) ([]Row, error)
}

// Canon folds a cell for candidate matching: lowercase, with whitespace,
// parentheses and hyphens removed. Two cells that agree after email or
// phone normalization always agree under Canon, so comparing Canon(cell)
// to Canon(value) over-approximates the exact match and never loses a row.
func Canon(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '(' || r == ')' || r == '-' {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Binding maps header names to column positions, resolved once per table.
// A header that is missing from the table is simply absent from the map and
// reads through Row as the field's default value.
type Binding map[string]int

// BindHeaders builds a Binding from a header row. Lookup is exact and
// case-sensitive on the header text; on duplicate headers the first wins.
func BindHeaders(headers []string) Binding {
	b := make(Binding, len(headers))
	for i, h := range headers {
		if _, seen := b[h]; !seen {
			b[h] = i
		}
	}
	return b
}

// Row is one data row paired with its table's binding.
type Row struct {
	binding Binding
	cells   []string
}

// NewRow pairs a cell slice with a binding. Short rows are fine; cells past
// the end read as empty.
func NewRow(binding Binding, cells []string) Row {
	return Row{binding: binding, cells: cells}
}

// Get returns the trimmed cell under the named column, or "" when the
// column or cell is absent.
func (r Row) Get(column string) string {
	i, ok := r.binding[column]
	if !ok || i < 0 || i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

// GetInt returns the cell under the named column parsed as an integer, or 0
// when the column is absent or the cell is not numeric.
func (r Row) GetInt(column string) int64 {
	s := r.Get(column)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Sheets exported from spreadsheet tools sometimes carry amounts
		// as "12345.00"; keep the integral part.
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0
		}
		return int64(f)
	}
	return n
}
