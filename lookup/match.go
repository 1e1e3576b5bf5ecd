package lookup

import (
	"strings"

	"github.com/arjun-kp/PayTrail/models"
	"github.com/arjun-kp/PayTrail/tabular"
)

// MaxResults caps every result list. When more rows match, the first
// MaxResults encountered in the source's scan order are kept; callers must
// not rely on which subset that is.
const MaxResults = 50

// searchHeadroom is how many candidates the indexed strategy requests per
// column. Failed payments are filtered after the lookup, so requesting only
// MaxResults would come up short whenever failed rows sit among the first
// hits.
const searchHeadroom = 4 * MaxResults

// Payments-table column names used by the matcher.
const (
	colEmail   = "email"
	colContact = "contact"
	colStatus  = "status"
)

// FindMatchingPayments returns payment rows whose email or contact cell
// equals the given normalized identity values. Matching is exact on the full
// cell after normalization, failed payments are dropped, and the result is
// capped at MaxResults. A nil or empty table yields an empty result.
func FindMatchingPayments(t tabular.Table, email, phone string) ([]tabular.Row, error) {
	if t == nil || (email == "" && phone == "") {
		return nil, nil
	}

	if s, ok := t.(tabular.Searcher); ok {
		return searchPayments(s, email, phone)
	}
	return scanPayments(t, email, phone)
}

// scanPayments is the baseline strategy: a linear pass over every row.
func scanPayments(t tabular.Table, email, phone string) ([]tabular.Row, error) {
	rows, err := t.Rows()
	if err != nil {
		return nil, err
	}

	var matched []tabular.Row
	for _, row := range rows {
		if !identityMatches(row, email, phone) {
			continue
		}
		if isFailedPayment(row) {
			continue
		}
		matched = append(matched, row)
		if len(matched) == MaxResults {
			break
		}
	}
	return matched, nil
}

// searchPayments is the indexed strategy for sources that can look rows up
// by column value. Email and phone hits are merged and de-duplicated on the
// row's id cell, then filtered and capped the same way the scan path is.
func searchPayments(s tabular.Searcher, email, phone string) ([]tabular.Row, error) {
	var candidates []tabular.Row
	if email != "" {
		rows, err := s.Search(colEmail, email, searchHeadroom)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, rows...)
	}
	if phone != "" {
		rows, err := s.Search(colContact, phone, searchHeadroom)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, rows...)
	}

	seen := make(map[string]bool, len(candidates))
	var matched []tabular.Row
	for _, row := range candidates {
		id := row.Get("id")
		if id != "" && seen[id] {
			continue
		}
		// The indexed lookup over-approximates with Canon; re-check against
		// the normalized identity so the candidate set narrows to exactly
		// the rows the scan strategy accepts.
		if !identityMatches(row, email, phone) {
			continue
		}
		if isFailedPayment(row) {
			continue
		}
		seen[id] = true
		matched = append(matched, row)
		if len(matched) == MaxResults {
			break
		}
	}
	return matched, nil
}

// FindByForeignKey returns rows whose cell under column equals any element
// of keys, compared case-sensitively on the full cell value. An empty key
// set returns immediately without touching the table.
func FindByForeignKey(t tabular.Table, column string, keys []string) ([]tabular.Row, error) {
	if t == nil || len(keys) == 0 {
		return nil, nil
	}

	if s, ok := t.(tabular.Searcher); ok {
		return s.SearchIn(column, keys, MaxResults)
	}

	keySet := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k != "" {
			keySet[k] = true
		}
	}

	rows, err := t.Rows()
	if err != nil {
		return nil, err
	}

	var matched []tabular.Row
	for _, row := range rows {
		if !keySet[row.Get(column)] {
			continue
		}
		matched = append(matched, row)
		if len(matched) == MaxResults {
			break
		}
	}
	return matched, nil
}

func identityMatches(row tabular.Row, email, phone string) bool {
	if email != "" && NormalizeEmail(row.Get(colEmail)) == email {
		return true
	}
	if phone != "" && NormalizePhone(row.Get(colContact)) == phone {
		return true
	}
	return false
}

func isFailedPayment(row tabular.Row) bool {
	return strings.EqualFold(row.Get(colStatus), models.PaymentStatusFailed)
}
