package lookup

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjun-kp/PayTrail/tabular"
)

// memSearchTable adds the Searcher capability so the indexed strategy gets
// exercised.
type memSearchTable struct {
	*memTable
}

func (t *memSearchTable) Search(column, value string, limit int) ([]tabular.Row, error) {
	rows, err := t.Rows()
	if err != nil {
		return nil, err
	}
	want := tabular.Canon(value)
	var out []tabular.Row
	for _, row := range rows {
		if tabular.Canon(row.Get(column)) == want {
			out = append(out, row)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (t *memSearchTable) SearchIn(column string, values []string, limit int) ([]tabular.Row, error) {
	rows, err := t.Rows()
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	var out []tabular.Row
	for _, row := range rows {
		if set[row.Get(column)] {
			out = append(out, row)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func TestSearchPaymentsDeduplicatesEmailAndPhoneHits(t *testing.T) {
	table := &memSearchTable{newMemTable("payments", paymentHeaders, [][]string{
		{"pay_1", "a@b.com", "+911111111111", "captured", "100", "2024-01-01"},
		{"pay_2", "other@b.com", "+911111111111", "captured", "200", "2024-01-02"},
	})}

	// pay_1 matches on both email and contact but must appear once.
	rows, err := FindMatchingPayments(table, "a@b.com", "+911111111111")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "pay_1", rows[0].Get("id"))
	assert.Equal(t, "pay_2", rows[1].Get("id"))
}

func TestSearchPaymentsExcludesFailed(t *testing.T) {
	table := &memSearchTable{newMemTable("payments", paymentHeaders, [][]string{
		{"pay_1", "a@b.com", "", "Failed", "100", "2024-01-01"},
	})}

	rows, err := FindMatchingPayments(table, "a@b.com", "")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSearchPaymentsMatchesFormattedStoredCells(t *testing.T) {
	// Sheet-fed contact cells often keep their display formatting; the
	// indexed path must still surface them.
	cells := [][]string{
		{"pay_1", "a@b.com", "+91 11111-11111", "captured", "100", "2024-01-01"},
	}
	indexed := &memSearchTable{newMemTable("payments", paymentHeaders, cells)}
	scan := newMemTable("payments", paymentHeaders, cells)

	phone := NormalizePhone("+91 11111 11111")
	indexedRows, err := FindMatchingPayments(indexed, "", phone)
	require.NoError(t, err)
	scanRows, err := FindMatchingPayments(scan, "", phone)
	require.NoError(t, err)

	require.Len(t, scanRows, 1)
	require.Len(t, indexedRows, 1)
	assert.Equal(t, "pay_1", indexedRows[0].Get("id"))
}

func TestSearchPaymentsCapWithFailedRows(t *testing.T) {
	// 30 failed rows ahead of 60 valid ones: the indexed path must still
	// fill the cap instead of losing slots to rows the filter drops.
	var cells [][]string
	for i := 0; i < 30; i++ {
		cells = append(cells, []string{fmt.Sprintf("pay_f%d", i), "a@b.com", "", "failed", "100", "2024-01-01"})
	}
	for i := 0; i < 60; i++ {
		cells = append(cells, []string{fmt.Sprintf("pay_v%d", i), "a@b.com", "", "captured", "100", "2024-01-01"})
	}
	table := &memSearchTable{newMemTable("payments", paymentHeaders, cells)}

	rows, err := FindMatchingPayments(table, "a@b.com", "")
	require.NoError(t, err)
	assert.Len(t, rows, MaxResults)
}

func TestSearchStrategyAgreesWithScan(t *testing.T) {
	cells := [][]string{
		{"pay_1", "a@b.com", "+911111111111", "captured", "100", "2024-01-01"},
		{"pay_2", "a@b.com", "", "failed", "200", "2024-01-02"},
		{"pay_3", "x@y.com", "+911111111111", "authorized", "300", "2024-01-03"},
	}
	scan := newMemTable("payments", paymentHeaders, cells)
	indexed := &memSearchTable{newMemTable("payments", paymentHeaders, cells)}

	scanRows, err := FindMatchingPayments(scan, "a@b.com", "+911111111111")
	require.NoError(t, err)
	indexedRows, err := FindMatchingPayments(indexed, "a@b.com", "+911111111111")
	require.NoError(t, err)

	require.Equal(t, len(scanRows), len(indexedRows))
	ids := func(rows []tabular.Row) map[string]bool {
		m := make(map[string]bool)
		for _, r := range rows {
			m[r.Get("id")] = true
		}
		return m
	}
	assert.Equal(t, ids(scanRows), ids(indexedRows))
}
