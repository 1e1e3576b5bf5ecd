package lookup

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjun-kp/PayTrail/tabular"
)

// memTable is an in-memory Table for tests; it exercises the linear-scan
// strategy.
type memTable struct {
	name    string
	headers []string
	binding tabular.Binding
	cells   [][]string
	err     error
}

func newMemTable(name string, headers []string, cells [][]string) *memTable {
	return &memTable{
		name:    name,
		headers: headers,
		binding: tabular.BindHeaders(headers),
		cells:   cells,
	}
}

func (t *memTable) Name() string      { return t.name }
func (t *memTable) Headers() []string { return t.headers }

func (t *memTable) Rows() ([]tabular.Row, error) {
	if t.err != nil {
		return nil, t.err
	}
	rows := make([]tabular.Row, len(t.cells))
	for i, c := range t.cells {
		rows[i] = tabular.NewRow(t.binding, c)
	}
	return rows, nil
}

var paymentHeaders = []string{"id", "email", "contact", "status", "amount", "created_at"}

func TestFindMatchingPaymentsByEmail(t *testing.T) {
	table := newMemTable("payments", paymentHeaders, [][]string{
		{"pay_1", "a@b.com", "+911111111111", "captured", "100", "2024-01-01"},
		{"pay_2", "other@b.com", "+912222222222", "captured", "200", "2024-01-02"},
	})

	rows, err := FindMatchingPayments(table, NormalizeEmail("A@B.COM "), "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "pay_1", rows[0].Get("id"))
}

func TestFindMatchingPaymentsByPhone(t *testing.T) {
	table := newMemTable("payments", paymentHeaders, [][]string{
		{"pay_1", "a@b.com", "+91 11111 11111", "captured", "100", "2024-01-01"},
	})

	rows, err := FindMatchingPayments(table, "", NormalizePhone("(+91) 11111-11111"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "pay_1", rows[0].Get("id"))
}

func TestFindMatchingPaymentsExcludesFailed(t *testing.T) {
	table := newMemTable("payments", paymentHeaders, [][]string{
		{"pay_1", "a@b.com", "", "FAILED", "100", "2024-01-01"},
		{"pay_2", "a@b.com", "", "captured", "200", "2024-01-02"},
	})

	rows, err := FindMatchingPayments(table, "a@b.com", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "pay_2", rows[0].Get("id"))
}

func TestFindMatchingPaymentsNoIdentity(t *testing.T) {
	table := newMemTable("payments", paymentHeaders, [][]string{
		{"pay_1", "a@b.com", "", "captured", "100", "2024-01-01"},
	})

	rows, err := FindMatchingPayments(table, "", "")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFindMatchingPaymentsNilOrEmptyTable(t *testing.T) {
	rows, err := FindMatchingPayments(nil, "a@b.com", "")
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = FindMatchingPayments(newMemTable("payments", paymentHeaders, nil), "a@b.com", "")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFindMatchingPaymentsNoSubstringMatch(t *testing.T) {
	table := newMemTable("payments", paymentHeaders, [][]string{
		{"pay_1", "aa@b.com", "", "captured", "100", "2024-01-01"},
	})

	rows, err := FindMatchingPayments(table, "a@b.com", "")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFindMatchingPaymentsCap(t *testing.T) {
	var cells [][]string
	for i := 0; i < MaxResults+10; i++ {
		cells = append(cells, []string{fmt.Sprintf("pay_%d", i), "a@b.com", "", "captured", "100", "2024-01-01"})
	}
	table := newMemTable("payments", paymentHeaders, cells)

	rows, err := FindMatchingPayments(table, "a@b.com", "")
	require.NoError(t, err)
	assert.Len(t, rows, MaxResults)
}

func TestFindByForeignKey(t *testing.T) {
	headers := []string{"id", "payment_id", "amount"}
	table := newMemTable("orders", headers, [][]string{
		{"order_1", "p1", "100"},
		{"order_2", "p3", "200"},
	})

	rows, err := FindByForeignKey(table, "payment_id", []string{"p1", "p2"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "order_1", rows[0].Get("id"))
}

func TestFindByForeignKeyCaseSensitive(t *testing.T) {
	headers := []string{"id", "payment_id"}
	table := newMemTable("orders", headers, [][]string{
		{"order_1", "P1"},
	})

	rows, err := FindByForeignKey(table, "payment_id", []string{"p1"})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFindByForeignKeyEmptyKeys(t *testing.T) {
	table := newMemTable("orders", []string{"id", "payment_id"}, nil)
	table.err = fmt.Errorf("should not be read")

	rows, err := FindByForeignKey(table, "payment_id", nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFindByForeignKeyIgnoresEmptyCells(t *testing.T) {
	headers := []string{"id", "payment_id"}
	table := newMemTable("orders", headers, [][]string{
		{"order_1", ""},
	})

	rows, err := FindByForeignKey(table, "payment_id", []string{"p1"})
	require.NoError(t, err)
	assert.Empty(t, rows)
}
