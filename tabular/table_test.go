package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindHeaders(t *testing.T) {
	b := BindHeaders([]string{"id", "amount", "id"})
	assert.Equal(t, 0, b["id"]) // first duplicate wins
	assert.Equal(t, 1, b["amount"])
	_, ok := b["missing"]
	assert.False(t, ok)
}

func TestCanon(t *testing.T) {
	assert.Equal(t, "+911111111111", Canon("+91 11111-11111"))
	assert.Equal(t, "+911111111111", Canon("(+91) 11111 11111"))
	assert.Equal(t, "a@b.com", Canon(" A@B.COM "))
	assert.Equal(t, Canon("a@b.com"), Canon(Canon("a@b.com")))
	assert.Equal(t, "", Canon(" ( ) - "))
}

func TestRowGet(t *testing.T) {
	b := BindHeaders([]string{"id", "email", "amount"})
	row := NewRow(b, []string{"pay_1", "  a@b.com  ", "1500"})

	assert.Equal(t, "pay_1", row.Get("id"))
	assert.Equal(t, "a@b.com", row.Get("email"), "cells are trimmed")
	assert.Equal(t, "", row.Get("missing"), "absent column reads as empty")
}

func TestRowGetShortRow(t *testing.T) {
	b := BindHeaders([]string{"id", "email", "amount"})
	row := NewRow(b, []string{"pay_1"})

	assert.Equal(t, "pay_1", row.Get("id"))
	assert.Equal(t, "", row.Get("email"))
	assert.Equal(t, int64(0), row.GetInt("amount"))
}

func TestRowGetInt(t *testing.T) {
	b := BindHeaders([]string{"amount", "attempts", "note"})
	row := NewRow(b, []string{"1500.00", "2", "hello"})

	assert.Equal(t, int64(1500), row.GetInt("amount"), "decimal exports keep the integral part")
	assert.Equal(t, int64(2), row.GetInt("attempts"))
	assert.Equal(t, int64(0), row.GetInt("note"), "non-numeric cells read as zero")
	assert.Equal(t, int64(0), row.GetInt("missing"))
}
