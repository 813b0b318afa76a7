package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceMap_ScanValue(t *testing.T) {
	m := BalanceMap{
		"2024-01-01": decimal.NewFromInt(90),
		"2024-06-15": decimal.NewFromFloat(100.25),
	}

	raw, err := m.Value()
	require.NoError(t, err)

	var got BalanceMap
	require.NoError(t, got.Scan(raw))

	assert.Len(t, got, 2)
	assert.True(t, got["2024-01-01"].Equal(decimal.NewFromInt(90)))
	assert.True(t, got["2024-06-15"].Equal(decimal.NewFromFloat(100.25)))
}

func TestBalanceMap_ScanNil(t *testing.T) {
	var got BalanceMap
	require.NoError(t, got.Scan(nil))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBalanceHistory_SetBalance(t *testing.T) {
	doc := NewBalanceHistory("blh-1", 2024, "acc-1")
	assert.Equal(t, 1, doc.Version)

	doc.SetBalance("2024-06-15", decimal.NewFromInt(100))
	doc.SetBalance("2024-06-15", decimal.NewFromInt(100))

	assert.Len(t, doc.Balances, 1)
	assert.True(t, doc.Balances["2024-06-15"].Equal(decimal.NewFromInt(100)))

	// a nil map is lazily created rather than panicking
	var bare BalanceHistory
	bare.SetBalance("2025-01-01", decimal.NewFromInt(50))
	assert.True(t, bare.Balances["2025-01-01"].Equal(decimal.NewFromInt(50)))
}
