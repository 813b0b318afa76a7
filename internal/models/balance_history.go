package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// BalanceMap holds one balance per observed day, keyed YYYY-MM-DD. It is
// stored as a jsonb column.
type BalanceMap map[string]decimal.Decimal

func (m BalanceMap) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(BalanceMap{})
	}
	return json.Marshal(m)
}

func (m *BalanceMap) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*m = BalanceMap{}
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported scan type for BalanceMap: %T", src)
	}
}

// BalanceHistory is one document per (account, year) accumulating one balance
// snapshot per calendar day.
type BalanceHistory struct {
	ID        string
	Year      int
	AccountID string
	Balances  BalanceMap
	Version   int
}

// NewBalanceHistory synthesizes an empty document for an account and year.
func NewBalanceHistory(id string, year int, accountID string) BalanceHistory {
	return BalanceHistory{
		ID:        id,
		Year:      year,
		AccountID: accountID,
		Balances:  BalanceMap{},
		Version:   1,
	}
}

// SetBalance records the balance for one day, overwriting any prior value for
// that day and leaving every other day untouched.
func (b *BalanceHistory) SetBalance(dayKey string, balance decimal.Decimal) {
	if b.Balances == nil {
		b.Balances = BalanceMap{}
	}
	b.Balances[dayKey] = balance
}
