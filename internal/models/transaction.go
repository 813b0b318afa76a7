package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeTransfer   = "transfer"
	TransactionTypeCheck      = "check"
	TransactionTypeCard       = "card"
	TransactionTypeDeposit    = "deposit"
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypeBankFee    = "bank_fee"
	TransactionTypeNone       = "none"
)

// CategoryUncategorized is the fallback when a vendor category code has no
// mapping. A transaction never leaves the normalizer without a category.
const CategoryUncategorized = 0

// Transaction is the canonical shape of a bank transaction.
//
// DateImport is set once, at the first successful import, and is never
// overwritten by later syncs of the same vendor transaction. The remaining
// fields refresh on every sync (the vendor may re-label or re-categorize).
type Transaction struct {
	ID                  string
	VendorID            string
	VendorAccountID     string
	AccountID           string
	Date                time.Time
	DateOperation       time.Time
	DateImport          time.Time
	Label               string
	OriginalLabel       string
	Amount              decimal.Decimal
	Currency            string
	AutomaticCategoryID int
	Type                string
}

type TransactionFilterOptions struct {
	AccountID string
	DateFrom  *time.Time
	DateTo    *time.Time
	Limit     uint64
}
