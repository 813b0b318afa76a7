package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Normalized account types. Vendor type codes map into these through the
// mapper tables; anything unrecognized lands on AccountTypeOther.
const (
	AccountTypeChecking   = "checking"
	AccountTypeSavings    = "savings"
	AccountTypeCard       = "card"
	AccountTypeLoan       = "loan"
	AccountTypeInvestment = "investment"
	AccountTypeOther      = "other"
)

// Account is the canonical shape of a bank account. ID is the storage
// identity assigned on first persist; VendorID is the identity assigned by
// the aggregation source and is the reconciliation key.
type Account struct {
	ID               string
	VendorID         string
	Label            string
	InstitutionLabel string
	Type             string
	Number           string
	Balance          decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsPersisted reports whether the account already carries a storage identity.
func (a Account) IsPersisted() bool {
	return a.ID != ""
}

type AccountFilterOptions struct {
	VendorIDs        []string
	InstitutionLabel string
	Type             string
}

// VendorLookup maps vendor identities to persisted accounts for the duration
// of one sync run. It is built by the reconciliator and handed to the balance
// history merger explicitly, never kept as shared module state.
type VendorLookup struct {
	accounts map[string]Account
}

func NewVendorLookup() *VendorLookup {
	return &VendorLookup{accounts: make(map[string]Account)}
}

func (l *VendorLookup) Add(acc Account) {
	l.accounts[acc.VendorID] = acc
}

// StorageID resolves a vendor identity to its storage identity.
func (l *VendorLookup) StorageID(vendorID string) (string, bool) {
	acc, ok := l.accounts[vendorID]
	return acc.ID, ok
}

func (l *VendorLookup) Account(vendorID string) (Account, bool) {
	acc, ok := l.accounts[vendorID]
	return acc, ok
}

// Accounts returns every persisted account in the lookup.
func (l *VendorLookup) Accounts() []Account {
	out := make([]Account, 0, len(l.accounts))
	for _, acc := range l.accounts {
		out = append(out, acc)
	}
	return out
}

func (l *VendorLookup) Len() int {
	return len(l.accounts)
}
