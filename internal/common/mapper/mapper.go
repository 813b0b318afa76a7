// Package mapper holds the static code-mapping tables between the vendor's
// account-type/category codes and the normalized domain codes, plus the
// normalizer that turns raw vendor records into canonical models.
package mapper

import (
	"fmt"
	"time"

	"bitbucket.org/Selaras/go-bank-sync/internal/common"
	"bitbucket.org/Selaras/go-bank-sync/internal/models"
	"bitbucket.org/Selaras/go-bank-sync/internal/vendorapi"
)

// accountTypes maps the vendor account-type code to the normalized type.
// Unknown codes fall back to TypeOther.
var accountTypes = map[string]string{
	"checking":        models.AccountTypeChecking,
	"current":         models.AccountTypeChecking,
	"savings":         models.AccountTypeSavings,
	"deposit":         models.AccountTypeSavings,
	"card":            models.AccountTypeCard,
	"credit_card":     models.AccountTypeCard,
	"loan":            models.AccountTypeLoan,
	"market":          models.AccountTypeInvestment,
	"lifeinsurance":   models.AccountTypeInvestment,
	"share_savings":   models.AccountTypeInvestment,
	"pee":             models.AccountTypeInvestment,
	"perco":           models.AccountTypeInvestment,
	"special_savings": models.AccountTypeSavings,
}

// transactionCategories maps the vendor category code to the domain category
// id. Codes without an entry normalize to CategoryUncategorized, never unset.
var transactionCategories = map[string]int{
	"230":    100, // salary
	"232":    110, // interest
	"280":    200, // groceries
	"281":    210, // restaurants
	"308":    300, // rent
	"309":    310, // utilities
	"318":    320, // phone / internet
	"2":      400, // transfer
	"326":    410, // internal transfer
	"183":    500, // taxes
	"218":    600, // health
	"238":    700, // transport
	"197":    710, // fuel
	"186":    800, // leisure
	"170000": 900, // bank fees
}

// transactionTypes maps the vendor transaction-type code to the normalized
// type. Unknown codes fall back to TransactionTypeNone.
var transactionTypes = map[string]string{
	"transfer":       models.TransactionTypeTransfer,
	"order":          models.TransactionTypeTransfer,
	"check":          models.TransactionTypeCheck,
	"card":           models.TransactionTypeCard,
	"deferred_card":  models.TransactionTypeCard,
	"deposit":        models.TransactionTypeDeposit,
	"withdrawal":     models.TransactionTypeWithdrawal,
	"bank":           models.TransactionTypeBankFee,
	"bank_fee":       models.TransactionTypeBankFee,
	"loan_repayment": models.TransactionTypeTransfer,
}

// AccountType resolves a vendor account-type code.
func AccountType(vendorType string) string {
	if t, ok := accountTypes[vendorType]; ok {
		return t
	}
	return models.AccountTypeOther
}

// CategoryID resolves a vendor category code to the domain category id.
func CategoryID(vendorCategory string) int {
	if id, ok := transactionCategories[vendorCategory]; ok {
		return id
	}
	return models.CategoryUncategorized
}

// MapAccount normalizes one raw vendor account. The institution label comes
// from the bank directory; an unknown bank id leaves it empty rather than
// failing the record.
func MapAccount(raw vendorapi.RawAccount, banks models.BankDirectory) models.Account {
	return models.Account{
		VendorID:         raw.ID,
		Label:            raw.Label,
		InstitutionLabel: banks.LabelFor(raw.BankID),
		Type:             AccountType(raw.Type),
		Number:           raw.Number,
		Balance:          raw.Balance,
	}
}

// MapTransaction normalizes one raw vendor transaction. Date parsing is the
// only way this can fail; amounts and category codes always normalize.
func MapTransaction(raw vendorapi.RawTransaction) (models.Transaction, error) {
	date, err := time.Parse(common.DateFormatYYYYMMDD, raw.Date)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%w: transaction %s date %q: %v", common.ErrValidation, raw.ID, raw.Date, err)
	}

	dateOperation := date
	if raw.DateOperation != "" {
		dateOperation, err = time.Parse(common.DateFormatYYYYMMDD, raw.DateOperation)
		if err != nil {
			return models.Transaction{}, fmt.Errorf("%w: transaction %s date_operation %q: %v", common.ErrValidation, raw.ID, raw.DateOperation, err)
		}
	}

	label := raw.Label
	if label == "" {
		label = raw.OriginalLabel
	}

	return models.Transaction{
		VendorID:            raw.ID,
		VendorAccountID:     raw.AccountID,
		Date:                date,
		DateOperation:       dateOperation,
		Label:               label,
		OriginalLabel:       raw.OriginalLabel,
		Amount:              raw.Amount,
		Currency:            raw.Currency,
		AutomaticCategoryID: CategoryID(raw.CategoryID),
		Type:                TransactionType(raw.Type),
	}, nil
}

// TransactionType resolves a vendor transaction-type code.
func TransactionType(vendorType string) string {
	if t, ok := transactionTypes[vendorType]; ok {
		return t
	}
	return models.TransactionTypeNone
}

// MapBanks turns the raw bank list into the directory keyed by vendor bank id.
func MapBanks(raw []vendorapi.RawBank) models.BankDirectory {
	banks := make(models.BankDirectory, len(raw))
	for _, b := range raw {
		banks[b.ID] = models.Bank{VendorID: b.ID, Label: b.Label}
	}
	return banks
}
