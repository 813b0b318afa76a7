package repositories

import (
	"context"
	"fmt"

	"bitbucket.org/Selaras/go-bank-sync/internal/common"
	"bitbucket.org/Selaras/go-bank-sync/internal/models"
	"bitbucket.org/Selaras/go-bank-sync/internal/monitoring"

	"github.com/lib/pq"
)

type TransactionRepository interface {
	Upsert(ctx context.Context, in models.Transaction) (err error)
	GetAllByVendorIDs(ctx context.Context, vendorIDs []string) (result []models.Transaction, err error)
	GetList(ctx context.Context, opts models.TransactionFilterOptions) (result []models.Transaction, err error)
}

type transactionRepository sqlRepo

var _ TransactionRepository = (*transactionRepository)(nil)

// Upsert inserts a transaction or refreshes the fields the normalizer may
// change (label, category, amount corrections from the vendor). dateImport is
// written on insert only; the conflict clause leaves it untouched so the
// first-import timestamp survives every later sync.
func (tr *transactionRepository) Upsert(ctx context.Context, in models.Transaction) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := tr.r.extractTxWrite(ctx)

	args := []any{
		in.ID,
		in.VendorID,
		in.VendorAccountID,
		in.AccountID,
		in.Date,
		in.DateOperation,
		in.DateImport,
		in.Label,
		in.OriginalLabel,
		in.Amount,
		in.Currency,
		in.AutomaticCategoryID,
		in.Type,
	}

	res, err := db.ExecContext(ctx, queryTransactionUpsert, args...)
	if err != nil {
		return
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return
	}

	if affectedRows == 0 {
		err = common.ErrNoRowsAffected
		return
	}

	return
}

func (tr *transactionRepository) GetAllByVendorIDs(ctx context.Context, vendorIDs []string) (results []models.Transaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := tr.r.extractTxWrite(ctx)

	rows, err := db.QueryContext(ctx, queryTransactionGetAllByVendorIDs, pq.Array(vendorIDs))
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var trx models.Transaction
		err = scanTransaction(rows, &trx)
		if err != nil {
			return
		}

		results = append(results, trx)
	}
	if rows.Err() != nil {
		return
	}

	return
}

func (tr *transactionRepository) GetList(ctx context.Context, opts models.TransactionFilterOptions) (results []models.Transaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := tr.r.extractTxRead(ctx)

	query, args, err := buildListTransactionQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var trx models.Transaction
		err = scanTransaction(rows, &trx)
		if err != nil {
			return
		}

		results = append(results, trx)
	}
	if rows.Err() != nil {
		return
	}

	return
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner, trx *models.Transaction) error {
	return row.Scan(
		&trx.ID,
		&trx.VendorID,
		&trx.VendorAccountID,
		&trx.AccountID,
		&trx.Date,
		&trx.DateOperation,
		&trx.DateImport,
		&trx.Label,
		&trx.OriginalLabel,
		&trx.Amount,
		&trx.Currency,
		&trx.AutomaticCategoryID,
		&trx.Type,
	)
}
