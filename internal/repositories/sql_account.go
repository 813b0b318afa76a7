package repositories

import (
	"context"
	"fmt"

	"bitbucket.org/Selaras/go-bank-sync/internal/common"
	"bitbucket.org/Selaras/go-bank-sync/internal/models"
	"bitbucket.org/Selaras/go-bank-sync/internal/monitoring"

	"github.com/lib/pq"
)

type AccountRepository interface {
	Upsert(ctx context.Context, in models.Account) (err error)
	GetAllByVendorIDs(ctx context.Context, vendorIDs []string) (result []models.Account, err error)
	GetOneByID(ctx context.Context, id string) (result models.Account, err error)
	GetList(ctx context.Context, opts models.AccountFilterOptions) (result []models.Account, err error)
}

type accountRepository sqlRepo

var _ AccountRepository = (*accountRepository)(nil)

// Upsert inserts an account or refreshes the mutable fields of the existing
// row with the same vendor identity. The storage id and createdAt of an
// existing row are never touched.
func (ar *accountRepository) Upsert(ctx context.Context, in models.Account) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ar.r.extractTxWrite(ctx)

	args := []any{
		in.ID,
		in.VendorID,
		in.Label,
		in.InstitutionLabel,
		in.Type,
		in.Number,
		in.Balance,
	}

	res, err := db.ExecContext(ctx, queryAccountUpsert, args...)
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

func (ar *accountRepository) GetAllByVendorIDs(ctx context.Context, vendorIDs []string) (results []models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ar.r.extractTxWrite(ctx)

	rows, err := db.QueryContext(ctx, queryAccountGetAllByVendorIDs, pq.Array(vendorIDs))
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var account models.Account
		err = rows.Scan(
			&account.ID,
			&account.VendorID,
			&account.Label,
			&account.InstitutionLabel,
			&account.Type,
			&account.Number,
			&account.Balance,
			&account.CreatedAt,
			&account.UpdatedAt,
		)
		if err != nil {
			return
		}

		results = append(results, account)
	}
	if rows.Err() != nil {
		return
	}

	return
}

func (ar *accountRepository) GetOneByID(ctx context.Context, id string) (result models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ar.r.extractTxRead(ctx)

	err = db.QueryRowContext(ctx, queryAccountGetOneByID, id).Scan(
		&result.ID,
		&result.VendorID,
		&result.Label,
		&result.InstitutionLabel,
		&result.Type,
		&result.Number,
		&result.Balance,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	return
}

func (ar *accountRepository) GetList(ctx context.Context, opts models.AccountFilterOptions) (results []models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ar.r.extractTxRead(ctx)

	query, args, err := buildListAccountQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var account models.Account
		err = rows.Scan(
			&account.ID,
			&account.VendorID,
			&account.Label,
			&account.InstitutionLabel,
			&account.Type,
			&account.Number,
			&account.Balance,
			&account.CreatedAt,
			&account.UpdatedAt,
		)
		if err != nil {
			return
		}

		results = append(results, account)
	}
	if rows.Err() != nil {
		return
	}

	return
}
