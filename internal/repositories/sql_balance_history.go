package repositories

import (
	"context"
	"database/sql"
	"errors"

	"bitbucket.org/Selaras/go-bank-sync/internal/common"
	"bitbucket.org/Selaras/go-bank-sync/internal/models"
	"bitbucket.org/Selaras/go-bank-sync/internal/monitoring"
)

type BalanceHistoryRepository interface {
	GetByYearAndAccount(ctx context.Context, year int, accountID string) (result *models.BalanceHistory, err error)
	GetAllByAccount(ctx context.Context, accountID string) (result []models.BalanceHistory, err error)
	Upsert(ctx context.Context, in models.BalanceHistory) (err error)
}

type balanceHistoryRepository sqlRepo

var _ BalanceHistoryRepository = (*balanceHistoryRepository)(nil)

// GetByYearAndAccount returns the oldest document for the pair. More than one
// document per (year, account) is a data anomaly from older importers; taking
// the first keeps every sync writing into the same document.
func (bhr *balanceHistoryRepository) GetByYearAndAccount(ctx context.Context, year int, accountID string) (result *models.BalanceHistory, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := bhr.r.extractTxWrite(ctx)

	var bh models.BalanceHistory
	err = db.QueryRowContext(ctx, queryBalanceHistoryGetByYearAndAccount, year, accountID).Scan(
		&bh.ID,
		&bh.Year,
		&bh.AccountID,
		&bh.Balances,
		&bh.Version,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = common.ErrDataNotFound
		}
		return
	}
	result = &bh

	return
}

func (bhr *balanceHistoryRepository) GetAllByAccount(ctx context.Context, accountID string) (results []models.BalanceHistory, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := bhr.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryBalanceHistoryGetAllByAccount, accountID)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var bh models.BalanceHistory
		err = rows.Scan(
			&bh.ID,
			&bh.Year,
			&bh.AccountID,
			&bh.Balances,
			&bh.Version,
		)
		if err != nil {
			return
		}

		results = append(results, bh)
	}
	if rows.Err() != nil {
		return
	}

	return
}

func (bhr *balanceHistoryRepository) Upsert(ctx context.Context, in models.BalanceHistory) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := bhr.r.extractTxWrite(ctx)

	args := []any{
		in.ID,
		in.Year,
		in.AccountID,
		in.Balances,
		in.Version,
	}

	res, err := db.ExecContext(ctx, queryBalanceHistoryUpsert, args...)
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
