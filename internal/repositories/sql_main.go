package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	xlog "bitbucket.org/Selaras/go-bank-sync/internal/common/log"
	"bitbucket.org/Selaras/go-bank-sync/internal/config"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	ar  *accountRepository
	tr  *transactionRepository
	bhr *balanceHistoryRepository
}

func NewSQLRepository(dbWrite *sql.DB, dbRead *sql.DB, cfg config.Config) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.ar = (*accountRepository)(&rtx.common)
	rtx.tr = (*transactionRepository)(&rtx.common)
	rtx.bhr = (*balanceHistoryRepository)(&rtx.common)

	return rtx
}

type SQLRepository interface {
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetAccountRepository() AccountRepository
	GetTransactionRepository() TransactionRepository
	GetBalanceHistoryRepository() BalanceHistoryRepository
}

var _ SQLRepository = (*Repository)(nil)

func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	xlog.Debug(ctx, "[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			xlog.Error(ctx, "[DATABASE.TRANSACTION.PANIC]", xlog.Err(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
			}
			xlog.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", xlog.Err(err))
		} else {
			if err = tx.Commit(); err != nil {
				if errors.Is(err, sql.ErrTxDone) {
					xlog.Warn(ctx, "[DATABASE.TRANSACTION.ALREADY_COMMITTED_OR_ROLLEDBACK]", xlog.Err(err))
					err = nil
				}
			}

			xlog.Debug(ctx, "[DATABASE.TRANSACTION.COMMIT]")
		}
	}()
	ctx = injectTx(ctx, tx)
	err = steps(ctx, r)
	return
}

func (r *Repository) GetAccountRepository() AccountRepository {
	return r.ar
}

func (r *Repository) GetTransactionRepository() TransactionRepository {
	return r.tr
}

func (r *Repository) GetBalanceHistoryRepository() BalanceHistoryRepository {
	return r.bhr
}
