package services

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/Selaras/go-bank-sync/internal/common"
	"bitbucket.org/Selaras/go-bank-sync/internal/common/idgenerator"
	xlog "bitbucket.org/Selaras/go-bank-sync/internal/common/log"
	"bitbucket.org/Selaras/go-bank-sync/internal/models"
	"bitbucket.org/Selaras/go-bank-sync/internal/monitoring"
	"bitbucket.org/Selaras/go-bank-sync/internal/repositories"

	"github.com/hashicorp/go-multierror"
)

// balanceHistory merges the balance observed on the run date into each
// account's per-year history document. Only the run date's entry is ever
// added or overwritten; prior days stay untouched.
type balanceHistory service

// MergeDailyBalances walks every account in the lookup and records its
// current balance under the run date's key in the (account, year) document
// for the run date's year. Documents are created lazily on the first sync of
// an account/year; the year rollover simply lands in a fresh document.
//
// Each account merges independently inside its own transaction; one account's
// failure is reported and the others proceed. The returned error aggregates
// the per-account failures and is nil when every account merged.
func (bs *balanceHistory) MergeDailyBalances(ctx context.Context, lookup *models.VendorLookup, runDate time.Time, report *models.SyncReport) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	var merr *multierror.Error

	report.Balances.Found = lookup.Len()

	for _, acc := range lookup.Accounts() {
		acc := acc
		mergeErr := bs.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
			return bs.mergeOne(ctx, r, acc, runDate, report)
		})
		if mergeErr != nil {
			report.Balances.Skipped++
			report.AddFailure(models.FailureKindBalanceMerge, models.DocTypeBalanceHistory, acc.VendorID, mergeErr)
			bs.srv.metrics.GetSyncPrometheus().RecordFailed(models.FailureKindBalanceMerge)
			xlog.Warn(ctx, "[BALANCE_HISTORY] merge failed",
				xlog.String("accountId", acc.ID), xlog.Err(mergeErr))
			merr = multierror.Append(merr, mergeErr)
		}
	}

	return merr.ErrorOrNil()
}

func (bs *balanceHistory) mergeOne(ctx context.Context, r repositories.SQLRepository, acc models.Account, runDate time.Time, report *models.SyncReport) error {
	bhRepo := r.GetBalanceHistoryRepository()

	year := runDate.Year()
	dayKey := runDate.Format(common.DateFormatYYYYMMDD)

	doc, err := bhRepo.GetByYearAndAccount(ctx, year, acc.ID)
	switch {
	case err == nil:
		if prev, ok := doc.Balances[dayKey]; ok && prev.Equal(acc.Balance) {
			// same day, same balance: nothing to write
			report.Balances.Skipped++
			bs.srv.metrics.GetSyncPrometheus().RecordSynced(models.DocTypeBalanceHistory, "unchanged", 1)
			return nil
		}
		doc.Version++
		report.Balances.Updated++
		bs.srv.metrics.GetSyncPrometheus().RecordSynced(models.DocTypeBalanceHistory, "updated", 1)
	case errors.Is(err, common.ErrDataNotFound):
		created := models.NewBalanceHistory(bs.srv.idgenerator.Generate(idgenerator.PrefixBalanceHistory), year, acc.ID)
		doc = &created
		report.Balances.Created++
		bs.srv.metrics.GetSyncPrometheus().RecordSynced(models.DocTypeBalanceHistory, "created", 1)
	default:
		return checkDatabaseError(err)
	}

	doc.SetBalance(dayKey, acc.Balance)

	if err = bhRepo.Upsert(ctx, *doc); err != nil {
		return checkDatabaseError(err)
	}

	return nil
}

// GetHistory returns an account's balance history documents, every year or a
// single one.
func (bs *balanceHistory) GetHistory(ctx context.Context, accountID string, year int) (result []models.BalanceHistory, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	bhRepo := bs.srv.sqlRepo.GetBalanceHistoryRepository()

	if year > 0 {
		doc, getErr := bhRepo.GetByYearAndAccount(ctx, year, accountID)
		if getErr != nil {
			return nil, checkDatabaseError(getErr)
		}
		return []models.BalanceHistory{*doc}, nil
	}

	result, err = bhRepo.GetAllByAccount(ctx, accountID)
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	return result, nil
}
