package services

import (
	"context"
	"time"

	"bitbucket.org/Selaras/go-bank-sync/internal/common"
	"bitbucket.org/Selaras/go-bank-sync/internal/common/cache"
	"bitbucket.org/Selaras/go-bank-sync/internal/common/idgenerator"
	xlog "bitbucket.org/Selaras/go-bank-sync/internal/common/log"
	"bitbucket.org/Selaras/go-bank-sync/internal/common/mapper"
	"bitbucket.org/Selaras/go-bank-sync/internal/models"
	"bitbucket.org/Selaras/go-bank-sync/internal/monitoring"
	"bitbucket.org/Selaras/go-bank-sync/internal/vendorapi"
)

const bankDirectoryCacheKey = "banksync:bank-directory"

// syncRun drives one end-to-end run: authenticate, fetch banks, fetch
// accounts, fetch transactions per account, reconcile, merge balances.
type syncRun service

type RunOptions struct {
	// RunDate overrides "today" for the balance merge; zero means the clock's
	// current day.
	RunDate time.Time
	// ReportDir receives a CSV of per-record failures when non-empty and the
	// run collected any.
	ReportDir string
}

// Run executes the pipeline. Authentication and fetch failures are fatal and
// abort the run; per-record failures are collected in the returned report and
// never abort it. There is no rollback across the run: records persisted by
// completed steps stay persisted.
func (ss *syncRun) Run(ctx context.Context, opts RunOptions) (report *models.SyncReport, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	runID := ss.srv.idgenerator.Generate(idgenerator.PrefixRun)
	startedAt := ss.srv.clock.Now()

	runDate := opts.RunDate
	if runDate.IsZero() {
		runDate = startedAt
	}

	ctx = xlog.WithFields(ctx,
		xlog.String("runId", runID),
		xlog.String("runDate", runDate.Format(common.DateFormatYYYYMMDD)))

	report = models.NewSyncReport(runID, runDate, startedAt)
	defer func() {
		report.Duration = ss.srv.clock.Now().Sub(startedAt)
		if err != nil {
			ss.srv.metrics.GetSyncPrometheus().RecordRun("failed")
		} else {
			ss.srv.metrics.GetSyncPrometheus().RecordRun("success")
		}
		xlog.LogRun(ctx, runID, runDate.Format(common.DateFormatYYYYMMDD), err)
	}()

	xlog.Info(ctx, "[SYNC] run started")

	session, err := ss.srv.vendorClient.Authenticate(ctx, vendorapi.Credentials{
		ClientID: ss.srv.conf.Vendor.ClientID,
		Email:    ss.srv.conf.Vendor.Email,
		Password: ss.srv.conf.Vendor.Password,
	})
	if err != nil {
		return report, err
	}

	banks, err := ss.getBankDirectory(ctx, session)
	if err != nil {
		return report, err
	}

	rawAccounts, err := ss.srv.vendorClient.ListAccounts(ctx, session)
	if err != nil {
		return report, err
	}

	accounts := make([]models.Account, 0, len(rawAccounts))
	for _, raw := range rawAccounts {
		accounts = append(accounts, mapper.MapAccount(raw, banks))
	}

	// per-account fetches run sequentially; each account's transactions stay
	// attached to it through vendorAccountId
	var transactions []models.Transaction
	for _, raw := range rawAccounts {
		rawTrxs, listErr := ss.srv.vendorClient.ListTransactions(ctx, session, raw.ID)
		if listErr != nil {
			return report, listErr
		}

		for _, rawTrx := range rawTrxs {
			trx, mapErr := mapper.MapTransaction(rawTrx)
			if mapErr != nil {
				report.AddFailure(models.FailureKindNormalize, models.DocTypeTransaction, rawTrx.ID, mapErr)
				ss.srv.metrics.GetSyncPrometheus().RecordFailed(models.FailureKindNormalize)
				xlog.Warn(ctx, "[SYNC] transaction rejected by normalizer",
					xlog.String("vendorId", rawTrx.ID), xlog.Err(mapErr))
				continue
			}
			transactions = append(transactions, trx)
		}
	}

	lookup, err := ss.srv.Reconciliation.Reconcile(ctx, ReconcileIn{
		Accounts:     accounts,
		Transactions: transactions,
	}, report)
	if err != nil {
		return report, err
	}

	if mergeErr := ss.srv.BalanceHistory.MergeDailyBalances(ctx, lookup, runDate, report); mergeErr != nil {
		// per-account failures are already in the report; the run itself goes on
		xlog.Warn(ctx, "[SYNC] balance merge finished with failures", xlog.Err(mergeErr))
	}

	if opts.ReportDir != "" && report.HasFailures() {
		path, exportErr := exportFailures(report, opts.ReportDir)
		if exportErr != nil {
			xlog.Warn(ctx, "[SYNC] failed to export failure report", xlog.Err(exportErr))
		} else {
			xlog.Info(ctx, "[SYNC] failure report written", xlog.String("path", path))
		}
	}

	xlog.Info(ctx, "[SYNC] run finished",
		xlog.Int("accountsCreated", report.Accounts.Created),
		xlog.Int("accountsUpdated", report.Accounts.Updated),
		xlog.Int("transactionsCreated", report.Transactions.Created),
		xlog.Int("transactionsUpdated", report.Transactions.Updated),
		xlog.Int("failures", len(report.Failures)))

	return report, nil
}

// getBankDirectory serves the directory cache-aside: the bank list rarely
// changes, so one fetch per TTL is plenty.
func (ss *syncRun) getBankDirectory(ctx context.Context, session vendorapi.Session) (models.BankDirectory, error) {
	return ss.srv.bankCache.GetOrSet(ctx, cache.GetOrSetOpts[models.BankDirectory]{
		Key: bankDirectoryCacheKey,
		TTL: ss.srv.conf.Sync.BankDirectoryTTL,
		Callback: func() (models.BankDirectory, error) {
			rawBanks, err := ss.srv.vendorClient.ListBanks(ctx, session)
			if err != nil {
				return nil, err
			}
			return mapper.MapBanks(rawBanks), nil
		},
	})
}
