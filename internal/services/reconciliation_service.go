package services

import (
	"context"

	"bitbucket.org/Selaras/go-bank-sync/internal/common"
	"bitbucket.org/Selaras/go-bank-sync/internal/common/idgenerator"
	xlog "bitbucket.org/Selaras/go-bank-sync/internal/common/log"
	"bitbucket.org/Selaras/go-bank-sync/internal/models"
	"bitbucket.org/Selaras/go-bank-sync/internal/monitoring"
)

// reconciliation matches freshly fetched records against previously persisted
// ones by vendor identity and decides create vs update. It owns the
// vendor-to-storage identity mapping for the duration of one run.
type reconciliation service

type ReconcileIn struct {
	Accounts     []models.Account
	Transactions []models.Transaction
}

// Reconcile persists the batch with create-or-update semantics keyed by
// vendor id and returns the lookup from every persisted account's vendor id
// to its storage id.
//
// A duplicate vendor id within the batch is a fatal input-integrity error and
// nothing is written. A persistence failure on one record is recorded in the
// report and the loop continues; a transaction whose vendorAccountId matches
// no input account is reported as an orphan and excluded.
func (rs *reconciliation) Reconcile(ctx context.Context, in ReconcileIn, report *models.SyncReport) (lookup *models.VendorLookup, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if err = rs.checkBatchIntegrity(in); err != nil {
		return nil, err
	}

	lookup, err = rs.reconcileAccounts(ctx, in.Accounts, report)
	if err != nil {
		return nil, err
	}

	if err = rs.reconcileTransactions(ctx, in.Transactions, lookup, report); err != nil {
		return nil, err
	}

	return lookup, nil
}

func (rs *reconciliation) checkBatchIntegrity(in ReconcileIn) error {
	accountVendorIDs := make([]string, 0, len(in.Accounts))
	for _, acc := range in.Accounts {
		accountVendorIDs = append(accountVendorIDs, acc.VendorID)
	}
	if dup, found := findDuplicateVendorID(accountVendorIDs); found {
		return models.GetErrMap(models.ErrKeyDuplicateVendorID, "account "+dup)
	}

	trxVendorIDs := make([]string, 0, len(in.Transactions))
	for _, trx := range in.Transactions {
		trxVendorIDs = append(trxVendorIDs, trx.VendorID)
	}
	if dup, found := findDuplicateVendorID(trxVendorIDs); found {
		return models.GetErrMap(models.ErrKeyDuplicateVendorID, "transaction "+dup)
	}

	return nil
}

func (rs *reconciliation) reconcileAccounts(ctx context.Context, accounts []models.Account, report *models.SyncReport) (lookup *models.VendorLookup, err error) {
	accRepo := rs.srv.sqlRepo.GetAccountRepository()

	vendorIDs := make([]string, 0, len(accounts))
	for _, acc := range accounts {
		vendorIDs = append(vendorIDs, acc.VendorID)
	}

	existing, err := accRepo.GetAllByVendorIDs(ctx, vendorIDs)
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	existingByVendorID := make(map[string]models.Account, len(existing))
	for _, acc := range existing {
		existingByVendorID[acc.VendorID] = acc
	}

	lookup = models.NewVendorLookup()
	report.Accounts.Found = len(accounts)

	for _, acc := range accounts {
		if prev, ok := existingByVendorID[acc.VendorID]; ok {
			acc.ID = prev.ID
			acc.CreatedAt = prev.CreatedAt
		} else {
			acc.ID = rs.srv.idgenerator.Generate(idgenerator.PrefixAccount)
		}

		if upsertErr := accRepo.Upsert(ctx, acc); upsertErr != nil {
			report.Accounts.Skipped++
			report.AddFailure(models.FailureKindPersistenceConflict, models.DocTypeAccount, acc.VendorID, upsertErr)
			rs.srv.metrics.GetSyncPrometheus().RecordFailed(models.FailureKindPersistenceConflict)
			xlog.Warn(ctx, "[RECONCILE] account upsert rejected",
				xlog.String("vendorId", acc.VendorID), xlog.Err(upsertErr))
			continue
		}

		if _, ok := existingByVendorID[acc.VendorID]; ok {
			report.Accounts.Updated++
			rs.srv.metrics.GetSyncPrometheus().RecordSynced(models.DocTypeAccount, "updated", 1)
		} else {
			report.Accounts.Created++
			rs.srv.metrics.GetSyncPrometheus().RecordSynced(models.DocTypeAccount, "created", 1)
		}

		lookup.Add(acc)
	}

	return lookup, nil
}

func (rs *reconciliation) reconcileTransactions(ctx context.Context, transactions []models.Transaction, lookup *models.VendorLookup, report *models.SyncReport) (err error) {
	trxRepo := rs.srv.sqlRepo.GetTransactionRepository()

	report.Transactions.Found = len(transactions)

	// orphans are filtered out before the existence query so their vendor
	// ids never reach the sink
	kept := make([]models.Transaction, 0, len(transactions))
	for _, trx := range transactions {
		accountID, ok := lookup.StorageID(trx.VendorAccountID)
		if !ok {
			report.Transactions.Skipped++
			report.AddFailure(models.FailureKindOrphanReference, models.DocTypeTransaction, trx.VendorID, common.ErrOrphanReference)
			rs.srv.metrics.GetSyncPrometheus().RecordFailed(models.FailureKindOrphanReference)
			xlog.Warn(ctx, "[RECONCILE] orphan transaction",
				xlog.String("vendorId", trx.VendorID),
				xlog.String("vendorAccountId", trx.VendorAccountID))
			continue
		}

		trx.AccountID = accountID
		kept = append(kept, trx)
	}

	vendorIDs := make([]string, 0, len(kept))
	for _, trx := range kept {
		vendorIDs = append(vendorIDs, trx.VendorID)
	}

	existing, err := trxRepo.GetAllByVendorIDs(ctx, vendorIDs)
	if err != nil {
		return checkDatabaseError(err)
	}

	existingByVendorID := make(map[string]models.Transaction, len(existing))
	for _, trx := range existing {
		existingByVendorID[trx.VendorID] = trx
	}

	now := rs.srv.clock.Now()
	for _, trx := range kept {
		if prev, ok := existingByVendorID[trx.VendorID]; ok {
			trx.ID = prev.ID
			trx.DateImport = prev.DateImport
		} else {
			trx.ID = rs.srv.idgenerator.Generate(idgenerator.PrefixTransaction)
			trx.DateImport = now
		}

		if upsertErr := trxRepo.Upsert(ctx, trx); upsertErr != nil {
			report.Transactions.Skipped++
			report.AddFailure(models.FailureKindPersistenceConflict, models.DocTypeTransaction, trx.VendorID, upsertErr)
			rs.srv.metrics.GetSyncPrometheus().RecordFailed(models.FailureKindPersistenceConflict)
			xlog.Warn(ctx, "[RECONCILE] transaction upsert rejected",
				xlog.String("vendorId", trx.VendorID), xlog.Err(upsertErr))
			continue
		}

		if _, ok := existingByVendorID[trx.VendorID]; ok {
			report.Transactions.Updated++
			rs.srv.metrics.GetSyncPrometheus().RecordSynced(models.DocTypeTransaction, "updated", 1)
		} else {
			report.Transactions.Created++
			rs.srv.metrics.GetSyncPrometheus().RecordSynced(models.DocTypeTransaction, "created", 1)
		}
	}

	return nil
}
