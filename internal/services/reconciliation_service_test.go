package services

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"bitbucket.org/Selaras/go-bank-sync/internal/common/idgenerator"
	"bitbucket.org/Selaras/go-bank-sync/internal/config"
	"bitbucket.org/Selaras/go-bank-sync/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReport() *models.SyncReport {
	return models.NewSyncReport("run-test", testRunDate, testRunDate)
}

func TestReconcile_MatchesExistingAccountByVendorID(t *testing.T) {
	srv, m := newTestServices(t, config.Config{})

	existing := models.Account{
		ID:        "S1",
		VendorID:  "A1",
		Label:     "Compte courant",
		CreatedAt: testRunDate.AddDate(-1, 0, 0),
	}

	incoming := models.Account{VendorID: "A1", Label: "Compte courant renamed", Balance: decimal.NewFromInt(100)}

	m.accRepository.EXPECT().
		GetAllByVendorIDs(gomock.Any(), []string{"A1"}).
		Return([]models.Account{existing}, nil)
	m.accRepository.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, acc models.Account) error {
			// existing storage id reused, not a new record
			assert.Equal(t, "S1", acc.ID)
			assert.Equal(t, existing.CreatedAt, acc.CreatedAt)
			assert.Equal(t, "Compte courant renamed", acc.Label)
			return nil
		})
	m.trxRepository.EXPECT().GetAllByVendorIDs(gomock.Any(), gomock.Any()).Return(nil, nil)

	report := newTestReport()
	lookup, err := srv.Reconciliation.Reconcile(context.Background(), ReconcileIn{
		Accounts: []models.Account{incoming},
	}, report)
	require.NoError(t, err)

	id, ok := lookup.StorageID("A1")
	require.True(t, ok)
	assert.Equal(t, "S1", id)
	assert.Equal(t, 1, report.Accounts.Updated)
	assert.Equal(t, 0, report.Accounts.Created)
}

func TestReconcile_AllocatesNewStorageIDForUnseenVendorID(t *testing.T) {
	srv, m := newTestServices(t, config.Config{})

	m.accRepository.EXPECT().
		GetAllByVendorIDs(gomock.Any(), []string{"A2"}).
		Return(nil, nil)
	m.idGenerator.EXPECT().Generate(idgenerator.PrefixAccount).Return("acc-new")
	m.accRepository.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, acc models.Account) error {
			assert.Equal(t, "acc-new", acc.ID)
			return nil
		})
	m.trxRepository.EXPECT().GetAllByVendorIDs(gomock.Any(), gomock.Any()).Return(nil, nil)

	report := newTestReport()
	lookup, err := srv.Reconciliation.Reconcile(context.Background(), ReconcileIn{
		Accounts: []models.Account{{VendorID: "A2", Balance: decimal.NewFromInt(50)}},
	}, report)
	require.NoError(t, err)

	id, ok := lookup.StorageID("A2")
	require.True(t, ok)
	assert.Equal(t, "acc-new", id)
	assert.NotEqual(t, "S1", id)
	assert.Equal(t, 1, report.Accounts.Created)
}

func TestReconcile_DuplicateVendorIDIsFatal(t *testing.T) {
	srv, _ := newTestServices(t, config.Config{})

	report := newTestReport()
	_, err := srv.Reconciliation.Reconcile(context.Background(), ReconcileIn{
		Accounts: []models.Account{{VendorID: "A1"}, {VendorID: "A1"}},
	}, report)

	require.Error(t, err)
	detail, ok := err.(models.ErrorDetail)
	require.True(t, ok)
	assert.Equal(t, models.MapErrors[models.ErrKeyDuplicateVendorID].Code, detail.Code)
}

func TestReconcile_OrphanTransactionReportedAndSkipped(t *testing.T) {
	srv, m := newTestServices(t, config.Config{})

	m.accRepository.EXPECT().GetAllByVendorIDs(gomock.Any(), []string{"A1"}).Return(nil, nil)
	m.idGenerator.EXPECT().Generate(idgenerator.PrefixAccount).Return("acc-1")
	m.accRepository.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

	// only the attached transaction reaches the existence query and the sink
	m.trxRepository.EXPECT().
		GetAllByVendorIDs(gomock.Any(), []string{"T1"}).
		Return(nil, nil)
	m.idGenerator.EXPECT().Generate(idgenerator.PrefixTransaction).Return("trx-1")
	m.trxRepository.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trx models.Transaction) error {
			assert.Equal(t, "T1", trx.VendorID)
			assert.Equal(t, "acc-1", trx.AccountID)
			return nil
		})

	report := newTestReport()
	_, err := srv.Reconciliation.Reconcile(context.Background(), ReconcileIn{
		Accounts: []models.Account{{VendorID: "A1"}},
		Transactions: []models.Transaction{
			{VendorID: "T1", VendorAccountID: "A1"},
			{VendorID: "T-orphan", VendorAccountID: "A-unknown"},
		},
	}, report)
	require.NoError(t, err)

	require.Len(t, report.Failures, 1)
	assert.Equal(t, models.FailureKindOrphanReference, report.Failures[0].Kind)
	assert.Equal(t, "T-orphan", report.Failures[0].VendorID)
	assert.Equal(t, 1, report.Transactions.Created)
	assert.Equal(t, 1, report.Transactions.Skipped)
}

func TestReconcile_PersistenceFailureDoesNotAbortBatch(t *testing.T) {
	srv, m := newTestServices(t, config.Config{})

	m.accRepository.EXPECT().GetAllByVendorIDs(gomock.Any(), []string{"A1", "A2"}).Return(nil, nil)
	m.idGenerator.EXPECT().Generate(idgenerator.PrefixAccount).Return("acc-1")
	m.idGenerator.EXPECT().Generate(idgenerator.PrefixAccount).Return("acc-2")

	gomock.InOrder(
		m.accRepository.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(assert.AnError),
		m.accRepository.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil),
	)
	m.trxRepository.EXPECT().GetAllByVendorIDs(gomock.Any(), gomock.Any()).Return(nil, nil)

	report := newTestReport()
	lookup, err := srv.Reconciliation.Reconcile(context.Background(), ReconcileIn{
		Accounts: []models.Account{{VendorID: "A1"}, {VendorID: "A2"}},
	}, report)
	require.NoError(t, err)

	// the failed record is reported, the surviving one is in the lookup
	require.Len(t, report.Failures, 1)
	assert.Equal(t, models.FailureKindPersistenceConflict, report.Failures[0].Kind)
	assert.Equal(t, "A1", report.Failures[0].VendorID)

	_, ok := lookup.StorageID("A1")
	assert.False(t, ok)
	_, ok = lookup.StorageID("A2")
	assert.True(t, ok)
}

func TestReconcile_DateImportPreservedOnResync(t *testing.T) {
	srv, m := newTestServices(t, config.Config{})

	firstImport := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	existingTrx := models.Transaction{
		ID:         "trx-1",
		VendorID:   "T1",
		DateImport: firstImport,
	}

	m.accRepository.EXPECT().GetAllByVendorIDs(gomock.Any(), gomock.Any()).
		Return([]models.Account{{ID: "acc-1", VendorID: "A1"}}, nil)
	m.accRepository.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

	m.trxRepository.EXPECT().GetAllByVendorIDs(gomock.Any(), []string{"T1"}).
		Return([]models.Transaction{existingTrx}, nil)
	m.trxRepository.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trx models.Transaction) error {
			assert.Equal(t, "trx-1", trx.ID)
			assert.Equal(t, firstImport, trx.DateImport)
			return nil
		})

	report := newTestReport()
	_, err := srv.Reconciliation.Reconcile(context.Background(), ReconcileIn{
		Accounts:     []models.Account{{VendorID: "A1"}},
		Transactions: []models.Transaction{{VendorID: "T1", VendorAccountID: "A1"}},
	}, report)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Transactions.Updated)
}
