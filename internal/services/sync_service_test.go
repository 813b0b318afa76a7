package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"bitbucket.org/Selaras/go-bank-sync/internal/common"
	"bitbucket.org/Selaras/go-bank-sync/internal/common/idgenerator"
	"bitbucket.org/Selaras/go-bank-sync/internal/config"
	"bitbucket.org/Selaras/go-bank-sync/internal/models"
	"bitbucket.org/Selaras/go-bank-sync/internal/vendorapi"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSyncConfig() config.Config {
	return config.Config{
		Vendor: config.Vendor{
			Email:    "sync@example.com",
			Password: "secret",
		},
	}
}

func TestRun_EndToEnd(t *testing.T) {
	srv, m := newTestServices(t, testSyncConfig())
	passThroughAtomic(m)

	session := vendorapi.Session{AccessToken: "tok"}

	m.vendorClient.EXPECT().
		Authenticate(gomock.Any(), vendorapi.Credentials{Email: "sync@example.com", Password: "secret"}).
		Return(session, nil)
	m.vendorClient.EXPECT().
		ListBanks(gomock.Any(), session).
		Return([]vendorapi.RawBank{{ID: "B1", Label: "Credit Mutuel"}}, nil)
	m.vendorClient.EXPECT().
		ListAccounts(gomock.Any(), session).
		Return([]vendorapi.RawAccount{{
			ID:      "A1",
			BankID:  "B1",
			Label:   "Compte courant",
			Type:    "checking",
			Balance: decimal.NewFromInt(100),
		}}, nil)
	m.vendorClient.EXPECT().
		ListTransactions(gomock.Any(), session, "A1").
		Return([]vendorapi.RawTransaction{{
			ID:        "T1",
			AccountID: "A1",
			Date:      "2024-06-14",
			Label:     "CARREFOUR PARIS",
			Amount:    decimal.NewFromFloat(-42.90),
			Currency:  "EUR",
			Type:      "card",
		}}, nil)

	m.idGenerator.EXPECT().Generate(idgenerator.PrefixRun).Return("run-1")

	// A1 was synced before as S1: the same storage id is reused
	m.accRepository.EXPECT().
		GetAllByVendorIDs(gomock.Any(), []string{"A1"}).
		Return([]models.Account{{ID: "S1", VendorID: "A1"}}, nil)
	m.accRepository.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, acc models.Account) error {
			assert.Equal(t, "S1", acc.ID)
			assert.Equal(t, "Credit Mutuel", acc.InstitutionLabel)
			return nil
		})

	m.trxRepository.EXPECT().GetAllByVendorIDs(gomock.Any(), []string{"T1"}).Return(nil, nil)
	m.idGenerator.EXPECT().Generate(idgenerator.PrefixTransaction).Return("trx-1")
	m.trxRepository.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trx models.Transaction) error {
			assert.Equal(t, "S1", trx.AccountID)
			assert.Equal(t, testRunDate, trx.DateImport)
			return nil
		})

	existingDoc := models.BalanceHistory{
		ID:        "blh-1",
		Year:      2024,
		AccountID: "S1",
		Balances:  models.BalanceMap{"2024-01-01": decimal.NewFromInt(90)},
		Version:   1,
	}
	m.bhRepository.EXPECT().
		GetByYearAndAccount(gomock.Any(), 2024, "S1").
		Return(&existingDoc, nil)
	m.bhRepository.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, doc models.BalanceHistory) error {
			assert.Equal(t, "blh-1", doc.ID)
			assert.True(t, doc.Balances["2024-01-01"].Equal(decimal.NewFromInt(90)))
			assert.True(t, doc.Balances["2024-06-15"].Equal(decimal.NewFromInt(100)))
			return nil
		})

	report, err := srv.Sync.Run(context.Background(), RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, "run-1", report.RunID)
	assert.Equal(t, 1, report.Accounts.Updated)
	assert.Equal(t, 1, report.Transactions.Created)
	assert.Equal(t, 1, report.Balances.Updated)
	assert.False(t, report.HasFailures())
}

func TestRun_AuthenticationFailureAbortsRun(t *testing.T) {
	srv, m := newTestServices(t, testSyncConfig())

	m.idGenerator.EXPECT().Generate(idgenerator.PrefixRun).Return("run-2")
	m.vendorClient.EXPECT().
		Authenticate(gomock.Any(), gomock.Any()).
		Return(vendorapi.Session{}, common.ErrLoginFailed)

	_, err := srv.Sync.Run(context.Background(), RunOptions{})
	assert.ErrorIs(t, err, common.ErrLoginFailed)
}

func TestRun_BankDirectoryServedFromCache(t *testing.T) {
	srv, m := newTestServices(t, testSyncConfig())

	session := vendorapi.Session{AccessToken: "tok"}

	// pre-warm the cache; ListBanks must not be called
	err := m.bankCache.Set(context.Background(), bankDirectoryCacheKey,
		models.BankDirectory{"B1": {VendorID: "B1", Label: "Cached Bank"}}, 0)
	require.NoError(t, err)

	banks, err := srv.Sync.getBankDirectory(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, "Cached Bank", banks.LabelFor("B1"))
}

func TestRun_NormalizeFailureGoesToCSVReport(t *testing.T) {
	srv, m := newTestServices(t, testSyncConfig())
	passThroughAtomic(m)

	session := vendorapi.Session{AccessToken: "tok"}
	dir := t.TempDir()

	m.idGenerator.EXPECT().Generate(idgenerator.PrefixRun).Return("run-3")
	m.vendorClient.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(session, nil)
	m.vendorClient.EXPECT().ListBanks(gomock.Any(), session).Return(nil, nil)
	m.vendorClient.EXPECT().
		ListAccounts(gomock.Any(), session).
		Return([]vendorapi.RawAccount{{ID: "A1", Balance: decimal.NewFromInt(10)}}, nil)
	m.vendorClient.EXPECT().
		ListTransactions(gomock.Any(), session, "A1").
		Return([]vendorapi.RawTransaction{{ID: "T-bad", AccountID: "A1", Date: "15/06/2024"}}, nil)

	m.accRepository.EXPECT().GetAllByVendorIDs(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.idGenerator.EXPECT().Generate(idgenerator.PrefixAccount).Return("acc-1")
	m.accRepository.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	m.trxRepository.EXPECT().GetAllByVendorIDs(gomock.Any(), gomock.Any()).Return(nil, nil)

	m.bhRepository.EXPECT().GetByYearAndAccount(gomock.Any(), 2024, "acc-1").Return(nil, common.ErrDataNotFound)
	m.idGenerator.EXPECT().Generate(idgenerator.PrefixBalanceHistory).Return("blh-1")
	m.bhRepository.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

	report, err := srv.Sync.Run(context.Background(), RunOptions{ReportDir: dir})
	require.NoError(t, err)
	require.True(t, report.HasFailures())
	assert.Equal(t, models.FailureKindNormalize, report.Failures[0].Kind)

	content, err := os.ReadFile(filepath.Join(dir, "sync-failures-2024-06-15-run-3.csv"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), "T-bad"))
	assert.True(t, strings.Contains(string(content), models.FailureKindNormalize))
}
