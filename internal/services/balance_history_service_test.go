package services

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"bitbucket.org/Selaras/go-bank-sync/internal/common"
	"bitbucket.org/Selaras/go-bank-sync/internal/common/idgenerator"
	"bitbucket.org/Selaras/go-bank-sync/internal/config"
	"bitbucket.org/Selaras/go-bank-sync/internal/models"
	"bitbucket.org/Selaras/go-bank-sync/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passThroughAtomic makes the mocked Atomic run its steps against the same
// mocked repository, without a real transaction.
func passThroughAtomic(m *serviceMocks) {
	m.sqlRepository.EXPECT().
		Atomic(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, steps func(context.Context, repositories.SQLRepository) error) error {
			return steps(ctx, m.sqlRepository)
		}).
		AnyTimes()
}

func singleAccountLookup(id, vendorID string, balance decimal.Decimal) *models.VendorLookup {
	lookup := models.NewVendorLookup()
	lookup.Add(models.Account{ID: id, VendorID: vendorID, Balance: balance})
	return lookup
}

func TestMergeDailyBalances_AppendsTodayToExistingDocument(t *testing.T) {
	srv, m := newTestServices(t, config.Config{})
	passThroughAtomic(m)

	existing := models.BalanceHistory{
		ID:        "blh-1",
		Year:      2024,
		AccountID: "S1",
		Balances:  models.BalanceMap{"2024-01-01": decimal.NewFromInt(90)},
		Version:   1,
	}

	m.bhRepository.EXPECT().
		GetByYearAndAccount(gomock.Any(), 2024, "S1").
		Return(&existing, nil)
	m.bhRepository.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, doc models.BalanceHistory) error {
			// same document, prior day untouched, today's entry added
			assert.Equal(t, "blh-1", doc.ID)
			require.Len(t, doc.Balances, 2)
			assert.True(t, doc.Balances["2024-01-01"].Equal(decimal.NewFromInt(90)))
			assert.True(t, doc.Balances["2024-06-15"].Equal(decimal.NewFromInt(100)))
			assert.Equal(t, 2, doc.Version)
			return nil
		})

	report := newTestReport()
	err := srv.BalanceHistory.MergeDailyBalances(context.Background(),
		singleAccountLookup("S1", "A1", decimal.NewFromInt(100)), testRunDate, report)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Balances.Updated)
}

func TestMergeDailyBalances_CreatesDocumentLazily(t *testing.T) {
	srv, m := newTestServices(t, config.Config{})
	passThroughAtomic(m)

	m.bhRepository.EXPECT().
		GetByYearAndAccount(gomock.Any(), 2024, "S1").
		Return(nil, common.ErrDataNotFound)
	m.idGenerator.EXPECT().Generate(idgenerator.PrefixBalanceHistory).Return("blh-new")
	m.bhRepository.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, doc models.BalanceHistory) error {
			assert.Equal(t, "blh-new", doc.ID)
			assert.Equal(t, 2024, doc.Year)
			assert.Equal(t, "S1", doc.AccountID)
			assert.Equal(t, 1, doc.Version)
			require.Len(t, doc.Balances, 1)
			assert.True(t, doc.Balances["2024-06-15"].Equal(decimal.NewFromInt(100)))
			return nil
		})

	report := newTestReport()
	err := srv.BalanceHistory.MergeDailyBalances(context.Background(),
		singleAccountLookup("S1", "A1", decimal.NewFromInt(100)), testRunDate, report)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Balances.Created)
}

func TestMergeDailyBalances_YearRolloverGetsFreshDocument(t *testing.T) {
	srv, m := newTestServices(t, config.Config{})
	passThroughAtomic(m)

	newYearDate := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	// the 2024 document is never consulted: the lookup is for year 2025
	m.bhRepository.EXPECT().
		GetByYearAndAccount(gomock.Any(), 2025, "S1").
		Return(nil, common.ErrDataNotFound)
	m.idGenerator.EXPECT().Generate(idgenerator.PrefixBalanceHistory).Return("blh-2025")
	m.bhRepository.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, doc models.BalanceHistory) error {
			assert.Equal(t, 2025, doc.Year)
			require.Len(t, doc.Balances, 1)
			assert.True(t, doc.Balances["2025-01-01"].Equal(decimal.NewFromInt(120)))
			return nil
		})

	report := newTestReport()
	err := srv.BalanceHistory.MergeDailyBalances(context.Background(),
		singleAccountLookup("S1", "A1", decimal.NewFromInt(120)), newYearDate, report)
	require.NoError(t, err)
}

func TestMergeDailyBalances_IdempotentWithinOneDay(t *testing.T) {
	srv, m := newTestServices(t, config.Config{})
	passThroughAtomic(m)

	existing := models.BalanceHistory{
		ID:        "blh-1",
		Year:      2024,
		AccountID: "S1",
		Balances:  models.BalanceMap{"2024-06-15": decimal.NewFromInt(100)},
		Version:   2,
	}

	// today's value already recorded with the same balance: no write at all
	m.bhRepository.EXPECT().
		GetByYearAndAccount(gomock.Any(), 2024, "S1").
		Return(&existing, nil)

	report := newTestReport()
	err := srv.BalanceHistory.MergeDailyBalances(context.Background(),
		singleAccountLookup("S1", "A1", decimal.NewFromInt(100)), testRunDate, report)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Balances.Skipped)
	assert.Equal(t, 2, existing.Version)
}

func TestMergeDailyBalances_SameDayBalanceChangeOverwritesTodayOnly(t *testing.T) {
	srv, m := newTestServices(t, config.Config{})
	passThroughAtomic(m)

	existing := models.BalanceHistory{
		ID:        "blh-1",
		Year:      2024,
		AccountID: "S1",
		Balances: models.BalanceMap{
			"2024-06-14": decimal.NewFromInt(95),
			"2024-06-15": decimal.NewFromInt(100),
		},
		Version: 2,
	}

	m.bhRepository.EXPECT().
		GetByYearAndAccount(gomock.Any(), 2024, "S1").
		Return(&existing, nil)
	m.bhRepository.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, doc models.BalanceHistory) error {
			assert.True(t, doc.Balances["2024-06-15"].Equal(decimal.NewFromInt(150)))
			assert.True(t, doc.Balances["2024-06-14"].Equal(decimal.NewFromInt(95)))
			return nil
		})

	report := newTestReport()
	err := srv.BalanceHistory.MergeDailyBalances(context.Background(),
		singleAccountLookup("S1", "A1", decimal.NewFromInt(150)), testRunDate, report)
	require.NoError(t, err)
}

func TestMergeDailyBalances_OneFailureDoesNotStopOthers(t *testing.T) {
	srv, m := newTestServices(t, config.Config{})
	passThroughAtomic(m)

	lookup := models.NewVendorLookup()
	lookup.Add(models.Account{ID: "S1", VendorID: "A1", Balance: decimal.NewFromInt(100)})
	lookup.Add(models.Account{ID: "S2", VendorID: "A2", Balance: decimal.NewFromInt(200)})

	m.bhRepository.EXPECT().
		GetByYearAndAccount(gomock.Any(), 2024, gomock.Any()).
		Return(nil, assert.AnError)
	m.bhRepository.EXPECT().
		GetByYearAndAccount(gomock.Any(), 2024, gomock.Any()).
		Return(nil, common.ErrDataNotFound)
	m.idGenerator.EXPECT().Generate(idgenerator.PrefixBalanceHistory).Return("blh-ok")
	m.bhRepository.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

	report := newTestReport()
	err := srv.BalanceHistory.MergeDailyBalances(context.Background(), lookup, testRunDate, report)

	// the aggregate error carries the failed account; the run-level caller
	// logs it and keeps going
	require.Error(t, err)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, models.FailureKindBalanceMerge, report.Failures[0].Kind)
	assert.Equal(t, 1, report.Balances.Created)
}
