package services

import (
	"bitbucket.org/Selaras/go-bank-sync/internal/common"
	"bitbucket.org/Selaras/go-bank-sync/internal/common/cache"
	"bitbucket.org/Selaras/go-bank-sync/internal/common/idgenerator"
	"bitbucket.org/Selaras/go-bank-sync/internal/common/metrics"
	"bitbucket.org/Selaras/go-bank-sync/internal/config"
	"bitbucket.org/Selaras/go-bank-sync/internal/models"
	"bitbucket.org/Selaras/go-bank-sync/internal/repositories"
	"bitbucket.org/Selaras/go-bank-sync/internal/vendorapi"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo      repositories.SQLRepository
	vendorClient vendorapi.Client
	bankCache    cache.Client[models.BankDirectory]
	idgenerator  idgenerator.Generator
	clock        common.Clock
	metrics      metrics.Metrics

	common service

	Account        *account
	Reconciliation *reconciliation
	BalanceHistory *balanceHistory
	Sync           *syncRun
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	vendorClient vendorapi.Client,
	bankCache cache.Client[models.BankDirectory],
	idgenerator idgenerator.Generator,
	clock common.Clock,
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:         conf,
		sqlRepo:      sqlRepo,
		vendorClient: vendorClient,
		bankCache:    bankCache,
		idgenerator:  idgenerator,
		clock:        clock,
		metrics:      metrics,
	}
	srv.common.srv = srv
	srv.Account = (*account)(&srv.common)
	srv.Reconciliation = (*reconciliation)(&srv.common)
	srv.BalanceHistory = (*balanceHistory)(&srv.common)
	srv.Sync = (*syncRun)(&srv.common)

	return srv
}
