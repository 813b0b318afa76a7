package services

import (
	"context"

	"bitbucket.org/Selaras/go-bank-sync/internal/models"
	"bitbucket.org/Selaras/go-bank-sync/internal/monitoring"
)

type account service

func (as *account) GetList(ctx context.Context, opts models.AccountFilterOptions) (accounts []models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	accounts, err = as.srv.sqlRepo.GetAccountRepository().GetList(ctx, opts)
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	return accounts, nil
}

func (as *account) GetOne(ctx context.Context, id string) (result models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	result, err = as.srv.sqlRepo.GetAccountRepository().GetOneByID(ctx, id)
	if err != nil {
		return result, checkDatabaseError(err, models.ErrKeyAccountNotFound)
	}

	return result, nil
}
