package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bitbucket.org/Selaras/go-bank-sync/internal/common"
	genericCache "bitbucket.org/Selaras/go-bank-sync/internal/common/cache"
	"bitbucket.org/Selaras/go-bank-sync/internal/common/graceful"
	"bitbucket.org/Selaras/go-bank-sync/internal/common/idgenerator"
	xlog "bitbucket.org/Selaras/go-bank-sync/internal/common/log"
	cMetrics "bitbucket.org/Selaras/go-bank-sync/internal/common/metrics"
	"bitbucket.org/Selaras/go-bank-sync/internal/common/retry"
	"bitbucket.org/Selaras/go-bank-sync/internal/config"
	"bitbucket.org/Selaras/go-bank-sync/internal/models"
	"bitbucket.org/Selaras/go-bank-sync/internal/repositories"
	"bitbucket.org/Selaras/go-bank-sync/internal/services"
	"bitbucket.org/Selaras/go-bank-sync/internal/vendorapi"

	"github.com/go-resty/resty/v2"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	_ "github.com/lib/pq"
)

type Setup struct {
	Config   config.Config
	NewRelic *newrelic.Application
	WriteDB  *sql.DB
	ReadDB   *sql.DB
	Cache    *redis.Client
	Service  *services.Services
	Metrics  cMetrics.Metrics
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return
	}

	setup = &Setup{
		Config: cfg,
	}

	logOpts := []xlog.InitOption{}
	if config.StringToEnvironment(cfg.App.Env) == config.LOCAL_ENV {
		logOpts = append(logOpts, xlog.WithDevelopment())
	}
	logOpts = append(logOpts, xlog.WithLevel(cfg.App.LogLevel))

	err = xlog.Init(cfg.App.Name, logOpts...)
	if err != nil {
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		xlog.Sync()
		return nil
	})

	newRelic := setupNR(ctx, cfg)

	// metrics
	mtc := cMetrics.New()

	// connect to db master
	writeDB, readDB, err := setupPostgres(cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error

		if writeDB != nil {
			if err := writeDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
			}
		}

		if readDB != nil {
			if err := readDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
			}
		}

		return errs
	})

	if mtc != nil {
		// register DB write stat prometheus metrics
		err = mtc.RegisterDB(writeDB, command+"-write", cfg.Postgres.Write.DbName)
		if err != nil {
			err = fmt.Errorf("failed register DB stat prometheus: %w", err)
			return
		}
		// register DB read stat prometheus metrics
		err = mtc.RegisterDB(readDB, command+"-read", cfg.Postgres.Read.DbName)
		if err != nil {
			err = fmt.Errorf("failed register DB stat prometheus: %w", err)
			return
		}
	}

	// the bank directory cache survives between runs only when redis is on;
	// the in-memory fallback still serves repeated lookups within one process
	var (
		cache     *redis.Client
		bankCache genericCache.Client[models.BankDirectory]
	)
	if cfg.Redis.Enabled {
		cache = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Db,
		})
		_, err = cache.Ping(ctx).Result()
		if err != nil {
			err = fmt.Errorf("failed connect to redis: %w", err)
			return
		}
		stopper = append(stopper, func(ctx context.Context) error { return cache.Close() })

		bankCache = genericCache.NewRedisClient[models.BankDirectory](cache)
	} else {
		inMemory := genericCache.NewInMemoryClient[models.BankDirectory]()
		stopper = append(stopper, func(ctx context.Context) error {
			inMemory.Close()
			return nil
		})

		bankCache = inMemory
	}

	retryer := retry.NewExponentialBackOff(&cfg.ExponentialBackoff)
	vendorClient := vendorapi.New(resty.New(), cfg.Vendor, mtc, retryer)

	// register repository
	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, cfg)

	idGenerator := idgenerator.New()

	// register service
	srv := services.New(
		cfg,
		sqlRepo,
		vendorClient,
		bankCache,
		idGenerator,
		common.SystemClock(),
		mtc,
	)

	return &Setup{
		Config:   cfg,
		NewRelic: newRelic,
		WriteDB:  writeDB,
		ReadDB:   readDB,
		Cache:    cache,
		Service:  srv,
		Metrics:  mtc,
	}, stopper, nil
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName, pgConf.DbSchema,
	)

	db, err := sql.Open("postgres", dsName)
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if env := config.StringToEnvironment(cfg.App.Env); env == config.PROD_ENV {
		app, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.App.Name),
			newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			xlog.Errorf(ctx, "setupNR.NewApplication - %v", err)
		}
		if err = app.WaitForConnection(15 * time.Second); nil != err {
			xlog.Errorf(ctx, "setupNR.WaitForConnection - %v", err)
		}
		return app
	}
	return nil
}
