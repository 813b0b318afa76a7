package vendorapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"bitbucket.org/Selaras/go-bank-sync/internal/common"
	"bitbucket.org/Selaras/go-bank-sync/internal/common/httpclient"
	"bitbucket.org/Selaras/go-bank-sync/internal/common/metrics"
	"bitbucket.org/Selaras/go-bank-sync/internal/common/retry"
	"bitbucket.org/Selaras/go-bank-sync/internal/config"
	"bitbucket.org/Selaras/go-bank-sync/internal/monitoring"

	"github.com/go-resty/resty/v2"
)

const serviceName = "vendor-api"

// Client is the read side of the banking-aggregation source. All list
// operations require a Session obtained from Authenticate.
type Client interface {
	Authenticate(ctx context.Context, creds Credentials) (Session, error)
	ListBanks(ctx context.Context, session Session) ([]RawBank, error)
	ListAccounts(ctx context.Context, session Session) ([]RawAccount, error)
	ListTransactions(ctx context.Context, session Session, vendorAccountID string) ([]RawTransaction, error)
}

type client struct {
	wrapper *httpclient.RequestWrapper
	retryer retry.Retryer
	cfg     config.Vendor
}

func New(restyClient *resty.Client, cfg config.Vendor, m metrics.Metrics, retryer retry.Retryer) Client {
	restyClient.SetBaseURL(cfg.BaseURL)
	if cfg.Timeout > 0 {
		restyClient.SetTimeout(cfg.Timeout)
	}

	return &client{
		wrapper: httpclient.NewRequestWrapper(restyClient, m, serviceName, "vendorapi"),
		retryer: retryer,
		cfg:     cfg,
	}
}

func (c *client) Authenticate(ctx context.Context, creds Credentials) (session Session, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	res, err := c.doWithRetry(ctx, http.MethodPost, "/auth/login", func(req *resty.Request) *resty.Request {
		return req.SetBody(creds)
	})
	if err != nil {
		return session, err
	}

	if res.StatusCode() == http.StatusUnauthorized || res.StatusCode() == http.StatusForbidden {
		return session, common.ErrLoginFailed
	}
	if res.StatusCode() != http.StatusOK {
		return session, fmt.Errorf("%w: authenticate returned %s", common.ErrSourceUnavailable, res.Status())
	}

	if err = json.Unmarshal(res.Body(), &session); err != nil {
		return session, fmt.Errorf("%w: decode session: %v", common.ErrSourceUnavailable, err)
	}
	if session.AccessToken == "" {
		return session, fmt.Errorf("%w: empty access token", common.ErrSourceUnavailable)
	}

	return session, nil
}

func (c *client) ListBanks(ctx context.Context, session Session) (banks []RawBank, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return listPaged[RawBank](ctx, c, session, "/banks")
}

func (c *client) ListAccounts(ctx context.Context, session Session) (accounts []RawAccount, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return listPaged[RawAccount](ctx, c, session, "/accounts")
}

func (c *client) ListTransactions(ctx context.Context, session Session, vendorAccountID string) (transactions []RawTransaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	url := fmt.Sprintf("/accounts/%s/transactions", vendorAccountID)
	return listPaged[RawTransaction](ctx, c, session, url)
}

// listPaged walks a limit/offset paged collection until a short page or the
// page-fetch cap. The cap guards against a source that keeps returning full
// pages forever.
func listPaged[T any](ctx context.Context, c *client, session Session, url string) ([]T, error) {
	limit := c.cfg.PageLimit
	if limit <= 0 {
		limit = 200
	}
	maxPages := c.cfg.MaxPageFetch
	if maxPages <= 0 {
		maxPages = 50
	}

	var out []T
	for page := 0; page < maxPages; page++ {
		offset := page * limit

		res, err := c.doWithRetry(ctx, http.MethodGet, url, func(req *resty.Request) *resty.Request {
			return req.
				SetAuthToken(session.AccessToken).
				SetQueryParam("limit", fmt.Sprintf("%d", limit)).
				SetQueryParam("offset", fmt.Sprintf("%d", offset))
		})
		if err != nil {
			return nil, err
		}

		if res.StatusCode() != http.StatusOK {
			return nil, fmt.Errorf("%w: list %s returned %s", common.ErrSourceUnavailable, url, res.Status())
		}

		var body listResponse[T]
		if err = json.Unmarshal(res.Body(), &body); err != nil {
			return nil, fmt.Errorf("%w: decode %s: %v", common.ErrSourceUnavailable, url, err)
		}

		out = append(out, body.Resources...)
		if len(body.Resources) < limit {
			return out, nil
		}
	}

	return out, nil
}

// doWithRetry retries transport errors and 5xx responses with exponential
// backoff. 4xx responses are returned to the caller without retrying.
func (c *client) doWithRetry(ctx context.Context, method, url string, reqFunc func(*resty.Request) *resty.Request) (*resty.Response, error) {
	var res *resty.Response

	err := c.retryer.Retry(ctx, func() error {
		httpRes, reqErr := c.wrapper.DoRequest(ctx, method, url, reqFunc)
		if reqErr != nil {
			return reqErr
		}
		if httpRes.StatusCode() >= http.StatusInternalServerError {
			return fmt.Errorf("vendor returned %s", httpRes.Status())
		}
		res = httpRes
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrSourceUnavailable, err)
	}

	return res, nil
}
