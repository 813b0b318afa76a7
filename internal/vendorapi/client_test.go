package vendorapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"bitbucket.org/Selaras/go-bank-sync/internal/common"
	xlog "bitbucket.org/Selaras/go-bank-sync/internal/common/log"
	"bitbucket.org/Selaras/go-bank-sync/internal/common/retry"
	"bitbucket.org/Selaras/go-bank-sync/internal/config"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	m.Run()
}

func newTestClient(t *testing.T, handler http.Handler, pageLimit int) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	retryer := retry.NewExponentialBackOff(&config.ExponentialBackOffConfig{
		MaxBackoffTime:    1,
		BackoffMultiplier: 1,
		MaxRetries:        2,
	})

	return New(resty.New(), config.Vendor{
		BaseURL:      server.URL,
		PageLimit:    pageLimit,
		MaxPageFetch: 10,
	}, nil, retryer)
}

func TestAuthenticate(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)

		var creds Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))

		if creds.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(Session{AccessToken: "tok-123", UserID: "u-1"})
	})

	c := newTestClient(t, handler, 100)

	session, err := c.Authenticate(context.Background(), Credentials{Email: "a@b.c", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "tok-123", session.AccessToken)

	_, err = c.Authenticate(context.Background(), Credentials{Email: "a@b.c", Password: "wrong"})
	assert.ErrorIs(t, err, common.ErrLoginFailed)
}

func TestListAccounts_Pagination(t *testing.T) {
	// 3 accounts with page limit 2 => two pages
	all := []RawAccount{
		{ID: "A1", BankID: "B1", Label: "Compte courant", Balance: decimal.NewFromInt(100)},
		{ID: "A2", BankID: "B1", Label: "Livret", Balance: decimal.NewFromInt(2500)},
		{ID: "A3", BankID: "B2", Label: "Carte", Balance: decimal.NewFromInt(-42)},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/accounts", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		limit, offset := 0, 0
		fmt.Sscanf(r.URL.Query().Get("limit"), "%d", &limit)
		fmt.Sscanf(r.URL.Query().Get("offset"), "%d", &offset)

		end := offset + limit
		if end > len(all) {
			end = len(all)
		}
		page := []RawAccount{}
		if offset < len(all) {
			page = all[offset:end]
		}

		var body listResponse[RawAccount]
		body.Resources = page
		body.Pagination.Total = len(all)
		_ = json.NewEncoder(w).Encode(body)
	})

	c := newTestClient(t, handler, 2)

	accounts, err := c.ListAccounts(context.Background(), Session{AccessToken: "tok-123"})
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, "A3", accounts[2].ID)
}

func TestListTransactions_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/accounts/A1/transactions", r.URL.Path)

		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		var body listResponse[RawTransaction]
		body.Resources = []RawTransaction{{ID: "T1", AccountID: "A1", Amount: decimal.NewFromFloat(-9.9)}}
		_ = json.NewEncoder(w).Encode(body)
	})

	c := newTestClient(t, handler, 100)

	transactions, err := c.ListTransactions(context.Background(), Session{AccessToken: "tok"}, "A1")
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "T1", transactions[0].ID)
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}

func TestListBanks_UnavailableAfterRetries(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	c := newTestClient(t, handler, 100)

	_, err := c.ListBanks(context.Background(), Session{AccessToken: "tok"})
	assert.ErrorIs(t, err, common.ErrSourceUnavailable)
}
