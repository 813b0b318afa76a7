package vendorapi

import (
	"github.com/shopspring/decimal"
)

type (
	// Credentials authenticates one sync run against the aggregation source.
	Credentials struct {
		ClientID string `json:"client_id,omitempty"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	// Session carries the access token returned by Authenticate. It is valid
	// for the duration of one run and never persisted.
	Session struct {
		AccessToken string `json:"access_token"`
		UserID      string `json:"user_id"`
	}

	RawBank struct {
		ID    string `json:"id"`
		Label string `json:"name"`
	}

	RawAccount struct {
		ID      string          `json:"id"`
		BankID  string          `json:"bank_id"`
		Label   string          `json:"name"`
		Type    string          `json:"type"`
		Number  string          `json:"number"`
		Balance decimal.Decimal `json:"balance"`
	}

	RawTransaction struct {
		ID            string          `json:"id"`
		AccountID     string          `json:"account_id"`
		Date          string          `json:"date"`
		DateOperation string          `json:"date_operation"`
		Label         string          `json:"name"`
		OriginalLabel string          `json:"raw_name"`
		Amount        decimal.Decimal `json:"amount"`
		Currency      string          `json:"currency_code"`
		CategoryID    string          `json:"category_id"`
		Type          string          `json:"type"`
	}

	listResponse[T any] struct {
		Resources  []T `json:"resources"`
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
	}
)
