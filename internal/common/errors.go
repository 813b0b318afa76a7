package common

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNoRowsAffected      = errors.New("no rows affected")
	ErrValidation          = errors.New("validation failed")
	ErrDataNotFound        = errors.New("data not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrInvalidFormatDate   = errors.New("invalid format date")

	ErrLoginFailed       = errors.New("vendor rejected the credentials")
	ErrSourceUnavailable = errors.New("vendor source unavailable")
	ErrOrphanReference   = errors.New("transaction references an unknown account")
	ErrDuplicateVendorID = errors.New("duplicate vendor id in batch")
	ErrPersistenceError  = errors.New("persistence sink rejected the write")

	ErrBankNotFound    = errors.New("bank not found in directory")
	ErrAccountNotFound = errors.New("account not found")

	ErrNoRows = sql.ErrNoRows
)

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}
