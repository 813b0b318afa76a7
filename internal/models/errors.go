package models

import (
	"errors"
	"fmt"
)

type (
	MapErrs     map[string]ErrorDetail
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

func GetErrMap(code string, args ...string) ErrorDetail {
	v, ok := MapErrors[code]
	if !ok {
		return ErrorDetail{
			Code:         code,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(args) > 0 {
		v.ErrorMessage = fmt.Errorf("%s caused by %s", v.ErrorMessage, args[0])
	}

	return v
}

const (
	ErrKeyDataNotFound          = "ErrKeyDataNotFound"
	ErrKeyDatabaseError         = "ErrKeyDatabaseError"
	ErrKeyAuthenticationFailed  = "ErrKeyAuthenticationFailed"
	ErrKeySourceUnavailable     = "ErrKeySourceUnavailable"
	ErrKeyOrphanReference       = "ErrKeyOrphanReference"
	ErrKeyDuplicateVendorID     = "ErrKeyDuplicateVendorID"
	ErrKeyPersistenceConflict   = "ErrKeyPersistenceConflict"
	ErrKeyAccountNotFound       = "ErrKeyAccountNotFound"
	ErrKeyBalanceHistoryInvalid = "ErrKeyBalanceHistoryInvalid"
)

var MapErrors = MapErrs{
	ErrKeyDataNotFound: {
		Code:         "BS-0404",
		ErrorMessage: errors.New("data not found"),
	},
	ErrKeyDatabaseError: {
		Code:         "BS-0500",
		ErrorMessage: errors.New("database error"),
	},
	ErrKeyAuthenticationFailed: {
		Code:         "BS-1401",
		ErrorMessage: errors.New("vendor rejected the credentials"),
	},
	ErrKeySourceUnavailable: {
		Code:         "BS-1503",
		ErrorMessage: errors.New("vendor source unavailable"),
	},
	ErrKeyOrphanReference: {
		Code:         "BS-2001",
		ErrorMessage: errors.New("transaction references an unknown account"),
	},
	ErrKeyDuplicateVendorID: {
		Code:         "BS-2002",
		ErrorMessage: errors.New("duplicate vendor id within one batch"),
	},
	ErrKeyPersistenceConflict: {
		Code:         "BS-2003",
		ErrorMessage: errors.New("persistence sink rejected the write"),
	},
	ErrKeyAccountNotFound: {
		Code:         "BS-2404",
		ErrorMessage: errors.New("account not found"),
	},
	ErrKeyBalanceHistoryInvalid: {
		Code:         "BS-2005",
		ErrorMessage: errors.New("balance history document invalid"),
	},
}
