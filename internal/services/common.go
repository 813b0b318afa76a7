package services

import (
	"errors"

	"bitbucket.org/Selaras/go-bank-sync/internal/common"
	"bitbucket.org/Selaras/go-bank-sync/internal/models"
)

func checkDatabaseError(err error, code ...string) error {
	if errors.Is(err, common.ErrNoRows) || errors.Is(err, common.ErrDataNotFound) {
		err = models.GetErrMap(models.ErrKeyDataNotFound)
		if len(code) > 0 {
			err = models.GetErrMap(code[0])
		}
	} else {
		err = models.GetErrMap(models.ErrKeyDatabaseError, err.Error())
	}

	return err
}

// findDuplicateVendorID returns the first vendor id appearing more than once.
func findDuplicateVendorID(vendorIDs []string) (string, bool) {
	seen := make(map[string]struct{}, len(vendorIDs))
	for _, id := range vendorIDs {
		if _, ok := seen[id]; ok {
			return id, true
		}
		seen[id] = struct{}{}
	}
	return "", false
}
