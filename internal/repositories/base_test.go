package repositories

import (
	"os"
	"testing"

	xlog "bitbucket.org/Selaras/go-bank-sync/internal/common/log"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}
