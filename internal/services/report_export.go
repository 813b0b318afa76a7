package services

import (
	"fmt"
	"os"
	"path/filepath"

	"bitbucket.org/Selaras/go-bank-sync/internal/common"
	"bitbucket.org/Selaras/go-bank-sync/internal/models"

	"github.com/gocarina/gocsv"
)

// exportFailures writes the run's per-record failures as CSV into dir and
// returns the file path.
func exportFailures(report *models.SyncReport, dir string) (string, error) {
	name := fmt.Sprintf("sync-failures-%s-%s.csv",
		report.RunDate.Format(common.DateFormatYYYYMMDD), report.RunID)
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err = gocsv.MarshalFile(&report.Failures, f); err != nil {
		return "", fmt.Errorf("write report file: %w", err)
	}

	return path, nil
}
