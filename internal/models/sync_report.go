package models

import (
	"time"
)

// Failure kinds collected during a run. Per-record failures never abort the
// run; every skipped record must appear in the report.
const (
	FailureKindOrphanReference     = "orphan_reference"
	FailureKindPersistenceConflict = "persistence_conflict"
	FailureKindBalanceMerge        = "balance_merge"
	FailureKindNormalize           = "normalize"
)

// Document types used in the report and metrics labels.
const (
	DocTypeAccount        = "account"
	DocTypeTransaction    = "transaction"
	DocTypeBalanceHistory = "balance_history"
)

// RecordFailure describes a single record that was skipped or rejected.
// The csv tags drive the exported failure report.
type RecordFailure struct {
	Kind     string `csv:"kind"`
	DocType  string `csv:"doc_type"`
	VendorID string `csv:"vendor_id"`
	Reason   string `csv:"reason"`
}

type SyncCounts struct {
	Found   int
	Created int
	Updated int
	Skipped int
}

// SyncReport is the best-effort result of one sync run.
type SyncReport struct {
	RunID     string
	RunDate   time.Time
	StartedAt time.Time
	Duration  time.Duration

	Accounts     SyncCounts
	Transactions SyncCounts
	Balances     SyncCounts

	Failures []RecordFailure
}

func NewSyncReport(runID string, runDate, startedAt time.Time) *SyncReport {
	return &SyncReport{
		RunID:     runID,
		RunDate:   runDate,
		StartedAt: startedAt,
	}
}

func (r *SyncReport) AddFailure(kind, docType, vendorID string, err error) {
	reason := ""
	if err != nil {
		reason = err.Error()
	}
	r.Failures = append(r.Failures, RecordFailure{
		Kind:     kind,
		DocType:  docType,
		VendorID: vendorID,
		Reason:   reason,
	})
}

func (r *SyncReport) HasFailures() bool {
	return len(r.Failures) > 0
}
