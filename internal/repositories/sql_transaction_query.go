package repositories

import (
	"bitbucket.org/Selaras/go-bank-sync/internal/models"

	sq "github.com/Masterminds/squirrel"
)

// query to transaction table
var (
	// dateImport is intentionally absent from the DO UPDATE SET list: it marks
	// the first successful import and must never move afterwards.
	queryTransactionUpsert = `
		INSERT INTO "transaction"(
			"id", "vendorId", "vendorAccountId", "accountId", "date", "dateOperation", "dateImport",
			"label", "originalLabel", "amount", "currency", "automaticCategoryId", "type", "createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now(), now()
		) ON CONFLICT ("vendorId") DO UPDATE SET
			"accountId" = EXCLUDED."accountId", "date" = EXCLUDED."date",
			"dateOperation" = EXCLUDED."dateOperation", "label" = EXCLUDED."label",
			"originalLabel" = EXCLUDED."originalLabel", "amount" = EXCLUDED."amount",
			"currency" = EXCLUDED."currency", "automaticCategoryId" = EXCLUDED."automaticCategoryId",
			"type" = EXCLUDED."type", "updatedAt" = now();
`

	queryTransactionGetAllByVendorIDs = `
		SELECT
			"id", "vendorId", "vendorAccountId", "accountId", "date", "dateOperation", "dateImport",
			"label", "originalLabel", "amount", "currency", "automaticCategoryId", "type"
		FROM "transaction"
		WHERE "vendorId" = ANY($1);`
)

func buildListTransactionQuery(opts models.TransactionFilterOptions) (string, []any, error) {
	builder := sq.Select(
		`"id"`, `"vendorId"`, `"vendorAccountId"`, `"accountId"`, `"date"`, `"dateOperation"`, `"dateImport"`,
		`"label"`, `"originalLabel"`, `"amount"`, `"currency"`, `"automaticCategoryId"`, `"type"`,
	).From(`"transaction"`).PlaceholderFormat(sq.Dollar)

	if opts.AccountID != "" {
		builder = builder.Where(sq.Eq{`"accountId"`: opts.AccountID})
	}

	if opts.DateFrom != nil {
		builder = builder.Where(sq.GtOrEq{`"date"`: *opts.DateFrom})
	}

	if opts.DateTo != nil {
		builder = builder.Where(sq.LtOrEq{`"date"`: *opts.DateTo})
	}

	builder = builder.OrderBy(`"date" DESC`)

	if opts.Limit > 0 {
		builder = builder.Limit(opts.Limit)
	}

	return builder.ToSql()
}
