package repositories

import (
	"bitbucket.org/Selaras/go-bank-sync/internal/models"

	sq "github.com/Masterminds/squirrel"
)

// query to account table
var (
	queryAccountUpsert = `
		INSERT INTO account(
			"id", "vendorId", "label", "institutionLabel", "type", "number", "balance", "createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, now(), now()
		) ON CONFLICT ("vendorId") DO UPDATE SET
			"label" = EXCLUDED."label", "institutionLabel" = EXCLUDED."institutionLabel",
			"type" = EXCLUDED."type", "number" = EXCLUDED."number",
			"balance" = EXCLUDED."balance", "updatedAt" = now();
`

	queryAccountGetAllByVendorIDs = `
		SELECT
			"id", "vendorId", "label", "institutionLabel", "type", "number", "balance", "createdAt", "updatedAt"
		FROM "account"
		WHERE "vendorId" = ANY($1);`

	queryAccountGetOneByID = `
		SELECT
			"id", "vendorId", "label", "institutionLabel", "type", "number", "balance", "createdAt", "updatedAt"
		FROM "account"
		WHERE "id" = $1;`
)

func buildListAccountQuery(opts models.AccountFilterOptions) (string, []any, error) {
	builder := sq.Select(
		`"id"`, `"vendorId"`, `"label"`, `"institutionLabel"`, `"type"`, `"number"`, `"balance"`, `"createdAt"`, `"updatedAt"`,
	).From(`"account"`).PlaceholderFormat(sq.Dollar)

	if len(opts.VendorIDs) > 0 {
		builder = builder.Where(sq.Eq{`"vendorId"`: opts.VendorIDs})
	}

	if opts.InstitutionLabel != "" {
		builder = builder.Where(sq.Eq{`"institutionLabel"`: opts.InstitutionLabel})
	}

	if opts.Type != "" {
		builder = builder.Where(sq.Eq{`"type"`: opts.Type})
	}

	builder = builder.OrderBy(`"label" ASC`)

	return builder.ToSql()
}
