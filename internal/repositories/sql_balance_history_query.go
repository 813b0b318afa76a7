package repositories

// query to balance_history table
var (
	queryBalanceHistoryGetByYearAndAccount = `
		SELECT
			"id", "year", "accountId", "balances", "version"
		FROM "balance_history"
		WHERE "year" = $1 AND "accountId" = $2
		ORDER BY "createdAt" ASC
		LIMIT 1;`

	queryBalanceHistoryGetAllByAccount = `
		SELECT
			"id", "year", "accountId", "balances", "version"
		FROM "balance_history"
		WHERE "accountId" = $1
		ORDER BY "year" ASC;`

	queryBalanceHistoryUpsert = `
		INSERT INTO balance_history(
			"id", "year", "accountId", "balances", "version", "createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, $3, $4, $5, now(), now()
		) ON CONFLICT ("id") DO UPDATE SET
			"balances" = EXCLUDED."balances", "version" = EXCLUDED."version", "updatedAt" = now();
`
)
