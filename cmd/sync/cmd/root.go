/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"bitbucket.org/Selaras/go-bank-sync/cmd/setup"
	"bitbucket.org/Selaras/go-bank-sync/internal/common"
	"bitbucket.org/Selaras/go-bank-sync/internal/common/graceful"
	xlog "bitbucket.org/Selaras/go-bank-sync/internal/common/log"
	"bitbucket.org/Selaras/go-bank-sync/internal/models"
	"bitbucket.org/Selaras/go-bank-sync/internal/services"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "banksync",
	Short: "Pull accounts and transactions from the banking source and reconcile them with local storage",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(accountsCmd)
	rootCmd.AddCommand(historyCmd)

	runCmd.Flags().StringP(runCmdDate, "d", "", "run date (YYYY-MM-DD), defaults to today")
	runCmd.Flags().StringP(runCmdReportDir, "r", "", "directory for the failure csv report")

	accountsCmd.Flags().StringP(accountsCmdInstitution, "i", "", "filter by institution label")
	accountsCmd.Flags().StringP(accountsCmdType, "t", "", "filter by account type")

	historyCmd.Flags().StringP(historyCmdAccount, "a", "", "storage account id")
	historyCmd.MarkFlagRequired(historyCmdAccount)
	historyCmd.Flags().IntP(historyCmdYear, "y", 0, "calendar year, omit for every year")
}

var (
	runCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run one sync pass against the banking source",
		Long:    ``,
		Example: "banksync run -d=2024-06-15 -r=/var/reports",
		Run:     runSync,
	}
	runCmdDate      = "date"
	runCmdReportDir = "report-dir"
)

func runSync(ccmd *cobra.Command, args []string) {
	var (
		ctx = context.Background()
	)

	date, _ := ccmd.Flags().GetString(runCmdDate)
	reportDir, _ := ccmd.Flags().GetString(runCmdReportDir)

	s, stoppers, err := setup.Init("sync")
	if err != nil {
		graceful.StopProcess(5*time.Second, stoppers...)
		xlog.Fatalf(ctx, "failed to setup app: %v", err)
	}
	defer graceful.StopProcess(s.Config.App.GracefulTimeout, stoppers...)

	opts := services.RunOptions{ReportDir: reportDir}
	if opts.ReportDir == "" {
		opts.ReportDir = s.Config.Sync.ReportDir
	}
	if date != "" {
		runDate, parseErr := time.Parse(common.DateFormatYYYYMMDD, date)
		if parseErr != nil {
			xlog.Fatalf(ctx, "invalid run date %q: %v", date, parseErr)
		}
		opts.RunDate = runDate
	}

	if s.NewRelic != nil {
		txn := s.NewRelic.StartTransaction("sync-run")
		defer txn.End()
		ctx = newrelic.NewContext(ctx, txn)
	}

	report, err := s.Service.Sync.Run(ctx, opts)
	if err != nil {
		xlog.Errorf(ctx, "sync run failed: %v", err)
		os.Exit(1)
	}

	printReport(report)
	xlog.Info(ctx, "sync run stopped!")
}

func printReport(report *models.SyncReport) {
	fmt.Printf("run %s (%s) finished in %s\n",
		report.RunID, report.RunDate.Format(common.DateFormatYYYYMMDD), report.Duration)
	fmt.Printf("accounts:     created=%d updated=%d skipped=%d\n",
		report.Accounts.Created, report.Accounts.Updated, report.Accounts.Skipped)
	fmt.Printf("transactions: created=%d updated=%d skipped=%d\n",
		report.Transactions.Created, report.Transactions.Updated, report.Transactions.Skipped)
	fmt.Printf("balances:     created=%d updated=%d skipped=%d\n",
		report.Balances.Created, report.Balances.Updated, report.Balances.Skipped)

	if report.HasFailures() {
		fmt.Printf("failures: %d\n", len(report.Failures))
		for _, f := range report.Failures {
			fmt.Printf("  kind=%s docType=%s vendorId=%s reason=%s\n", f.Kind, f.DocType, f.VendorID, f.Reason)
		}
	}
}

var (
	accountsCmd = &cobra.Command{
		Use:     "accounts",
		Short:   "List synced accounts",
		Long:    ``,
		Example: "banksync accounts -i=\"Credit Mutuel\"",
		Run:     listAccounts,
	}
	accountsCmdInstitution = "institution"
	accountsCmdType        = "type"
)

func listAccounts(ccmd *cobra.Command, args []string) {
	var (
		ctx = context.Background()
	)

	institution, _ := ccmd.Flags().GetString(accountsCmdInstitution)
	accountType, _ := ccmd.Flags().GetString(accountsCmdType)

	s, stoppers, err := setup.Init("accounts")
	if err != nil {
		graceful.StopProcess(5*time.Second, stoppers...)
		xlog.Fatalf(ctx, "failed to setup app: %v", err)
	}
	defer graceful.StopProcess(s.Config.App.GracefulTimeout, stoppers...)

	accounts, err := s.Service.Account.GetList(ctx, models.AccountFilterOptions{
		InstitutionLabel: institution,
		Type:             accountType,
	})
	if err != nil {
		xlog.Errorf(ctx, "failed to list accounts: %v", err)
		os.Exit(1)
	}

	for _, acc := range accounts {
		fmt.Printf("id=%s vendorId=%s institution=%q label=%q type=%s balance=%s\n",
			acc.ID, acc.VendorID, acc.InstitutionLabel, acc.Label, acc.Type, acc.Balance.String())
	}
}

var (
	historyCmd = &cobra.Command{
		Use:     "history",
		Short:   "Show the daily balance history of one account",
		Long:    ``,
		Example: "banksync history -a={account-id} -y=2024",
		Run:     showHistory,
	}
	historyCmdAccount = "account"
	historyCmdYear    = "year"
)

func showHistory(ccmd *cobra.Command, args []string) {
	var (
		ctx = context.Background()
	)

	accountID, _ := ccmd.Flags().GetString(historyCmdAccount)
	year, _ := ccmd.Flags().GetInt(historyCmdYear)

	s, stoppers, err := setup.Init("history")
	if err != nil {
		graceful.StopProcess(5*time.Second, stoppers...)
		xlog.Fatalf(ctx, "failed to setup app: %v", err)
	}
	defer graceful.StopProcess(s.Config.App.GracefulTimeout, stoppers...)

	docs, err := s.Service.BalanceHistory.GetHistory(ctx, accountID, year)
	if err != nil {
		xlog.Errorf(ctx, "failed to get balance history: %v", err)
		os.Exit(1)
	}

	for _, doc := range docs {
		fmt.Printf("year=%d version=%d\n", doc.Year, doc.Version)

		days := make([]string, 0, len(doc.Balances))
		for day := range doc.Balances {
			days = append(days, day)
		}
		sort.Strings(days)

		for _, day := range days {
			fmt.Printf("  %s %s\n", day, doc.Balances[day].String())
		}
	}
}
