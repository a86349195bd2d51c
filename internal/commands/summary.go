package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/trifold-dev/trifold/internal/metrics"
	"github.com/trifold-dev/trifold/internal/model"
)

func newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the selected month's budget figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := openStore(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			ledger := store.CurrentLedger()
			folders := store.State().Folders
			report := metrics.Compute(ledger, folders)
			currency := cfg.Display.Currency

			fmt.Fprintf(out, "Month %s\n\n", store.Month())

			overview := newTable(out)
			overview.SetColumnConfigs(rightAligned(2))
			overview.AppendRow(table.Row{"Income", money(report.IncomeTotal, currency)})
			overview.AppendRow(table.Row{"Expenses", money(report.ExpenseTotal, currency)})
			overview.AppendRow(table.Row{"Net", money(report.Net, currency)})
			overview.AppendRow(table.Row{"Desired income", money(report.DesiredIncome, currency)})
			overview.AppendRow(table.Row{"Shortfall", money(report.DesiredDelta, currency)})
			overview.AppendRow(table.Row{"Auto-saving", money(metrics.AutoSaving(folders, report.IncomeTotal), currency)})
			overview.Render()
			fmt.Fprintln(out)

			byFolder := newTable(out)
			byFolder.AppendHeader(table.Row{"Folder", "Target %", "Target", "Actual", "Coverage"})
			byFolder.SetColumnConfigs(rightAligned(2, 3, 4, 5))
			for _, f := range model.AllFolders {
				byFolder.AppendRow(table.Row{
					string(f),
					percent(folders.Percent(f)),
					money(report.TargetByFolder[f], currency),
					money(report.ByFolder[f], currency),
					percent(report.Coverage[f]),
				})
			}
			byFolder.Render()
			fmt.Fprintln(out)

			fund := metrics.EmergencyFund(ledger.Expenses)
			emergency := newTable(out)
			emergency.AppendHeader(table.Row{"Emergency fund", "Amount"})
			emergency.SetColumnConfigs(rightAligned(2))
			emergency.AppendRow(table.Row{"Fixed monthly", money(fund.FixedMonthly, currency)})
			emergency.AppendRow(table.Row{"1 month", money(fund.OneMonth, currency)})
			emergency.AppendRow(table.Row{"3 months", money(fund.ThreeMonths, currency)})
			emergency.AppendRow(table.Row{"6 months", money(fund.SixMonths, currency)})
			emergency.Render()

			spenders := metrics.TopSpenders(ledger.Expenses, cfg.Display.TopSpenders)
			if len(spenders) > 0 {
				fmt.Fprintln(out)
				top := newTable(out)
				top.AppendHeader(table.Row{"Top spenders", "Amount"})
				top.SetColumnConfigs(rightAligned(2))
				for _, g := range spenders {
					top.AppendRow(table.Row{g.Key, money(g.Total, currency)})
				}
				top.Render()
			}
			return nil
		},
	}
}
