package renderer

import (
	"github.com/belreon/backoffice"
)

// Statement renders one financial statement with its active entries and
// the totals the dashboard shows under the table.
func Statement(s *backoffice.Store, kind backoffice.StatementKind) string {
	r := newRenderer()
	ledger := s.Ledger()

	switch kind {
	case backoffice.ProfitAndLoss:
		r.Printf("# Profit & Loss Statement\n\n")
	case backoffice.BalanceSheet:
		r.Printf("# Balance Sheet\n\n")
	}

	r.Printf("| Date | Account | Description | Category | Amount |\n")
	r.Printf("|:---|:---|:---|:---|---:|\n")
	empty := true
	for e := range ledger.Statement(kind) {
		empty = false
		r.Printf("| %s | %s | %s | %s | %s |\n",
			e.Date, cell(e.Account), cell(e.Description), e.Category, e.Amount)
	}
	if empty {
		r.Printf("| - | - | - | - | - |\n")
	}
	r.Printf("\n")

	switch kind {
	case backoffice.ProfitAndLoss:
		r.Printf("- Total Revenue: %s\n", ledger.TotalRevenue())
		r.Printf("- Total Expenses: %s\n", ledger.TotalExpenses())
		r.Printf("- Net Profit: %s\n", ledger.NetProfit())
	case backoffice.BalanceSheet:
		r.Printf("- Total Assets: %s\n", ledger.TotalAssets())
		r.Printf("- Total Liabilities: %s\n", ledger.TotalLiabilities())
	}
	return r.String()
}

// Transaction renders every entry sharing one transaction id, across
// both statements.
func Transaction(s *backoffice.Store, txnID string) string {
	r := newRenderer()
	entries := s.Ledger().Transaction(txnID)
	r.Printf("# Transaction %s\n\n", txnID)
	if len(entries) == 0 {
		r.Printf("No entries found.\n")
		return r.String()
	}
	r.Printf("| Statement | Date | Account | Category | Amount |\n")
	r.Printf("|:---|:---|:---|:---|---:|\n")
	for _, e := range entries {
		r.Printf("| %s | %s | %s | %s | %s |\n",
			e.Category.Statement(), e.Date, cell(e.Account), e.Category, e.Amount)
	}
	return r.String()
}

// Accounts renders the chart of accounts together with the running
// balance of every account that appears in the ledger.
func Accounts(s *backoffice.Store) string {
	r := newRenderer()
	ledger := s.Ledger()
	coa := s.ChartOfAccounts()

	r.Printf("# Chart of Accounts\n\n")
	section := func(title string, names []string) {
		r.Printf("## %s\n\n", title)
		for _, name := range names {
			r.Printf("- %s: %s\n", name, ledger.AccountBalance(name))
		}
		r.Printf("\n")
	}
	section("Revenue", coa.Revenue)
	section("Expenses", coa.Expenses)
	section("Assets", coa.Assets)
	section("Liabilities", coa.Liabilities)
	section("Equity", coa.Equity)
	return r.String()
}
