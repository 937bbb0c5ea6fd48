package render

import (
	"fmt"
	"math"

	"github.com/fin-tools/pocket-ledger/pkg/models/domain"
)

// cardKind keys a summary card's color semantics: positive amounts are
// green, negative/expense amounts red, informational figures navy and
// ratio figures orange. The same semantics drive cell colors in the
// spreadsheet renderer.
type cardKind int

const (
	kindPositive cardKind = iota
	kindNegative
	kindNeutral
	kindRatio
)

type card struct {
	Label   string
	Value   string
	Subtext string
	Kind    cardKind
}

type table struct {
	Title   string
	Headers []string
	// Ratios are proportional column widths summing to 1.0; only the PDF
	// renderer consumes them.
	Ratios []float64
	Rows   [][]string
	// EmptyNote is rendered in place of the table body when there are no
	// rows. Tables with an empty EmptyNote are omitted entirely instead.
	EmptyNote string
}

// sections is the renderer-independent content of a report: the same
// titles, labels and formatted values feed the PDF cards/tables, the
// worksheet row blocks and the CSV rows, which keeps the three formats
// numerically identical by construction.
type sections struct {
	Title  string
	Period string
	Cards  []card
	Tables []table
}

// buildSections is the single exhaustive mapping from the closed set of
// report shapes to renderable content.
func buildSections(data domain.ReportData) (sections, error) {
	switch d := data.(type) {
	case domain.MonthlyReport:
		return monthlySections(d), nil
	case domain.DateRangeReport:
		return dateRangeSections(d), nil
	case domain.BudgetReport:
		return budgetSections(d), nil
	case domain.FullAccountReport:
		return fullAccountSections(d), nil
	default:
		return sections{}, fmt.Errorf("unknown report data type %T", data)
	}
}

func savingsKind(savings float64) cardKind {
	if savings < 0 {
		return kindNegative
	}
	return kindPositive
}

func monthlySections(d domain.MonthlyReport) sections {
	subtext := "Positive"
	if d.Savings < 0 {
		subtext = "Deficit"
	}

	s := sections{
		Title:  "Monthly Report",
		Period: d.Period,
		Cards: []card{
			{Label: "Income", Value: money(d.TotalIncome), Kind: kindPositive},
			{Label: "Expense", Value: money(d.TotalExpense), Kind: kindNegative},
			{Label: "Savings", Value: money(d.Savings), Subtext: subtext, Kind: kindNeutral},
			{Label: "Savings Ratio", Value: percent(d.Savings, d.TotalIncome, 1), Kind: kindRatio},
		},
	}

	comparison := table{
		Title:   "Income vs Expense",
		Headers: []string{"Type", "Amount", "Percentage"},
		Ratios:  []float64{0.4, 0.3, 0.3},
		Rows: [][]string{
			{"Income", money(d.TotalIncome), percent(d.TotalIncome, d.TotalIncome, 1)},
			{"Expense", money(d.TotalExpense), percent(d.TotalExpense, d.TotalIncome, 1)},
			{"Savings", money(d.Savings), percent(d.Savings, d.TotalIncome, 1)},
		},
	}

	breakdown := table{
		Title:     "Category Breakdown",
		Headers:   []string{"Category", "Amount", "% of Total Expense"},
		Ratios:    []float64{0.5, 0.25, 0.25},
		EmptyNote: "No expense data for this period.",
	}
	for _, c := range d.Categories {
		breakdown.Rows = append(breakdown.Rows, []string{
			c.Name, money(c.Amount), percent(c.Amount, d.TotalExpense, 2),
		})
	}

	s.Tables = []table{comparison, breakdown}
	return s
}

func dateRangeSections(d domain.DateRangeReport) sections {
	s := sections{
		Title:  "Date Range Report",
		Period: d.Period,
		Cards: []card{
			{Label: "Total Income", Value: money(d.TotalIncome), Kind: kindPositive},
			{Label: "Total Expenses", Value: money(d.TotalExpense), Kind: kindNegative},
			{Label: "Net Change", Value: money(d.Savings), Kind: savingsKind(d.Savings)},
			{
				Label:   "Transactions",
				Value:   fmt.Sprintf("%d", d.TransactionCount),
				Subtext: fmt.Sprintf("%d income, %d expenses", d.IncomeCount, d.ExpenseCount),
				Kind:    kindNeutral,
			},
		},
	}

	list := table{
		Title:     "Transactions",
		Headers:   []string{"Date", "Type", "Category", "Amount"},
		Ratios:    []float64{0.25, 0.2, 0.3, 0.25},
		EmptyNote: "No transactions in this period.",
	}
	for _, tx := range d.Transactions {
		list.Rows = append(list.Rows, []string{
			formatDate(tx.Date),
			tx.Type,
			truncate(orDefault(tx.Category, "Other"), 15),
			money(tx.Amount),
		})
	}

	s.Tables = []table{list}
	return s
}

func budgetSections(d domain.BudgetReport) sections {
	remainingCard := card{
		Label:   "Remaining",
		Value:   money(d.Remaining),
		Subtext: "Safe",
		Kind:    kindPositive,
	}
	remainingLabel := "Remaining"
	if d.Exceeded {
		remainingLabel = "Overspent"
		remainingCard = card{
			Label:   "Overspent",
			Value:   money(math.Abs(d.Remaining)),
			Subtext: "EXCEEDED",
			Kind:    kindNegative,
		}
	}

	s := sections{
		Title:  "Budget Report",
		Period: d.Period,
		Cards: []card{
			{Label: "Fixed Budget", Value: money(d.MonthlyBudget), Kind: kindNeutral},
			{Label: "Amount Spent", Value: money(d.TotalSpent), Kind: kindNegative},
			remainingCard,
			{Label: "Budget Usage", Value: d.PercentageUsed + "%", Kind: kindRatio},
		},
	}

	status := table{
		Title:   "Budget Status",
		Headers: []string{"Item", "Amount"},
		Ratios:  []float64{0.6, 0.4},
		Rows: [][]string{
			{"Monthly Budget", money(d.MonthlyBudget)},
			{"Total Spent", money(d.TotalSpent)},
			{remainingLabel, money(math.Abs(d.Remaining))},
			{"Total Income", money(d.TotalIncome)},
			{"Savings (Income - Spent)", money(d.Savings)},
		},
	}
	s.Tables = append(s.Tables, status)

	if d.Exceeded {
		overspent := math.Abs(d.Remaining)
		target := d.MonthlyBudget - overspent
		s.Tables = append(s.Tables, table{
			Title:   "Recovery Plan",
			Headers: []string{"Item", "Value"},
			Ratios:  []float64{0.4, 0.6},
			Rows: [][]string{
				{"Overspent Amount", money(overspent)},
				{"Next Month's Fixed Budget", money(d.MonthlyBudget)},
				{"Extra Savings Required", money(overspent)},
				{"Extra Savings % of Budget", percent(overspent, d.MonthlyBudget, 2)},
				{"Target Spending", money(target)},
				{"Strategy", fmt.Sprintf("Save an extra %s next month by capping spending at %s.",
					money(overspent), money(target))},
			},
		})
	}

	breakdown := table{
		Title:     "Category Breakdown",
		Headers:   []string{"Category", "Amount", "% of Total Spent"},
		Ratios:    []float64{0.5, 0.25, 0.25},
		EmptyNote: "No expense data for this period.",
	}
	for _, c := range d.Categories {
		breakdown.Rows = append(breakdown.Rows, []string{
			c.Name, money(c.Amount), percent(c.Amount, d.TotalSpent, 2),
		})
	}
	s.Tables = append(s.Tables, breakdown)

	return s
}

func fullAccountSections(d domain.FullAccountReport) sections {
	period := "All Time"
	if d.From != nil && d.To != nil {
		period = fmt.Sprintf("%s to %s", formatDate(*d.From), formatDate(*d.To))
	}

	s := sections{
		Title:  "Full Account Report",
		Period: period,
		Cards: []card{
			{Label: "Accounts", Value: fmt.Sprintf("%d", d.AccountCount), Kind: kindNeutral},
			{Label: "Total Balance", Value: money(d.TotalBalance), Kind: kindPositive},
			{Label: "Total Income", Value: money(d.TotalIncome), Kind: kindPositive},
			{Label: "Total Expense", Value: money(d.TotalExpense), Kind: kindNegative},
		},
	}

	s.Tables = append(s.Tables, table{
		Title:   "Financial Summary",
		Headers: []string{"Item", "Value"},
		Ratios:  []float64{0.6, 0.4},
		Rows: [][]string{
			{"Total Income", money(d.TotalIncome)},
			{"Total Expense", money(d.TotalExpense)},
			{"Net Balance", money(d.NetBalance)},
			{"Total Budget Allotted", money(d.TotalBudgetAllotted)},
		},
	})

	// Every remaining table is emitted only when its source list has
	// entries; an empty list must not leave a dangling section header.
	if len(d.Accounts) > 0 {
		accounts := table{
			Title:   "Accounts",
			Headers: []string{"Account", "Balance", "% of Total"},
			Ratios:  []float64{0.5, 0.25, 0.25},
		}
		for _, a := range d.Accounts {
			accounts.Rows = append(accounts.Rows, []string{
				a.Name, money(a.Balance), percent(a.Balance, d.TotalBalance, 1),
			})
		}
		s.Tables = append(s.Tables, accounts)
	}

	if len(d.Categories) > 0 {
		cats := table{
			Title:   "Category Summary",
			Headers: []string{"Category", "Amount", "% of Total Expense"},
			Ratios:  []float64{0.5, 0.25, 0.25},
		}
		for _, c := range d.Categories {
			cats.Rows = append(cats.Rows, []string{
				c.Name, money(c.Amount), percent(c.Amount, d.TotalExpense, 2),
			})
		}
		s.Tables = append(s.Tables, cats)
	}

	if len(d.Reminders) > 0 {
		reminders := table{
			Title:   "Reminders",
			Headers: []string{"Title", "Amount", "Due Date", "Status"},
			Ratios:  []float64{0.4, 0.2, 0.2, 0.2},
		}
		for i, r := range d.Reminders {
			if i >= 10 {
				break
			}
			due := "N/A"
			if r.DueDate != nil {
				due = formatDate(*r.DueDate)
			}
			reminders.Rows = append(reminders.Rows, []string{
				orDefault(r.Title, "Unnamed"),
				money(r.Amount),
				due,
				orDefault(r.Status, "Pending"),
			})
		}
		s.Tables = append(s.Tables, reminders)
	}

	if len(d.Budgets) > 0 {
		budgets := table{
			Title:   "Budgets",
			Headers: []string{"Period", "Amount", "Status"},
			Ratios:  []float64{0.4, 0.3, 0.3},
		}
		for i, b := range d.Budgets {
			if i >= 12 {
				break
			}
			budgets.Rows = append(budgets.Rows, []string{
				fmt.Sprintf("%s %d", monthName(b.Month), b.Year),
				money(b.Amount),
				orDefault(b.Status, "Active"),
			})
		}
		s.Tables = append(s.Tables, budgets)
	}

	if len(d.Transactions) > 0 {
		history := table{
			Title:   "Transaction History",
			Headers: []string{"Date", "Type", "Category", "Account", "Amount"},
			Ratios:  []float64{0.2, 0.15, 0.25, 0.2, 0.2},
		}
		for _, tx := range d.Transactions {
			history.Rows = append(history.Rows, []string{
				formatDate(tx.Date),
				tx.Type,
				orDefault(tx.Category, "Other"),
				tx.Account,
				money(tx.Amount),
			})
		}
		s.Tables = append(s.Tables, history)
	}

	return s
}
