package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/fin-tools/pocket-ledger/pkg/models/domain"
)

type TableConfig struct {
	NameWidth   int
	AmountWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:   32,
		AmountWidth: 16,
	}
}

// Reporter prints a plain-text summary of a report to the terminal.
// File downloads go through the document renderers; this is the quick
// look for CLI users who do not want to open a file.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

type summaryLine struct {
	Label string
	Value string
}

type summaryView struct {
	Title      string
	Period     string
	Lines      []summaryLine
	Categories []domain.CategoryTotal
}

func (c *Reporter) Handle(data domain.ReportData) error {
	funcMap := template.FuncMap{
		"formatRow": func(name string, amount float64) string {
			return fmt.Sprintf("| %-*s | %*s |",
				c.config.NameWidth, name,
				c.config.AmountWidth, fmt.Sprintf("%.2f", amount))
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.AmountWidth+2))
		},
	}

	tmpl := `
{{.Title}}
Period: {{.Period}}

{{range .Lines}}{{.Label}}: {{.Value}}
{{end}}{{if .Categories}}
{{separator}}
| {{printf "%-32s" "Category"}} | {{printf "%16s" "Amount"}} |
{{separator}}
{{range .Categories}}{{formatRow .Name .Amount}}
{{end}}{{separator}}
{{end}}`

	t, err := template.New("summary").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, buildView(data))
}

func buildView(data domain.ReportData) summaryView {
	money := func(v float64) string { return fmt.Sprintf("$%.2f", v) }

	switch d := data.(type) {
	case domain.MonthlyReport:
		lines := []summaryLine{
			{Label: "Total Income", Value: money(d.TotalIncome)},
			{Label: "Total Expense", Value: money(d.TotalExpense)},
			{Label: "Savings", Value: money(d.Savings)},
			{Label: "Transactions", Value: fmt.Sprint(d.TransactionCount)},
		}
		if d.HighestCategory != "" {
			lines = append(lines, summaryLine{
				Label: "Highest Spending",
				Value: fmt.Sprintf("%s (%s)", d.HighestCategory, money(d.HighestAmount)),
			})
		}
		return summaryView{Title: "Monthly Report", Period: d.Period, Lines: lines, Categories: d.Categories}
	case domain.DateRangeReport:
		return summaryView{
			Title:  "Date Range Report",
			Period: d.Period,
			Lines: []summaryLine{
				{Label: "Total Income", Value: money(d.TotalIncome)},
				{Label: "Total Expense", Value: money(d.TotalExpense)},
				{Label: "Net Change", Value: money(d.Savings)},
				{Label: "Transactions", Value: fmt.Sprintf("%d (%d income, %d expenses)",
					d.TransactionCount, d.IncomeCount, d.ExpenseCount)},
			},
		}
	case domain.BudgetReport:
		status := "Within Budget"
		if d.Exceeded {
			status = "EXCEEDED"
		}
		return summaryView{
			Title:  "Budget Report",
			Period: d.Period,
			Lines: []summaryLine{
				{Label: "Monthly Budget", Value: money(d.MonthlyBudget)},
				{Label: "Total Spent", Value: money(d.TotalSpent)},
				{Label: "Remaining", Value: money(d.Remaining)},
				{Label: "Budget Used", Value: d.PercentageUsed + "%"},
				{Label: "Status", Value: status},
			},
			Categories: d.Categories,
		}
	case domain.FullAccountReport:
		period := "All Time"
		if d.From != nil && d.To != nil {
			period = fmt.Sprintf("%s to %s", d.From.Format("2006-01-02"), d.To.Format("2006-01-02"))
		}
		return summaryView{
			Title:  "Full Account Report",
			Period: period,
			Lines: []summaryLine{
				{Label: "Accounts", Value: fmt.Sprint(d.AccountCount)},
				{Label: "Total Balance", Value: money(d.TotalBalance)},
				{Label: "Total Income", Value: money(d.TotalIncome)},
				{Label: "Total Expense", Value: money(d.TotalExpense)},
				{Label: "Net Balance", Value: money(d.NetBalance)},
				{Label: "Transactions", Value: fmt.Sprint(d.TransactionCount)},
			},
			Categories: d.Categories,
		}
	default:
		return summaryView{Title: "Report"}
	}
}
