package domain

import "time"

// ReportData is the closed set of shapes the report renderers accept.
// Each renderer type-switches over the four concrete types; adding a
// report type means touching every switch, which is intentional.
type ReportData interface {
	isReportData()
}

// CategoryTotal is one category's summed expense amount. Category lists
// are always ordered descending by amount, ties keeping first-seen order.
type CategoryTotal struct {
	Name   string
	Amount float64
}

// DayTotal holds one day-of-month's income/expense totals.
// Day is zero-padded ("01".."31"); slices are ordered ascending by day.
type DayTotal struct {
	Day     string
	Income  float64
	Expense float64
}

type MonthlyReport struct {
	Period           string // e.g. "February 2026"
	Month            int
	Year             int
	TotalIncome      float64
	TotalExpense     float64
	Savings          float64
	Categories       []CategoryTotal
	HighestCategory  string
	HighestAmount    float64
	TransactionCount int
	DayTotals        []DayTotal
	Transactions     []Transaction // descending by date
}

type DateRangeReport struct {
	Period           string
	From             time.Time // start of day
	To               time.Time // end of day
	TotalIncome      float64
	TotalExpense     float64
	Savings          float64
	TransactionCount int
	IncomeCount      int
	ExpenseCount     int
	Transactions     []Transaction
}

type BudgetReport struct {
	Period        string
	Month         int
	Year          int
	TotalIncome   float64
	TotalSpent    float64
	Savings       float64
	MonthlyBudget float64 // 0 when no budget record exists
	Remaining     float64 // budget - spent, may be negative
	Exceeded      bool
	// PercentageUsed is a pre-formatted string with 2 decimals, "0" when
	// the budget amount is 0. Kept as a string deliberately; see the
	// numeric fields for raw values.
	PercentageUsed string
	Categories     []CategoryTotal
	Expenses       []Transaction
	Incomes        []Transaction
	Transactions   []Transaction
}

type FullAccountReport struct {
	UserName            string
	AccountCount        int
	TotalBalance        float64
	TotalIncome         float64
	TotalExpense        float64
	NetBalance          float64
	TransactionCount    int
	ReminderCount       int
	BudgetCount         int
	TotalBudgetAllotted float64
	Categories          []CategoryTotal // top 10 by expense
	Accounts            []Account
	Transactions        []Transaction
	Reminders           []Reminder
	Budgets             []Budget
	GeneratedAt         time.Time
	From                *time.Time
	To                  *time.Time
}

func (MonthlyReport) isReportData()     {}
func (DateRangeReport) isReportData()   {}
func (BudgetReport) isReportData()      {}
func (FullAccountReport) isReportData() {}
