package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fin-tools/pocket-ledger/pkg/adapters"
	"github.com/fin-tools/pocket-ledger/pkg/models/domain"
	"github.com/fin-tools/pocket-ledger/pkg/store/mongodb/account"
	"github.com/fin-tools/pocket-ledger/pkg/store/mongodb/budget"
	"github.com/fin-tools/pocket-ledger/pkg/store/mongodb/reminder"
	"github.com/fin-tools/pocket-ledger/pkg/store/mongodb/transaction"
	"github.com/fin-tools/pocket-ledger/pkg/store/mongodb/user"
)

const placeholderUserName = "N/A"

// Aggregator derives the four report shapes from raw financial records.
// Data-source errors propagate unchanged; absent optional entities (no
// budget set, zero accounts, zero reminders) are zero values, not errors.
type Aggregator struct {
	transactions transaction.Store
	budgets      budget.Store
	accounts     account.Store
	reminders    reminder.Store
	users        user.Store
	now          func() time.Time
}

func NewAggregator(
	transactions transaction.Store,
	budgets budget.Store,
	accounts account.Store,
	reminders reminder.Store,
	users user.Store,
) *Aggregator {
	return &Aggregator{
		transactions: transactions,
		budgets:      budgets,
		accounts:     accounts,
		reminders:    reminders,
		users:        users,
		now:          time.Now,
	}
}

// monthWindow returns the first calendar day of (month, year) at
// 00:00:00.000 and the last at 23:59:59.999, both inclusive bounds.
func monthWindow(month, year int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Millisecond)
	return from, to
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}

// sumCategories groups expense amounts by category ("Other" when blank)
// and orders them strictly descending by amount, ties keeping the order
// in which the category was first seen.
func sumCategories(transactions []domain.Transaction) []domain.CategoryTotal {
	totals := make(map[string]float64)
	var order []string

	for _, tx := range transactions {
		if !isExpense(tx.Type) {
			continue
		}
		name := tx.Category
		if name == "" {
			name = "Other"
		}
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] += tx.Amount
	}

	out := make([]domain.CategoryTotal, 0, len(order))
	for _, name := range order {
		out = append(out, domain.CategoryTotal{Name: name, Amount: totals[name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount > out[j].Amount
	})
	return out
}

func sumTotals(transactions []domain.Transaction) (income, expense float64) {
	for _, tx := range transactions {
		switch {
		case isIncome(tx.Type):
			income += tx.Amount
		case isExpense(tx.Type):
			expense += tx.Amount
		}
	}
	return income, expense
}

func (a *Aggregator) BuildMonthly(ctx context.Context, userID string, month, year int) (domain.MonthlyReport, error) {
	from, to := monthWindow(month, year)

	docs, err := a.transactions.GetByDateRange(ctx, userID, from, to)
	if err != nil {
		return domain.MonthlyReport{}, err
	}
	txs := adapters.MapStoreTransactionsToDomain(docs)

	income, expense := sumTotals(txs)
	categories := sumCategories(txs)

	dayIndex := make(map[string]int)
	var days []domain.DayTotal
	for i := len(txs) - 1; i >= 0; i-- { // transactions arrive newest first
		tx := txs[i]
		key := fmt.Sprintf("%02d", tx.Date.Day())
		idx, ok := dayIndex[key]
		if !ok {
			idx = len(days)
			dayIndex[key] = idx
			days = append(days, domain.DayTotal{Day: key})
		}
		switch {
		case isIncome(tx.Type):
			days[idx].Income += tx.Amount
		case isExpense(tx.Type):
			days[idx].Expense += tx.Amount
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })

	r := domain.MonthlyReport{
		Period:           fmt.Sprintf("%s %d", time.Month(month), year),
		Month:            month,
		Year:             year,
		TotalIncome:      income,
		TotalExpense:     expense,
		Savings:          income - expense,
		Categories:       categories,
		TransactionCount: len(txs),
		DayTotals:        days,
		Transactions:     txs,
	}
	if len(categories) > 0 {
		r.HighestCategory = categories[0].Name
		r.HighestAmount = categories[0].Amount
	}
	return r, nil
}

func (a *Aggregator) BuildDateRange(ctx context.Context, userID string, from, to time.Time) (domain.DateRangeReport, error) {
	from = startOfDay(from)
	to = endOfDay(to)

	docs, err := a.transactions.GetByDateRange(ctx, userID, from, to)
	if err != nil {
		return domain.DateRangeReport{}, err
	}
	txs := adapters.MapStoreTransactionsToDomain(docs)

	income, expense := sumTotals(txs)
	incomeCount, expenseCount := 0, 0
	for _, tx := range txs {
		switch {
		case isIncome(tx.Type):
			incomeCount++
		case isExpense(tx.Type):
			expenseCount++
		}
	}

	return domain.DateRangeReport{
		Period:           fmt.Sprintf("%s to %s", from.Format("2006-01-02"), to.Format("2006-01-02")),
		From:             from,
		To:               to,
		TotalIncome:      income,
		TotalExpense:     expense,
		Savings:          income - expense,
		TransactionCount: len(txs),
		IncomeCount:      incomeCount,
		ExpenseCount:     expenseCount,
		Transactions:     txs,
	}, nil
}

func (a *Aggregator) BuildBudget(ctx context.Context, userID string, month, year int) (domain.BudgetReport, error) {
	budgetDoc, err := a.budgets.GetMonthly(ctx, userID, month, year)
	if err != nil {
		return domain.BudgetReport{}, err
	}
	var budgetAmount float64
	if budgetDoc != nil {
		budgetAmount = budgetDoc.Amount
	}

	from, to := monthWindow(month, year)
	docs, err := a.transactions.GetByDateRange(ctx, userID, from, to)
	if err != nil {
		return domain.BudgetReport{}, err
	}
	txs := adapters.MapStoreTransactionsToDomain(docs)

	var expenses, incomes []domain.Transaction
	for _, tx := range txs {
		switch {
		case isExpense(tx.Type):
			expenses = append(expenses, tx)
		case isIncome(tx.Type):
			incomes = append(incomes, tx)
		}
	}

	income, spent := sumTotals(txs)

	percentageUsed := "0"
	if budgetAmount > 0 {
		percentageUsed = fmt.Sprintf("%.2f", spent/budgetAmount*100)
	}

	return domain.BudgetReport{
		Period:         fmt.Sprintf("%s %d", time.Month(month), year),
		Month:          month,
		Year:           year,
		TotalIncome:    income,
		TotalSpent:     spent,
		Savings:        income - spent,
		MonthlyBudget:  budgetAmount,
		Remaining:      budgetAmount - spent,
		Exceeded:       spent > budgetAmount,
		PercentageUsed: percentageUsed,
		Categories:     sumCategories(txs),
		Expenses:       expenses,
		Incomes:        incomes,
		Transactions:   txs,
	}, nil
}

func (a *Aggregator) BuildFullAccount(ctx context.Context, userID string, from, to *time.Time) (domain.FullAccountReport, error) {
	userName := placeholderUserName
	profile, err := a.users.GetProfile(ctx, userID)
	if err != nil {
		return domain.FullAccountReport{}, err
	}
	if profile != nil {
		if p := adapters.MapStoreUserToDomain(*profile); p.Username != "" {
			userName = p.Username
		}
	}

	accountDocs, err := a.accounts.GetAll(ctx, userID)
	if err != nil {
		return domain.FullAccountReport{}, err
	}
	reminderDocs, err := a.reminders.GetAll(ctx, userID)
	if err != nil {
		return domain.FullAccountReport{}, err
	}
	budgetDocs, err := a.budgets.GetAll(ctx, userID)
	if err != nil {
		return domain.FullAccountReport{}, err
	}

	var windowFrom, windowTo *time.Time
	if from != nil {
		f := startOfDay(*from)
		windowFrom = &f
	}
	if to != nil {
		t := endOfDay(*to)
		windowTo = &t
	}
	txDocs, err := a.transactions.GetWindowed(ctx, userID, windowFrom, windowTo)
	if err != nil {
		return domain.FullAccountReport{}, err
	}
	txs := adapters.MapStoreTransactionsToDomain(txDocs)

	var accountList []domain.Account
	var totalBalance float64
	for _, doc := range accountDocs {
		acc := adapters.MapStoreAccountToDomain(doc)
		accountList = append(accountList, acc)
		totalBalance += acc.Balance
	}

	var reminderList []domain.Reminder
	for _, doc := range reminderDocs {
		reminderList = append(reminderList, adapters.MapStoreReminderToDomain(doc))
	}

	var budgetList []domain.Budget
	var totalAllotted float64
	for _, doc := range budgetDocs {
		b := adapters.MapStoreBudgetToDomain(doc)
		budgetList = append(budgetList, b)
		totalAllotted += b.Amount
	}

	income, expense := sumTotals(txs)

	categories := sumCategories(txs)
	if len(categories) > 10 {
		categories = categories[:10]
	}

	return domain.FullAccountReport{
		UserName:            userName,
		AccountCount:        len(accountList),
		TotalBalance:        totalBalance,
		TotalIncome:         income,
		TotalExpense:        expense,
		NetBalance:          income - expense,
		TransactionCount:    len(txs),
		ReminderCount:       len(reminderList),
		BudgetCount:         len(budgetList),
		TotalBudgetAllotted: totalAllotted,
		Categories:          categories,
		Accounts:            accountList,
		Transactions:        txs,
		Reminders:           reminderList,
		Budgets:             budgetList,
		GeneratedAt:         a.now(),
		From:                windowFrom,
		To:                  windowTo,
	}, nil
}
