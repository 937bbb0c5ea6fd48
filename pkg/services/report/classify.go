package report

import "regexp"

// Transaction types are free text. A record counts as income or expense
// when its type contains the keyword case-insensitively ("Income",
// "expense", "Side income"...). Records matching neither keyword stay in
// raw lists and record counts but contribute to no monetary total.
var (
	incomePattern  = regexp.MustCompile(`(?i)income`)
	expensePattern = regexp.MustCompile(`(?i)expense`)
)

func isIncome(transactionType string) bool {
	return incomePattern.MatchString(transactionType)
}

func isExpense(transactionType string) bool {
	return expensePattern.MatchString(transactionType)
}
