package domain

import "time"

type Transaction struct {
	ID          string
	Type        string // free text; classified by substring match against "income"/"expense"
	Amount      float64
	Category    string
	Date        time.Time
	Account     string
	FromAccount string
	ToAccount   string
	Description string
}

type Account struct {
	ID      string
	Name    string
	Balance float64
}

type UserProfile struct {
	ID       string
	Username string
}
