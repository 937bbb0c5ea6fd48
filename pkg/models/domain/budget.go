package domain

import "time"

type Budget struct {
	ID     string
	Month  int // 1..12
	Year   int
	Amount float64
	Status string
}

type Reminder struct {
	ID      string
	Title   string
	Amount  float64
	DueDate *time.Time
	Status  string
}
