package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BudgetDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	UserID string             `bson:"userId"`
	Month  int                `bson:"month"`
	Year   int                `bson:"year"`
	Amount float64            `bson:"amount"`
	Status string             `bson:"status,omitempty"`
}

type ReminderDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	UserID  string             `bson:"userId"`
	Title   string             `bson:"title,omitempty"`
	Amount  float64            `bson:"amount"`
	DueDate *time.Time         `bson:"dueDate,omitempty"`
	Status  string             `bson:"status,omitempty"`
}
