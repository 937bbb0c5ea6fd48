package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionDoc is the shape of a transaction document in MongoDB.
// Category and the account fields are free text and may be absent.
type TransactionDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"userId"`
	Type        string             `bson:"type"`
	Amount      float64            `bson:"amount"`
	Category    string             `bson:"category,omitempty"`
	Date        time.Time          `bson:"date"`
	Account     string             `bson:"account,omitempty"`
	FromAccount string             `bson:"fromAccount,omitempty"`
	ToAccount   string             `bson:"toAccount,omitempty"`
	Description string             `bson:"description,omitempty"`
}

type AccountDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	UserID  string             `bson:"userId"`
	Name    string             `bson:"name"`
	Balance float64            `bson:"balance"`
}

type UserDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
}
