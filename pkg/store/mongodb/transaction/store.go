package transaction

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fin-tools/pocket-ledger/pkg/models/store"
)

const collectionName = "transactions"

// Store reads a user's transactions. Results are always sorted by date
// descending; windows are inclusive on both ends.
type Store interface {
	GetByDateRange(ctx context.Context, userID string, from, to time.Time) ([]store.TransactionDoc, error)
	GetWindowed(ctx context.Context, userID string, from, to *time.Time) ([]store.TransactionDoc, error)
}

type transactionStore struct {
	coll *mongo.Collection
}

func NewStore(db *mongo.Database) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle is nil")
	}
	return &transactionStore{coll: db.Collection(collectionName)}, nil
}

func (s *transactionStore) GetByDateRange(
	ctx context.Context,
	userID string,
	from, to time.Time,
) ([]store.TransactionDoc, error) {
	return s.find(ctx, bson.M{
		"userId": userID,
		"date":   bson.M{"$gte": from, "$lte": to},
	})
}

// GetWindowed supports open-ended windows: a nil side leaves that bound
// unconstrained, and both nil fetches the user's entire history.
func (s *transactionStore) GetWindowed(
	ctx context.Context,
	userID string,
	from, to *time.Time,
) ([]store.TransactionDoc, error) {
	filter := bson.M{"userId": userID}
	window := bson.M{}
	if from != nil {
		window["$gte"] = *from
	}
	if to != nil {
		window["$lte"] = *to
	}
	if len(window) > 0 {
		filter["date"] = window
	}
	return s.find(ctx, filter)
}

func (s *transactionStore) find(ctx context.Context, filter bson.M) ([]store.TransactionDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer cursor.Close(ctx)

	docs := make([]store.TransactionDoc, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	return docs, nil
}
