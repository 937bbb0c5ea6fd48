package budget

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fin-tools/pocket-ledger/pkg/models/store"
)

const collectionName = "budgets"

type Store interface {
	// GetMonthly returns the single budget for (user, month, year),
	// or nil without error when none is set.
	GetMonthly(ctx context.Context, userID string, month, year int) (*store.BudgetDoc, error)
	GetAll(ctx context.Context, userID string) ([]store.BudgetDoc, error)
}

type budgetStore struct {
	coll *mongo.Collection
}

func NewStore(db *mongo.Database) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle is nil")
	}
	return &budgetStore{coll: db.Collection(collectionName)}, nil
}

func (s *budgetStore) GetMonthly(ctx context.Context, userID string, month, year int) (*store.BudgetDoc, error) {
	filter := bson.M{"userId": userID, "month": month, "year": year}

	var doc store.BudgetDoc
	err := s.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query monthly budget: %w", err)
	}
	return &doc, nil
}

func (s *budgetStore) GetAll(ctx context.Context, userID string) ([]store.BudgetDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "year", Value: 1}, {Key: "month", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("query budgets: %w", err)
	}
	defer cursor.Close(ctx)

	docs := make([]store.BudgetDoc, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode budgets: %w", err)
	}
	return docs, nil
}
