package account

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fin-tools/pocket-ledger/pkg/models/store"
)

const collectionName = "accounts"

type Store interface {
	GetAll(ctx context.Context, userID string) ([]store.AccountDoc, error)
}

type accountStore struct {
	coll *mongo.Collection
}

func NewStore(db *mongo.Database) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle is nil")
	}
	return &accountStore{coll: db.Collection(collectionName)}, nil
}

func (s *accountStore) GetAll(ctx context.Context, userID string) ([]store.AccountDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer cursor.Close(ctx)

	docs := make([]store.AccountDoc, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}
	return docs, nil
}
