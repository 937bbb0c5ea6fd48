package reminder

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fin-tools/pocket-ledger/pkg/models/store"
)

const collectionName = "reminders"

type Store interface {
	GetAll(ctx context.Context, userID string) ([]store.ReminderDoc, error)
}

type reminderStore struct {
	coll *mongo.Collection
}

func NewStore(db *mongo.Database) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle is nil")
	}
	return &reminderStore{coll: db.Collection(collectionName)}, nil
}

func (s *reminderStore) GetAll(ctx context.Context, userID string) ([]store.ReminderDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dueDate", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("query reminders: %w", err)
	}
	defer cursor.Close(ctx)

	docs := make([]store.ReminderDoc, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reminders: %w", err)
	}
	return docs, nil
}
