package user

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fin-tools/pocket-ledger/pkg/models/store"
)

const collectionName = "users"

type Store interface {
	// GetProfile returns nil without error when the user does not exist;
	// callers substitute a placeholder name.
	GetProfile(ctx context.Context, userID string) (*store.UserDoc, error)
}

type userStore struct {
	coll *mongo.Collection
}

func NewStore(db *mongo.Database) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle is nil")
	}
	return &userStore{coll: db.Collection(collectionName)}, nil
}

func (s *userStore) GetProfile(ctx context.Context, userID string) (*store.UserDoc, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		// A malformed id cannot match any document.
		return nil, nil
	}

	var doc store.UserDoc
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user profile: %w", err)
	}
	return &doc, nil
}
