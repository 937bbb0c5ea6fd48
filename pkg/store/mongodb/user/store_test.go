package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreNilDatabase(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}

func TestGetProfileMalformedID(t *testing.T) {
	// A non-hex id can never match an ObjectID _id, so the store answers
	// "not found" without touching the collection.
	s := &userStore{}

	doc, err := s.GetProfile(context.Background(), "not-a-hex-id")
	require.NoError(t, err)
	assert.Nil(t, doc)
}
