package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoBackend(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get found", func(mt *mtest.T) {
		backend := NewMongoBackend(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(1, mt.DB.Name()+".kv", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "crm_areas"},
			{Key: "value", Value: `[{"id":"1"}]`},
		}))

		raw, found, err := backend.Get(context.Background(), "crm_areas")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `[{"id":"1"}]`, string(raw))
	})

	mt.Run("get missing", func(mt *mtest.T) {
		backend := NewMongoBackend(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".kv", mtest.FirstBatch))

		_, found, err := backend.Get(context.Background(), "crm_areas")
		require.NoError(t, err)
		assert.False(t, found)
	})

	mt.Run("set upserts", func(mt *mtest.T) {
		backend := NewMongoBackend(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := backend.Set(context.Background(), "crm_areas", []byte(`[]`))
		assert.NoError(t, err)
	})

	mt.Run("set error", func(mt *mtest.T) {
		backend := NewMongoBackend(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad value"}))

		err := backend.Set(context.Background(), "crm_areas", []byte(`[]`))
		assert.Error(t, err)
	})
}
