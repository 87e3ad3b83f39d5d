package store

import (
	"context"
	"testing"

	"github.com/Myusername84/food-server/database"
	"github.com/Myusername84/food-server/models"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

func setupTestDB(t *testing.T) (*mongo.Database, func()) {
	ctx := context.Background()

	mongoContainer, err := mongodb.RunContainer(ctx, testcontainers.WithImage("mongo:7"))
	require.NoError(t, err)

	uri, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err)

	db, err := database.Connect(ctx, uri, "testdb")
	require.NoError(t, err)

	require.NoError(t, EnsureIndexes(ctx, db))

	cleanup := func() {
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return db, cleanup
}

func seedBurgers(t *testing.T, db *mongo.Database, products ...models.Product) {
	t.Helper()
	docs := make([]interface{}, len(products))
	for i, p := range products {
		docs[i] = p
	}
	_, err := db.Collection("burgers").InsertMany(context.Background(), docs)
	require.NoError(t, err)
}
