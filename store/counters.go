package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// nextSequence atomically allocates the next id for the named sequence via
// an upserted counter document. Concurrent callers never observe the same
// value.
func nextSequence(ctx context.Context, counters *mongo.Collection, name string) (int, error) {
	res := counters.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var doc struct {
		Seq int `bson:"seq"`
	}
	if err := res.Decode(&doc); err != nil {
		return 0, fmt.Errorf("failed to allocate %s id: %w", name, err)
	}

	return doc.Seq, nil
}
