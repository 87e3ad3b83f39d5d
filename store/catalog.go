package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/Myusername84/food-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoCatalogStore struct {
	burgers *mongo.Collection
}

func NewCatalogStore(db *mongo.Database) CatalogStore {
	return &mongoCatalogStore{burgers: db.Collection("burgers")}
}

func (s *mongoCatalogStore) GetAll(ctx context.Context) ([]models.Product, error) {
	cursor, err := s.burgers.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list burgers: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode burgers: %w", err)
	}
	return products, nil
}

func (s *mongoCatalogStore) GetByID(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	err := s.burgers.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get burger: %w", err)
	}
	return &product, nil
}

// Search matches name as a case-insensitive substring. The category filter
// is exact, and omitted entirely when category is "None".
func (s *mongoCatalogStore) Search(ctx context.Context, name, category string) ([]models.Product, error) {
	filter := bson.M{"name": bson.M{"$regex": regexp.QuoteMeta(name), "$options": "i"}}
	if category != "None" {
		filter["category"] = category
	}

	cursor, err := s.burgers.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search burgers: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode burgers: %w", err)
	}
	return products, nil
}
