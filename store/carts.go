package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Myusername84/food-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoCartStore struct {
	carts    *mongo.Collection
	counters *mongo.Collection
}

func NewCartStore(db *mongo.Database) CartStore {
	return &mongoCartStore{
		carts:    db.Collection("carts"),
		counters: db.Collection("counters"),
	}
}

// Create inserts an empty cart for the user with the next sequential cart id.
func (s *mongoCartStore) Create(ctx context.Context, userID int) error {
	id, err := nextSequence(ctx, s.counters, "carts")
	if err != nil {
		return err
	}

	cart := models.Cart{ID: id, UserID: userID, Items: []models.CartItem{}}
	if _, err := s.carts.InsertOne(ctx, cart); err != nil {
		return fmt.Errorf("failed to insert cart: %w", err)
	}
	return nil
}

func (s *mongoCartStore) Get(ctx context.Context, userID int) (*models.Cart, error) {
	var cart models.Cart
	err := s.carts.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return &cart, nil
}

// AddItem increments the count of an existing line item, or appends a new
// one. Both updates filter on userId so other users' carts are never touched.
func (s *mongoCartStore) AddItem(ctx context.Context, userID, productID, count int) error {
	res, err := s.carts.UpdateOne(ctx,
		bson.M{"userId": userID, "items.id": productID},
		bson.M{"$inc": bson.M{"items.$.count": count}},
	)
	if err != nil {
		return fmt.Errorf("failed to increment item: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	res, err = s.carts.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$push": bson.M{"items": models.CartItem{ProductID: productID, Count: count}}},
	)
	if err != nil {
		return fmt.Errorf("failed to push item: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrCartNotFound
	}
	return nil
}

func (s *mongoCartStore) SetItemCount(ctx context.Context, userID, productID, count int) error {
	res, err := s.carts.UpdateOne(ctx,
		bson.M{"userId": userID, "items.id": productID},
		bson.M{"$set": bson.M{"items.$.count": count}},
	)
	if err != nil {
		return fmt.Errorf("failed to set item count: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (s *mongoCartStore) RemoveItem(ctx context.Context, userID, productID int) error {
	res, err := s.carts.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$pull": bson.M{"items": bson.M{"id": productID}}},
	)
	if err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrCartNotFound
	}
	return nil
}

func (s *mongoCartStore) Delete(ctx context.Context, userID int) error {
	res, err := s.carts.DeleteOne(ctx, bson.M{"userId": userID})
	if err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrCartNotFound
	}
	return nil
}

// ViewCart joins the user's line items against the burgers collection and
// projects the priced view. Inner-join semantics: items whose burger no
// longer exists are dropped, and the output follows the cart's item order.
func (s *mongoCartStore) ViewCart(ctx context.Context, userID int) ([]models.CartLine, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "userId", Value: userID}}}},
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "burgers"},
			{Key: "localField", Value: "items.id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "burgerDetails"},
		}}},
		{{Key: "$unwind", Value: "$burgerDetails"}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: "$burgerDetails._id"},
			{Key: "name", Value: "$burgerDetails.name"},
			{Key: "image", Value: "$burgerDetails.image"},
			{Key: "count", Value: "$items.count"},
			{Key: "price", Value: "$burgerDetails.price"},
		}}},
	}

	cursor, err := s.carts.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate cart: %w", err)
	}
	defer cursor.Close(ctx)

	lines := []models.CartLine{}
	if err := cursor.All(ctx, &lines); err != nil {
		return nil, fmt.Errorf("failed to decode cart view: %w", err)
	}
	return lines, nil
}
