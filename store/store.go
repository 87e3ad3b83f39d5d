package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Myusername84/food-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrCartNotFound   = errors.New("cart not found")
	ErrItemNotFound   = errors.New("item not found in cart")
)

// AccountStore defines user record persistence. Consumers define this
// interface, not the MongoDB implementation.
type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int) error
}

// CartStore defines cart persistence and the priced cart view. Every
// mutation is scoped to a single user's cart.
type CartStore interface {
	Create(ctx context.Context, userID int) error
	Get(ctx context.Context, userID int) (*models.Cart, error)
	AddItem(ctx context.Context, userID, productID, count int) error
	SetItemCount(ctx context.Context, userID, productID, count int) error
	RemoveItem(ctx context.Context, userID, productID int) error
	Delete(ctx context.Context, userID int) error
	ViewCart(ctx context.Context, userID int) ([]models.CartLine, error)
}

// CatalogStore is read-only access to the burgers collection.
type CatalogStore interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	Search(ctx context.Context, name, category string) ([]models.Product, error)
}

// EnsureIndexes creates the indexes the stores rely on: unique user emails
// and one cart per user.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users index: %w", err)
	}

	_, err = db.Collection("carts").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create carts index: %w", err)
	}

	return nil
}
