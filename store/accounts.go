package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Myusername84/food-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoAccountStore struct {
	users    *mongo.Collection
	counters *mongo.Collection
}

func NewAccountStore(db *mongo.Database) AccountStore {
	return &mongoAccountStore{
		users:    db.Collection("users"),
		counters: db.Collection("counters"),
	}
}

func (s *mongoAccountStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

func (s *mongoAccountStore) FindByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	return &user, nil
}

// Insert allocates the next sequential user id and stores the record. The
// assigned id is written back to user.ID.
func (s *mongoAccountStore) Insert(ctx context.Context, user *models.User) error {
	id, err := nextSequence(ctx, s.counters, "users")
	if err != nil {
		return err
	}
	user.ID = id

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (s *mongoAccountStore) Delete(ctx context.Context, id int) error {
	res, err := s.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
