package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Myusername84/food-server/models"
	"github.com/Myusername84/food-server/store"
)

// AccountService owns user lifecycle: registration, credential checks,
// federated upserts and deletion. Every user owns exactly one cart, created
// and destroyed alongside the account.
type AccountService struct {
	users store.AccountStore
	carts store.CartStore
}

func NewAccountService(users store.AccountStore, carts store.CartStore) *AccountService {
	return &AccountService{users: users, carts: carts}
}

func (s *AccountService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	if email == "" || password == "" || name == "" {
		return nil, ErrInvalidInput
	}

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrDuplicateAccount
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: password,
		Method:   models.MethodLocal,
	}
	return user, s.createWithCart(ctx, user)
}

func (s *AccountService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// Federated accounts have no usable password.
	if user.Password != password || user.Method != models.MethodLocal {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// LoginWithOAuth is an idempotent upsert: the first federated login creates
// the user and its paired cart, later logins return the existing record.
func (s *AccountService) LoginWithOAuth(ctx context.Context, email, displayName string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	user = &models.User{
		Name:     displayName,
		Email:    email,
		Password: "",
		Method:   models.MethodGoogle,
	}
	if err := s.createWithCart(ctx, user); err != nil {
		// Two concurrent first logins can race past FindByEmail; the unique
		// email index turns the loser into a plain lookup.
		if errors.Is(err, ErrDuplicateAccount) {
			return s.users.FindByEmail(ctx, email)
		}
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the user and its cart. The two deletes are separate
// single-document operations; a crash in between leaves an orphaned cart.
func (s *AccountService) DeleteAccount(ctx context.Context, userID int) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.carts.Delete(ctx, userID); err != nil && !errors.Is(err, store.ErrCartNotFound) {
		return fmt.Errorf("failed to delete cart for user %d: %w", userID, err)
	}
	return nil
}

func (s *AccountService) createWithCart(ctx context.Context, user *models.User) error {
	if err := s.users.Insert(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return ErrDuplicateAccount
		}
		return err
	}
	return s.carts.Create(ctx, user.ID)
}
