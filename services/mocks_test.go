package services

import (
	"context"
	"sync"

	"github.com/Myusername84/food-server/models"
	"github.com/Myusername84/food-server/store"
)

// mockAccountStore implements store.AccountStore for testing.
type mockAccountStore struct {
	mu     sync.Mutex
	users  map[int]models.User
	nextID int
	err    error
}

func newMockAccountStore() *mockAccountStore {
	return &mockAccountStore{users: make(map[int]models.User)}
}

func (m *mockAccountStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockAccountStore) FindByID(_ context.Context, id int) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (m *mockAccountStore) Insert(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return store.ErrDuplicateEmail
		}
	}
	m.nextID++
	user.ID = m.nextID
	m.users[user.ID] = *user
	return nil
}

func (m *mockAccountStore) Delete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

// mockCartStore implements store.CartStore over in-memory carts, with a
// product table backing the view join.
type mockCartStore struct {
	mu       sync.Mutex
	carts    map[int]*models.Cart // keyed by user id
	products map[int]models.Product
	nextID   int
	err      error
}

func newMockCartStore() *mockCartStore {
	return &mockCartStore{
		carts:    make(map[int]*models.Cart),
		products: make(map[int]models.Product),
	}
}

func (m *mockCartStore) Create(_ context.Context, userID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.nextID++
	m.carts[userID] = &models.Cart{ID: m.nextID, UserID: userID, Items: []models.CartItem{}}
	return nil
}

func (m *mockCartStore) Get(_ context.Context, userID int) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cart, ok := m.carts[userID]
	if !ok {
		return nil, store.ErrCartNotFound
	}
	return cart, nil
}

func (m *mockCartStore) AddItem(_ context.Context, userID, productID, count int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	cart, ok := m.carts[userID]
	if !ok {
		return store.ErrCartNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Count += count
			return nil
		}
	}
	cart.Items = append(cart.Items, models.CartItem{ProductID: productID, Count: count})
	return nil
}

func (m *mockCartStore) SetItemCount(_ context.Context, userID, productID, count int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	cart, ok := m.carts[userID]
	if !ok {
		return store.ErrItemNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Count = count
			return nil
		}
	}
	return store.ErrItemNotFound
}

func (m *mockCartStore) RemoveItem(_ context.Context, userID, productID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	cart, ok := m.carts[userID]
	if !ok {
		return store.ErrCartNotFound
	}
	for i, item := range cart.Items {
		if item.ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockCartStore) Delete(_ context.Context, userID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.carts[userID]; !ok {
		return store.ErrCartNotFound
	}
	delete(m.carts, userID)
	return nil
}

func (m *mockCartStore) ViewCart(_ context.Context, userID int) ([]models.CartLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	lines := []models.CartLine{}
	cart, ok := m.carts[userID]
	if !ok {
		return lines, nil
	}
	for _, item := range cart.Items {
		product, ok := m.products[item.ProductID]
		if !ok {
			continue // inner join: dangling references drop out
		}
		lines = append(lines, models.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Image:     product.Image,
			Count:     item.Count,
			Price:     product.Price,
		})
	}
	return lines, nil
}
