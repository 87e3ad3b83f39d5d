package services

import (
	"context"
	"testing"

	"github.com/Myusername84/food-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture(t *testing.T) (*CartService, *mockCartStore) {
	t.Helper()
	carts := newMockCartStore()
	require.NoError(t, carts.Create(context.Background(), 1))
	carts.products[10] = models.Product{ID: 10, Name: "Classic", Category: "Beef", Price: 5.5, Image: "classic.png"}
	carts.products[20] = models.Product{ID: 20, Name: "Veggie", Category: "Vegan", Price: 4.0, Image: "veggie.png"}
	return NewCartService(carts), carts
}

func TestAddItem_Accumulates(t *testing.T) {
	svc, _ := newCartFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, 1, 10, 2))
	require.NoError(t, svc.AddItem(ctx, 1, 10, 3))

	lines, err := svc.ViewCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 10, lines[0].ProductID)
	assert.Equal(t, 5, lines[0].Count)
}

func TestAddItem_RejectsBadInput(t *testing.T) {
	svc, _ := newCartFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.AddItem(ctx, 1, 0, 1), ErrInvalidInput)
	assert.ErrorIs(t, svc.AddItem(ctx, 1, 10, 0), ErrInvalidInput)
	assert.ErrorIs(t, svc.AddItem(ctx, 1, 10, -2), ErrInvalidInput)
}

func TestAddItem_NoCart(t *testing.T) {
	svc, _ := newCartFixture(t)

	err := svc.AddItem(context.Background(), 99, 10, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestViewCart_Empty(t *testing.T) {
	svc, _ := newCartFixture(t)

	lines, err := svc.ViewCart(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.NotNil(t, lines)
}

func TestViewCart_DropsDanglingReference(t *testing.T) {
	svc, carts := newCartFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, 1, 10, 1))
	require.NoError(t, svc.AddItem(ctx, 1, 20, 2))

	// The catalog process deletes a burger out from under the cart.
	delete(carts.products, 10)

	lines, err := svc.ViewCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 20, lines[0].ProductID)
}

func TestSetItemCount_ReturnsRefreshedView(t *testing.T) {
	svc, _ := newCartFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, 1, 10, 2))

	lines, err := svc.SetItemCount(ctx, 1, 10, 7)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Count)
}

func TestSetItemCount_UnknownItem(t *testing.T) {
	svc, _ := newCartFixture(t)

	_, err := svc.SetItemCount(context.Background(), 1, 10, 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveItem_ReturnsRefreshedView(t *testing.T) {
	svc, _ := newCartFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, 1, 10, 1))
	require.NoError(t, svc.AddItem(ctx, 1, 20, 1))

	lines, err := svc.RemoveItem(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 20, lines[0].ProductID)
}

func TestRemoveItem_OnlyTouchesOwnCart(t *testing.T) {
	svc, carts := newCartFixture(t)
	ctx := context.Background()

	require.NoError(t, carts.Create(ctx, 2))
	require.NoError(t, svc.AddItem(ctx, 1, 10, 1))
	require.NoError(t, svc.AddItem(ctx, 2, 10, 4))

	_, err := svc.RemoveItem(ctx, 1, 10)
	require.NoError(t, err)

	other, err := svc.ViewCart(ctx, 2)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, 4, other[0].Count)
}
