package store

import (
	"context"
	"testing"

	"github.com/Myusername84/food-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogStore_GetAllAndByID(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	catalog := NewCatalogStore(db)

	seedBurgers(t, db,
		models.Product{ID: 1, Name: "Classic Burger", Category: "Beef", Price: 5.5, Image: "classic.png"},
		models.Product{ID: 2, Name: "Veggie Burger", Category: "Vegan", Price: 4.0, Image: "veggie.png"},
	)

	all, err := catalog.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	product, err := catalog.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Veggie Burger", product.Name)

	_, err = catalog.GetByID(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogStore_SearchNameCaseInsensitive(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	catalog := NewCatalogStore(db)

	seedBurgers(t, db,
		models.Product{ID: 1, Name: "Classic Burger", Category: "Beef", Price: 5.5, Image: "classic.png"},
		models.Product{ID: 2, Name: "Veggie Burger", Category: "Vegan", Price: 4.0, Image: "veggie.png"},
		models.Product{ID: 3, Name: "Cheese Melt", Category: "Beef", Price: 6.0, Image: "melt.png"},
	)

	results, err := catalog.Search(ctx, "burger", "None")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestCatalogStore_SearchCategoryFilter(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	catalog := NewCatalogStore(db)

	seedBurgers(t, db,
		models.Product{ID: 1, Name: "Classic Burger", Category: "Beef", Price: 5.5, Image: "classic.png"},
		models.Product{ID: 2, Name: "Veggie Burger", Category: "Vegan", Price: 4.0, Image: "veggie.png"},
	)

	results, err := catalog.Search(ctx, "burger", "Vegan")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Veggie Burger", results[0].Name)

	// "None" disables the category filter entirely.
	results, err = catalog.Search(ctx, "", "None")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// Category match is exact, not substring.
	results, err = catalog.Search(ctx, "burger", "Veg")
	require.NoError(t, err)
	assert.Empty(t, results)
}
