package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/truethread/storefront/internal/kvstore"
)

func newTestRepo(t *testing.T) (*Repository, kvstore.Store) {
	t.Helper()
	store, err := kvstore.OpenBolt(t.TempDir(), "catalog-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewRepository(store), store
}

func kurtaDraft() map[string]interface{} {
	return map[string]interface{}{
		"name":        "Premium Cotton Kurta",
		"description": "Hand-stitched cotton kurta",
		"price":       2999.0,
		"category":    "Men",
		"subcategory": "Shirts",
		"inStock":     true,
		"images":      []interface{}{"https://example.com/kurta.jpg"},
	}
}

func TestRepository_CreateGetRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	draft := kurtaDraft()
	id, err := repo.Create(ctx, draft)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, ProductPrefix))

	doc, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, doc["id"])
	assert.NotEmpty(t, doc["createdAt"])
	for k, v := range draft {
		assert.Equal(t, v, doc[k], "field %s", k)
	}
	// the caller's draft is not mutated
	assert.NotContains(t, draft, "id")
}

func TestRepository_GetUnknown(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.Get(context.Background(), "product_nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_UpdateShallowMerge(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, kurtaDraft())
	require.NoError(t, err)

	err = repo.Update(ctx, id, map[string]interface{}{
		"price":   1999.0,
		"inStock": false,
	})
	require.NoError(t, err)

	doc, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1999.0, doc["price"])
	assert.Equal(t, false, doc["inStock"])
	// untouched fields survive the merge
	assert.Equal(t, "Premium Cotton Kurta", doc["name"])
	assert.Equal(t, "Men", doc["category"])
	assert.NotEmpty(t, doc["updatedAt"])
}

func TestRepository_UpdateUnknown(t *testing.T) {
	repo, _ := newTestRepo(t)

	err := repo.Update(context.Background(), "product_nope", map[string]interface{}{"price": 1.0})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_DeleteIdempotent(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, kurtaDraft())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))
	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_ListOnlyProducts(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, kurtaDraft())
	require.NoError(t, err)
	_, err = repo.Create(ctx, kurtaDraft())
	require.NoError(t, err)
	// records of other types are invisible to the catalog
	require.NoError(t, store.Set(ctx, "prebooking_1", []byte(`{"name":"x"}`)))

	docs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestValid(t *testing.T) {
	base := func() map[string]interface{} {
		return map[string]interface{}{
			"id":          "product_1",
			"name":        "Kurta",
			"description": "desc",
			"price":       100.0,
			"category":    "Men",
			"images":      []interface{}{"https://example.com/a.jpg"},
		}
	}

	tests := []struct {
		name   string
		mutate func(map[string]interface{})
		want   bool
	}{
		{"fully populated", func(d map[string]interface{}) {}, true},
		{"missing id", func(d map[string]interface{}) { delete(d, "id") }, false},
		{"missing name", func(d map[string]interface{}) { delete(d, "name") }, false},
		{"missing description", func(d map[string]interface{}) { delete(d, "description") }, false},
		{"non-numeric price", func(d map[string]interface{}) { d["price"] = "100" }, false},
		{"missing category", func(d map[string]interface{}) { delete(d, "category") }, false},
		{"missing images", func(d map[string]interface{}) { delete(d, "images") }, false},
		{"empty images", func(d map[string]interface{}) { d["images"] = []interface{}{} }, false},
		{"empty image url", func(d map[string]interface{}) { d["images"] = []interface{}{""} }, false},
		{"non-string image", func(d map[string]interface{}) { d["images"] = []interface{}{42.0} }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := base()
			tt.mutate(doc)
			assert.Equal(t, tt.want, Valid(doc))
		})
	}
	assert.False(t, Valid(nil))
}
