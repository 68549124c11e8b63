package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/truethread/storefront/internal/kvstore"
)

func newTestMaintenance(t *testing.T) (*Maintenance, *Repository, kvstore.Store) {
	t.Helper()
	store, err := kvstore.OpenBolt(t.TempDir(), "maint-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	repo := NewRepository(store)
	return NewMaintenance(repo, store), repo, store
}

func TestMaintenance_CleanupRemovesExactlyInvalid(t *testing.T) {
	m, repo, store := newTestMaintenance(t)
	ctx := context.Background()

	validID, err := repo.Create(ctx, kurtaDraft())
	require.NoError(t, err)

	// no images
	noImages := kurtaDraft()
	delete(noImages, "images")
	invalidID, err := repo.Create(ctx, noImages)
	require.NoError(t, err)

	// stored record without an id field at all; must be classified invalid
	// but never handed to the delete batch
	require.NoError(t, store.Set(ctx, "product_raw", []byte(`{"name":"orphan"}`)))

	stats, err := m.Cleanup(ctx)
	require.NoError(t, err)
	assert.Equal(t, CleanupStats{Total: 3, Valid: 1, Removed: 1}, stats)

	// valid product survives untouched
	doc, err := repo.Get(ctx, validID)
	require.NoError(t, err)
	assert.Equal(t, "Premium Cotton Kurta", doc["name"])
	assert.Equal(t, 2999.0, doc["price"])

	_, err = repo.Get(ctx, invalidID)
	assert.ErrorIs(t, err, ErrNotFound)

	// the id-less record stays behind
	_, err = store.Get(ctx, "product_raw")
	assert.NoError(t, err)
}

func TestMaintenance_CleanupEmptyCatalog(t *testing.T) {
	m, _, _ := newTestMaintenance(t)

	stats, err := m.Cleanup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, CleanupStats{}, stats)
}

func TestMaintenance_Reseed(t *testing.T) {
	m, repo, _ := newTestMaintenance(t)
	ctx := context.Background()

	oldID, err := repo.Create(ctx, kurtaDraft())
	require.NoError(t, err)

	stats, err := m.Reseed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Deleted)
	assert.Equal(t, len(SeedProducts), stats.Inserted)

	// prior ids no longer resolve
	_, err = repo.Get(ctx, oldID)
	assert.ErrorIs(t, err, ErrNotFound)

	docs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, len(SeedProducts))

	seen := map[string]bool{}
	for _, doc := range docs {
		id, _ := doc["id"].(string)
		require.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
		assert.True(t, Valid(doc), "seed product %v should be valid", doc["name"])
	}
}

func TestMaintenance_SeedSampleData(t *testing.T) {
	m, repo, _ := newTestMaintenance(t)
	ctx := context.Background()

	seeded, err := m.SeedSampleData(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	docs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, len(SeedProducts))

	// marker makes the second call a no-op
	seeded, err = m.SeedSampleData(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	docs, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, len(SeedProducts))
}
