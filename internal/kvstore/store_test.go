package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()
	s, err := OpenBolt(t.TempDir(), "test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestBoltStore_SetGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "product_1", []byte(`{"name":"kurta"}`)))

	v, err := s.Get(ctx, "product_1")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"kurta"}`, string(v))

	_, err = s.Get(ctx, "product_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBoltStore_DeleteIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "product_1", []byte("{}")))
	require.NoError(t, s.Delete(ctx, "product_1"))
	// second delete of the same key must not error
	require.NoError(t, s.Delete(ctx, "product_1"))

	_, err := s.Get(ctx, "product_1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBoltStore_ScanPrefix(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "product_a", []byte("1")))
	require.NoError(t, s.Set(ctx, "product_b", []byte("2")))
	require.NoError(t, s.Set(ctx, "prebooking_a", []byte("3")))
	require.NoError(t, s.Set(ctx, "contact_a", []byte("4")))

	recs, err := s.ScanPrefix(ctx, "product_")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	keys := []string{recs[0].Key, recs[1].Key}
	assert.Contains(t, keys, "product_a")
	assert.Contains(t, keys, "product_b")

	recs, err = s.ScanPrefix(ctx, "preorder_")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestBoltStore_DeleteBatch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "product_a", []byte("1")))
	require.NoError(t, s.Set(ctx, "product_b", []byte("2")))
	require.NoError(t, s.Set(ctx, "product_c", []byte("3")))

	require.NoError(t, s.DeleteBatch(ctx, []string{"product_a", "product_c", "product_never"}))

	recs, err := s.ScanPrefix(ctx, "product_")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "product_b", recs[0].Key)
}
