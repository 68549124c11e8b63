package catalog

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/truethread/storefront/internal/kvstore"
	"go.uber.org/zap"
)

// seedDelay separates consecutive seed inserts so millisecond-resolution ids
// stay unique even when insertion outpaces the clock.
const seedDelay = 10 * time.Millisecond

// CleanupStats reports a cleanup pass.
type CleanupStats struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Removed int `json:"removed"`
}

// ReseedStats reports a reseed pass.
type ReseedStats struct {
	Deleted  int `json:"deleted"`
	Inserted int `json:"inserted"`
}

// Maintenance runs bulk catalog operations on top of the repository: cleanup
// of invalid records and wipe-and-reseed of the curated sample set. Neither
// operation is transactional; both continue past individual failures and
// report counts instead of aborting.
type Maintenance struct {
	repo  *Repository
	store kvstore.Store
}

func NewMaintenance(repo *Repository, store kvstore.Store) *Maintenance {
	return &Maintenance{repo: repo, store: store}
}

// Cleanup partitions all products into valid and invalid sets and
// batch-deletes the invalid ones. Invalid records missing an id are excluded
// from the delete batch, an empty key must never reach the store.
func (m *Maintenance) Cleanup(ctx context.Context) (CleanupStats, error) {
	docs, err := m.repo.List(ctx)
	if err != nil {
		return CleanupStats{}, err
	}

	stats := CleanupStats{Total: len(docs)}
	var invalidKeys []string
	for _, doc := range docs {
		if Valid(doc) {
			stats.Valid++
			continue
		}
		if id, ok := doc["id"].(string); ok && id != "" {
			invalidKeys = append(invalidKeys, id)
		}
	}

	if len(invalidKeys) > 0 {
		if err := m.store.DeleteBatch(ctx, invalidKeys); err != nil {
			return stats, errors.Wrap(err, "delete invalid products")
		}
	}
	stats.Removed = len(invalidKeys)
	zap.L().Info("catalog: cleanup complete",
		zap.Int("total", stats.Total),
		zap.Int("valid", stats.Valid),
		zap.Int("removed", stats.Removed))
	return stats, nil
}

// Reseed deletes every existing product one by one, continuing past
// individual failures, then installs the curated sample set. The
// delete-then-insert sequence is deliberately not atomic; concurrent writes
// during a reseed are an accepted operational risk.
func (m *Maintenance) Reseed(ctx context.Context) (ReseedStats, error) {
	docs, err := m.repo.List(ctx)
	if err != nil {
		return ReseedStats{}, err
	}

	var stats ReseedStats
	for _, doc := range docs {
		id, ok := doc["id"].(string)
		if !ok || id == "" {
			continue
		}
		if err := m.store.Delete(ctx, id); err != nil {
			zap.L().Warn("catalog: reseed failed to delete product",
				zap.String("id", id), zap.Error(err))
			continue
		}
		stats.Deleted++
	}

	inserted, err := m.installSeeds(ctx)
	stats.Inserted = inserted
	if err != nil {
		return stats, err
	}
	zap.L().Info("catalog: reseed complete",
		zap.Int("deleted", stats.Deleted),
		zap.Int("inserted", stats.Inserted))
	return stats, nil
}

// SeedSampleData installs the sample set unless the seed marker says it is
// already present. Returns true when seeding actually ran.
func (m *Maintenance) SeedSampleData(ctx context.Context) (bool, error) {
	_, err := m.store.Get(ctx, SeedMarkerKey)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, kvstore.ErrNotFound) {
		return false, errors.Wrap(err, "read seed marker")
	}
	if _, err := m.installSeeds(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (m *Maintenance) installSeeds(ctx context.Context) (int, error) {
	inserted := 0
	for i, p := range SeedProducts {
		if i > 0 {
			time.Sleep(seedDelay)
		}
		draft, err := p.Draft()
		if err != nil {
			return inserted, errors.Wrapf(err, "encode seed product %q", p.Name)
		}
		if _, err := m.repo.Create(ctx, draft); err != nil {
			return inserted, errors.Wrapf(err, "insert seed product %q", p.Name)
		}
		inserted++
	}

	marker, err := json.Marshal(map[string]interface{}{
		"version":  SeedVersion,
		"seededAt": time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return inserted, errors.Wrap(err, "marshal seed marker")
	}
	if err := m.store.Set(ctx, SeedMarkerKey, marker); err != nil {
		return inserted, errors.Wrap(err, "store seed marker")
	}
	return inserted, nil
}
