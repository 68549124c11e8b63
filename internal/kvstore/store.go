package kvstore

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/truethread/storefront/config"
)

// ErrNotFound is returned by Get when no record exists under the key.
var ErrNotFound = errors.New("kvstore: key not found")

// Record is a single stored entry. Value holds an opaque JSON document.
type Record struct {
	Key   string
	Value []byte
}

// Store is the durable string-keyed mapping every catalog and intake record
// lives in. Keys are namespaced by type prefix (product_, prebooking_,
// preorder_, contact_) and ScanPrefix is the only list operation.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete is idempotent, removing a missing key is not an error.
	Delete(ctx context.Context, key string) error
	DeleteBatch(ctx context.Context, keys []string) error
	ScanPrefix(ctx context.Context, prefix string) ([]Record, error)
	Close() error
}

// Open selects a backend from the database configuration, the same
// switch-on-type convention the rest of the configuration follows.
func Open(cfg config.DatabaseConfig, workdir string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Type)) {
	case "", "bolt", "bbolt":
		return OpenBolt(workdir, cfg.Name)
	case "postgres", "postgresql":
		return OpenGorm(cfg.Dsn)
	default:
		return nil, errors.Errorf("kvstore: unsupported database type %q", cfg.Type)
	}
}
