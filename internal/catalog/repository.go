package catalog

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/truethread/storefront/internal/kvstore"
	"github.com/truethread/storefront/pkg/common"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNotFound is returned when a product id does not resolve.
var ErrNotFound = errors.New("catalog: product not found")

// Repository provides CRUD over product documents layered on the KV store.
// Documents are stored as JSON under their own id, which doubles as the store
// key (id carries the product_ prefix).
type Repository struct {
	store kvstore.Store
}

func NewRepository(store kvstore.Store) *Repository {
	return &Repository{store: store}
}

// Create stores the draft with a generated id and creation timestamp and
// returns the id. Drafts are accepted as-is, including incomplete ones.
func (r *Repository) Create(ctx context.Context, draft map[string]interface{}) (string, error) {
	id := common.NewRecordID(ProductPrefix)
	doc := make(map[string]interface{}, len(draft)+2)
	for k, v := range draft {
		doc[k] = v
	}
	doc["id"] = id
	doc["createdAt"] = time.Now().Format(time.RFC3339)

	data, err := json.Marshal(doc)
	if err != nil {
		return "", errors.Wrap(err, "marshal product")
	}
	if err := r.store.Set(ctx, id, data); err != nil {
		return "", errors.Wrap(err, "store product")
	}
	return id, nil
}

func (r *Repository) Get(ctx context.Context, id string) (map[string]interface{}, error) {
	data, err := r.store.Get(ctx, id)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "read product")
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode product")
	}
	return doc, nil
}

// Update shallow-merges partial over the stored document and stamps
// updatedAt. Fields absent from partial are preserved unchanged.
func (r *Repository) Update(ctx context.Context, id string, partial map[string]interface{}) error {
	doc, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	for k, v := range partial {
		doc[k] = v
	}
	doc["id"] = id
	doc["updatedAt"] = time.Now().Format(time.RFC3339)

	data, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "marshal product")
	}
	if err := r.store.Set(ctx, id, data); err != nil {
		return errors.Wrap(err, "store product")
	}
	return nil
}

// Delete removes the product. Deleting an unknown id is not an error.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return errors.Wrap(r.store.Delete(ctx, id), "delete product")
}

// List returns every product document. Order is unspecified and callers must
// not rely on it. Undecodable records are logged and skipped.
func (r *Repository) List(ctx context.Context) ([]map[string]interface{}, error) {
	recs, err := r.store.ScanPrefix(ctx, ProductPrefix)
	if err != nil {
		return nil, errors.Wrap(err, "scan products")
	}
	out := make([]map[string]interface{}, 0, len(recs))
	for _, rec := range recs {
		var doc map[string]interface{}
		if err := json.Unmarshal(rec.Value, &doc); err != nil {
			zap.L().Warn("catalog: skipping undecodable product record",
				zap.String("key", rec.Key), zap.Error(err))
			continue
		}
		out = append(out, doc)
	}
	return out, nil
}
