// Package blobstore is the image-storage collaborator boundary. Product
// images are written by the admin upload endpoint and handed back as
// time-limited signed URLs; the catalog itself only ever stores URL strings.
package blobstore

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrInvalidSignature = errors.New("blobstore: invalid or expired signature")
	ErrNotFound         = errors.New("blobstore: object not found")
)

// BlobStore stores uploaded objects and issues signed, expiring URLs for
// them. A hosted deployment would back this with an external bucket; the
// local implementation below keeps files under the workdir.
type BlobStore interface {
	Put(ctx context.Context, name string, data []byte) error
	SignedURL(name string, ttl time.Duration) (string, error)
	// Fetch validates the signature and expiry issued by SignedURL and
	// returns the object bytes with a best-effort content type.
	Fetch(ctx context.Context, name string, exp int64, sig string) ([]byte, string, error)
}

// LocalStore keeps objects as plain files and signs URLs with an HMAC key
// persisted next to them, so links stay valid across restarts.
type LocalStore struct {
	dir     string
	baseURL string
	secret  []byte
}

func NewLocalStore(workdir, baseURL string) (*LocalStore, error) {
	dir := filepath.Join(workdir, "uploads")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create uploads dir")
	}
	secret, err := loadOrCreateSecret(filepath.Join(workdir, "uploads.key"))
	if err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/"), secret: secret}, nil
}

func loadOrCreateSecret(path string) ([]byte, error) {
	if data, err := os.ReadFile(path); err == nil && len(data) > 0 {
		return data, nil
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, errors.Wrap(err, "generate signing key")
	}
	if err := os.WriteFile(path, secret, 0o600); err != nil {
		return nil, errors.Wrap(err, "persist signing key")
	}
	return secret, nil
}

func (s *LocalStore) Put(ctx context.Context, name string, data []byte) error {
	// uploads are always flat, strip any path components
	name = filepath.Base(name)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return errors.Wrapf(err, "write object %s", name)
	}
	return nil
}

func (s *LocalStore) SignedURL(name string, ttl time.Duration) (string, error) {
	name = filepath.Base(name)
	exp := time.Now().Add(ttl).Unix()
	return fmt.Sprintf("%s/uploads/%s?exp=%d&sig=%s", s.baseURL, name, exp, s.sign(name, exp)), nil
}

func (s *LocalStore) Fetch(ctx context.Context, name string, exp int64, sig string) ([]byte, string, error) {
	name = filepath.Base(name)
	if time.Now().Unix() > exp {
		return nil, "", ErrInvalidSignature
	}
	if !hmac.Equal([]byte(s.sign(name, exp)), []byte(sig)) {
		return nil, "", ErrInvalidSignature
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", errors.Wrapf(err, "read object %s", name)
	}
	ctype := mime.TypeByExtension(filepath.Ext(name))
	if ctype == "" {
		ctype = "application/octet-stream"
	}
	return data, ctype, nil
}

func (s *LocalStore) sign(name string, exp int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s:%d", name, exp)
	return hex.EncodeToString(mac.Sum(nil))
}
