package kvstore

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// kvRecord maps a row of the kv_store table, the same single-table layout the
// hosted deployment uses.
type kvRecord struct {
	Key   string `gorm:"column:key;primaryKey;size:256"`
	Value []byte `gorm:"column:value"`
}

func (kvRecord) TableName() string {
	return "kv_store"
}

// GormStore keeps records in one Postgres table. Useful when the service runs
// alongside an existing relational deployment instead of the embedded file.
type GormStore struct {
	db *gorm.DB
}

func OpenGorm(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, errors.Wrap(err, "migrate kv_store table")
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var rec kvRecord
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.Value, nil
}

func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	rec := kvRecord{Key: key, Value: value}
	return s.db.WithContext(ctx).Save(&rec).Error
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("key = ?", key).Delete(&kvRecord{}).Error
}

func (s *GormStore) DeleteBatch(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Where("key IN ?", keys).Delete(&kvRecord{}).Error
}

// likeEscaper neutralizes LIKE wildcards; key prefixes contain underscores
// which would otherwise match any character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (s *GormStore) ScanPrefix(ctx context.Context, prefix string) ([]Record, error) {
	var rows []kvRecord
	pattern := likeEscaper.Replace(prefix) + "%"
	if err := s.db.WithContext(ctx).Where("key LIKE ?", pattern).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, Record{Key: r.Key, Value: r.Value})
	}
	return out, nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
