package cache

import (
	"context"
	"encoding/json"
	"time"

	"fabricshop/bot/internal/domain"
	"fabricshop/bot/internal/store"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// RecordCache decorates a RecordStore with a Redis TTL cache for full-table
// reads, so every product tap does not refetch the whole Products table.
// Redis trouble degrades to a direct fetch, never a user-visible error.
type RecordCache struct {
	redisClient *redis.Client
	store       store.RecordStore
	ttl         time.Duration
	keyPrefix   string
}

func NewRecordCache(redisClient *redis.Client, recordStore store.RecordStore, ttl time.Duration) *RecordCache {
	return &RecordCache{
		redisClient: redisClient,
		store:       recordStore,
		ttl:         ttl,
		keyPrefix:   "fabricshop:records:",
	}
}

func (c *RecordCache) GetAllRecords(ctx context.Context, table string) ([]domain.Record, error) {
	key := c.keyPrefix + table

	cached, err := c.redisClient.Get(ctx, key).Result()
	if err == nil {
		var records []domain.Record
		if err := json.Unmarshal([]byte(cached), &records); err == nil {
			log.Debugf("Cache hit for %s (%d records)", table, len(records))
			return records, nil
		}
		log.Warnf("Discarding unreadable cache entry for %s", table)
	} else if err != redis.Nil {
		log.Warnf("Record cache unavailable for %s, fetching directly: %v", table, err)
	}

	records, err := c.store.GetAllRecords(ctx, table)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(records); err == nil {
		if err := c.redisClient.Set(ctx, key, data, c.ttl).Err(); err != nil {
			log.Warnf("Failed to cache %d records for %s: %v", len(records), table, err)
		}
	}

	return records, nil
}

// GetRecord passes through; single-record lookups are rare and cheap.
func (c *RecordCache) GetRecord(ctx context.Context, id, table string) (domain.Record, error) {
	return c.store.GetRecord(ctx, id, table)
}

// Invalidate drops the cached table so the next read refetches.
func (c *RecordCache) Invalidate(ctx context.Context, table string) error {
	return c.redisClient.Del(ctx, c.keyPrefix+table).Err()
}
