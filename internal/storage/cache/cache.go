package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/akashipov/brcode/internal/storage"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

// Cache keeps rendered charge JSON by charge id.
type Cache struct {
	lru *expirable.LRU[string, []byte]
}

func NewCache(size int, ttl time.Duration) *Cache {
	return &Cache{lru: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func (c *Cache) Get(id string) ([]byte, bool) {
	return c.lru.Get(id)
}

func (c *Cache) Add(id string, data []byte) {
	c.lru.Add(id, data)
}

func (c *Cache) Remove(id string) {
	c.lru.Remove(id)
}

func (c *Cache) Len() int {
	return c.lru.Len()
}

// InitCache creates the cache and fills it with the most recently touched
// charges of st. Charges that fail to load are logged and skipped.
func InitCache(ctx context.Context, size int, ttl time.Duration, st storage.Storage, log *zap.SugaredLogger) *Cache {
	c := NewCache(size, ttl)
	ids, err := st.GetRecentChargeIDs(ctx, size)
	if err != nil {
		log.Infof("Problem with initialization of cache from storage: %s", err.Error())
		return c
	}
	var errs error
	// Oldest first so the most recent entry ends up at the front.
	for i := len(ids) - 1; i >= 0; i-- {
		id := ids[i]
		ch, err := st.GetChargeByID(ctx, id)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		data, err := json.Marshal(ch)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("charge '%s': %w", id, err))
			continue
		}
		c.Add(id, data)
	}
	if errs != nil {
		log.Infof("Problem with some ids: %s", errs.Error())
	}
	log.Infof("LRU cache created with %d charges", c.Len())
	return c
}
