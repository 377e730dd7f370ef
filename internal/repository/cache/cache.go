package cache

import (
	"fmt"
	"time"

	"offertracker/internal/domain/models"

	"github.com/dgraph-io/ristretto"
)

const (
	defaultNumCounters = 10_000
	defaultMaxCost     = 1_000
	offerCost          = 1
)

// OfferCache - кеш офферов по slug поверх ristretto.
// Set асинхронный: значение может появиться не сразу, поэтому читатели
// при промахе всегда идут в хранилище.
type OfferCache struct {
	client *ristretto.Cache
	ttl    time.Duration
}

func NewOfferCache(ttl time.Duration) (*OfferCache, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("offer cache ttl must be positive, got %s", ttl)
	}

	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: defaultNumCounters,
		MaxCost:     defaultMaxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create offer cache: %w", err)
	}

	return &OfferCache{client: client, ttl: ttl}, nil
}

func (c *OfferCache) Get(slug string) (models.Offer, bool) {
	if c == nil || c.client == nil {
		return models.Offer{}, false
	}

	v, ok := c.client.Get(slug)
	if !ok {
		return models.Offer{}, false
	}

	offer, ok := v.(models.Offer)
	return offer, ok
}

func (c *OfferCache) Set(offer models.Offer) {
	if c == nil || c.client == nil {
		return
	}
	c.client.SetWithTTL(offer.Slug, offer, offerCost, c.ttl)
}

func (c *OfferCache) Invalidate(slug string) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(slug)
}

// Wait дожидается применения буферизованных Set
func (c *OfferCache) Wait() {
	if c == nil || c.client == nil {
		return
	}
	c.client.Wait()
}

func (c *OfferCache) Close() {
	if c != nil && c.client != nil {
		c.client.Close()
	}
}
