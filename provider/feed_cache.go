package provider

import (
	"context"
	"time"

	"github.com/tnqbao/gau-gallery-service/config"
)

const feedCacheKey = "feed:current"

// FeedCache holds the last fully assembled feed. The whole feed is swapped
// with a single SET, so readers either see the old sequence or the new one,
// never a partial rebuild.
type FeedCache struct {
	cache URLCache
	ttl   time.Duration
}

func NewFeedCache(cache URLCache, cfg *config.EnvConfig) *FeedCache {
	return &FeedCache{
		cache: cache,
		// cached cards embed signed URLs; expiring the blob at half their
		// TTL means no URL is ever served with less than half its validity
		ttl: time.Duration(cfg.Resolver.FeedTTLSeconds) * time.Second / 2,
	}
}

func (f *FeedCache) Get(ctx context.Context) ([]FeedCard, bool) {
	var cards []FeedCard
	if err := f.cache.Get(ctx, feedCacheKey, &cards); err != nil {
		return nil, false
	}
	return cards, true
}

func (f *FeedCache) Store(ctx context.Context, cards []FeedCard) error {
	return f.cache.Set(ctx, feedCacheKey, cards, f.ttl)
}

// Invalidate drops the cached feed; the next read rebuilds it. Called after
// every successful mutation.
func (f *FeedCache) Invalidate(ctx context.Context) error {
	return f.cache.Delete(ctx, feedCacheKey)
}
