package provider

import (
	"context"
	"testing"
	"time"
)

func newTestFeedCache() (*FeedCache, *memoryURLCache) {
	cfg := testEnvConfig()
	cache := newMemoryURLCache()
	return NewFeedCache(cache, cfg), cache
}

func TestFeedCacheMissThenHit(t *testing.T) {
	feedCache, _ := newTestFeedCache()
	ctx := context.Background()

	if _, ok := feedCache.Get(ctx); ok {
		t.Fatal("expected a miss on an empty cache")
	}

	stored := []FeedCard{
		{Kind: CardKindPhoto, ID: 1, PrimaryURL: "https://signed.example/a.jpg", DisplayDate: "2024.03.10", SortDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
		{Kind: CardKindLetter, ID: 7, PrimaryURL: "https://signed.example/l.jpg", DisplayDate: "2024.03.05", SortDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
	}
	if err := feedCache.Store(ctx, stored); err != nil {
		t.Fatalf("failed to store feed: %v", err)
	}

	got, ok := feedCache.Get(ctx)
	if !ok {
		t.Fatal("expected a hit after store")
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].Kind != CardKindLetter {
		t.Errorf("cached feed does not round-trip: %+v", got)
	}
}

func TestFeedCacheStoreReplacesWholeFeed(t *testing.T) {
	feedCache, _ := newTestFeedCache()
	ctx := context.Background()

	if err := feedCache.Store(ctx, []FeedCard{{Kind: CardKindPhoto, ID: 1}, {Kind: CardKindPhoto, ID: 2}}); err != nil {
		t.Fatalf("failed to store feed: %v", err)
	}
	if err := feedCache.Store(ctx, []FeedCard{{Kind: CardKindPhoto, ID: 2}}); err != nil {
		t.Fatalf("failed to store feed: %v", err)
	}

	got, ok := feedCache.Get(ctx)
	if !ok {
		t.Fatal("expected a hit")
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("expected the replacement feed only, got %+v", got)
	}
}

func TestFeedCacheExpiresAtHalfURLValidity(t *testing.T) {
	feedCache, cache := newTestFeedCache()

	if err := feedCache.Store(context.Background(), []FeedCard{{Kind: CardKindPhoto, ID: 1}}); err != nil {
		t.Fatalf("failed to store feed: %v", err)
	}

	// feed TTL is 3600s in the test config; embedded URLs must keep at
	// least half their validity when served from cache
	if want := 30 * time.Minute; cache.lastTTL != want {
		t.Errorf("expected blob TTL %v, got %v", want, cache.lastTTL)
	}
}

func TestFeedCacheInvalidate(t *testing.T) {
	feedCache, _ := newTestFeedCache()
	ctx := context.Background()

	if err := feedCache.Store(ctx, []FeedCard{{Kind: CardKindPhoto, ID: 1}}); err != nil {
		t.Fatalf("failed to store feed: %v", err)
	}
	if err := feedCache.Invalidate(ctx); err != nil {
		t.Fatalf("failed to invalidate: %v", err)
	}
	if _, ok := feedCache.Get(ctx); ok {
		t.Error("expected a miss after invalidation")
	}
}
