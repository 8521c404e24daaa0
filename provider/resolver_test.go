package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/tnqbao/gau-gallery-service/config"
)

type fakeObjectStore struct {
	objects    map[string][]byte
	statCalls  int
	removeFail map[string]bool
}

func newFakeObjectStore(keys ...string) *fakeObjectStore {
	s := &fakeObjectStore{objects: map[string][]byte{}}
	for _, key := range keys {
		s.objects[key] = []byte("data")
	}
	return s
}

func (s *fakeObjectStore) PresignedGetURL(_ context.Context, key string, _ time.Duration) (*url.URL, error) {
	return url.Parse("https://minio.local/photos/" + key + "?signed=1")
}

func (s *fakeObjectStore) StatObject(_ context.Context, key string) (minio.ObjectInfo, error) {
	s.statCalls++
	if _, ok := s.objects[key]; !ok {
		return minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", Key: key}
	}
	return minio.ObjectInfo{Key: key}, nil
}

func (s *fakeObjectStore) PutObject(_ context.Context, key string, data []byte, _ string) error {
	s.objects[key] = data
	return nil
}

func (s *fakeObjectStore) RemoveObject(_ context.Context, key string) error {
	if s.removeFail[key] {
		return errors.New("storage unavailable")
	}
	delete(s.objects, key)
	return nil
}

type memoryURLCache struct {
	entries map[string][]byte
	lastTTL time.Duration
}

func newMemoryURLCache() *memoryURLCache {
	return &memoryURLCache{entries: map[string][]byte{}}
}

func (c *memoryURLCache) Get(_ context.Context, key string, dest interface{}) error {
	entry, ok := c.entries[key]
	if !ok {
		return errors.New("cache miss")
	}
	return json.Unmarshal(entry, dest)
}

func (c *memoryURLCache) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	c.lastTTL = expiration
	return nil
}

func (c *memoryURLCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

func testEnvConfig() *config.EnvConfig {
	cfg := &config.EnvConfig{}
	cfg.Resolver.FeedTTLSeconds = 3600
	cfg.Resolver.LogoTTLSeconds = 300
	return cfg
}

func newTestResolver(store ObjectStore, cache URLCache) *Resolver {
	return NewResolver(store, cache, testEnvConfig())
}

func TestResolveStripsBucketPrefix(t *testing.T) {
	store := newFakeObjectStore("1700000000000_cat.jpg")
	resolver := newTestResolver(store, nil)

	resolved, err := resolver.Resolve(context.Background(), "photos/1700000000000_cat.jpg", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.Target != "1700000000000_cat.jpg" {
		t.Errorf("expected stripped target, got %q", resolved.Target)
	}
	if !strings.Contains(resolved.URL, "1700000000000_cat.jpg") {
		t.Errorf("signed URL does not reference the object: %q", resolved.URL)
	}
}

func TestResolveEmptyKeyIsValidationError(t *testing.T) {
	resolver := newTestResolver(newFakeObjectStore(), nil)

	for _, key := range []string{"", "photos/"} {
		if _, err := resolver.Resolve(context.Background(), key, time.Hour); !errors.Is(err, ErrValidation) {
			t.Errorf("key %q: expected ErrValidation, got %v", key, err)
		}
	}
}

func TestResolveMissingObjectIsNotFound(t *testing.T) {
	resolver := newTestResolver(newFakeObjectStore(), nil)

	_, err := resolver.Resolve(context.Background(), "photos/missing.jpg", time.Hour)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveUsesCacheOnRepeat(t *testing.T) {
	store := newFakeObjectStore("a.jpg")
	cache := newMemoryURLCache()
	resolver := newTestResolver(store, cache)

	first, err := resolver.Resolve(context.Background(), "photos/a.jpg", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := resolver.Resolve(context.Background(), "photos/a.jpg", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.statCalls != 1 {
		t.Errorf("expected a single storage stat, got %d", store.statCalls)
	}
	if first.URL != second.URL {
		t.Errorf("cached URL differs: %q vs %q", first.URL, second.URL)
	}
}

func TestPutWithoutOverwriteRejectsExisting(t *testing.T) {
	store := newFakeObjectStore("taken.jpg")
	resolver := newTestResolver(store, nil)

	err := resolver.Put(context.Background(), "taken.jpg", []byte("new"), "image/jpeg", false)
	if !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}

	if err := resolver.Put(context.Background(), "free.jpg", []byte("new"), "image/jpeg", false); err != nil {
		t.Errorf("unexpected error for free key: %v", err)
	}
}

func TestPutOverwriteReplacesAndDropsCachedURL(t *testing.T) {
	store := newFakeObjectStore(LogoObjectKey)
	cache := newMemoryURLCache()
	resolver := newTestResolver(store, cache)

	if _, err := resolver.ResolveLogoURL(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := resolver.Put(context.Background(), LogoObjectKey, []byte("v2"), "image/png", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := cache.entries[signedURLCachePrefix+LogoObjectKey]; ok {
		t.Error("expected cached logo URL to be invalidated after overwrite")
	}
	if string(store.objects[LogoObjectKey]) != "v2" {
		t.Error("expected object content to be replaced")
	}
}

func TestRemoveAllReportsFailuresAsWarning(t *testing.T) {
	store := newFakeObjectStore("a.jpg", "b.jpg")
	store.removeFail = map[string]bool{"b.jpg": true}
	resolver := newTestResolver(store, nil)

	warn := resolver.RemoveAll(context.Background(), "photos/a.jpg", "photos/b.jpg")
	if warn == "" {
		t.Fatal("expected a warning for the failed removal")
	}
	if !strings.Contains(warn, "b.jpg") {
		t.Errorf("warning does not name the failed key: %q", warn)
	}
	if _, ok := store.objects["a.jpg"]; ok {
		t.Error("expected a.jpg to be removed despite b.jpg failing")
	}
}

func TestRemoveAllCleanRunHasNoWarning(t *testing.T) {
	store := newFakeObjectStore("a.jpg")
	resolver := newTestResolver(store, nil)

	if warn := resolver.RemoveAll(context.Background(), "photos/a.jpg"); warn != "" {
		t.Errorf("expected no warning, got %q", warn)
	}
}
