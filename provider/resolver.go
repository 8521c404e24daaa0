package provider

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/tnqbao/gau-gallery-service/config"
	"github.com/tnqbao/gau-gallery-service/utils"
)

// LogoObjectKey is the fixed, well-known key of the singleton logo. Items
// use caller-chosen timestamp-prefixed keys; the logo always overwrites
// this one.
const LogoObjectKey = "logo.png"

const signedURLCachePrefix = "signed-url:"

// ResolvedURL is a time-limited read grant for one object.
type ResolvedURL struct {
	Target    string    `json:"target"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ObjectStore is the storage boundary the resolver signs against.
// *infra.MinioClient satisfies it.
type ObjectStore interface {
	PresignedGetURL(ctx context.Context, key string, ttl time.Duration) (*url.URL, error)
	StatObject(ctx context.Context, key string) (minio.ObjectInfo, error)
	PutObject(ctx context.Context, key string, data []byte, contentType string) error
	RemoveObject(ctx context.Context, key string) error
}

// URLCache holds resolved URLs between aggregation passes, expiring them
// no later than the signature itself. *infra.RedisClient satisfies it.
type URLCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Resolver turns stored object keys into short-lived access URLs and owns
// the signing/expiry policy.
type Resolver struct {
	store   ObjectStore
	cache   URLCache
	feedTTL time.Duration
	logoTTL time.Duration
}

func NewResolver(store ObjectStore, cache URLCache, cfg *config.EnvConfig) *Resolver {
	return &Resolver{
		store:   store,
		cache:   cache,
		feedTTL: time.Duration(cfg.Resolver.FeedTTLSeconds) * time.Second,
		logoTTL: time.Duration(cfg.Resolver.LogoTTLSeconds) * time.Second,
	}
}

// Resolve signs a retrieval URL for objectKey, valid for ttl. The
// conventional bucket prefix is stripped before any storage call. A missing
// object maps to ErrNotFound, a signing rejection to ErrAccessDenied.
func (r *Resolver) Resolve(ctx context.Context, objectKey string, ttl time.Duration) (*ResolvedURL, error) {
	key := utils.StripBucketPrefix(objectKey)
	if key == "" {
		return nil, fmt.Errorf("%w: empty object key", ErrValidation)
	}

	cacheKey := signedURLCachePrefix + key
	if r.cache != nil {
		var cached ResolvedURL
		if err := r.cache.Get(ctx, cacheKey, &cached); err == nil && time.Now().Before(cached.ExpiresAt) {
			return &cached, nil
		}
	}

	if _, err := r.store.StatObject(ctx, key); err != nil {
		return nil, mapStorageError(key, err)
	}

	signed, err := r.store.PresignedGetURL(ctx, key, ttl)
	if err != nil {
		return nil, mapStorageError(key, err)
	}

	resolved := &ResolvedURL{
		Target:    key,
		URL:       signed.String(),
		ExpiresAt: time.Now().Add(ttl),
	}

	if r.cache != nil {
		// cache lifetime stays below the signature's expiry
		_ = r.cache.Set(ctx, cacheKey, resolved, ttl*9/10)
	}

	return resolved, nil
}

// ResolveFeedURL resolves with the standard feed-content TTL.
func (r *Resolver) ResolveFeedURL(ctx context.Context, objectKey string) (*ResolvedURL, error) {
	return r.Resolve(ctx, objectKey, r.feedTTL)
}

// ResolveLogoURL resolves the fixed logo key with the short logo TTL so a
// replaced logo is never served past its freshness window.
func (r *Resolver) ResolveLogoURL(ctx context.Context) (*ResolvedURL, error) {
	return r.Resolve(ctx, LogoObjectKey, r.logoTTL)
}

// Put uploads one blob. With overwrite=false an existing key fails with
// ErrConflict; the logo path always overwrites its fixed key.
func (r *Resolver) Put(ctx context.Context, objectKey string, data []byte, contentType string, overwrite bool) error {
	key := utils.StripBucketPrefix(objectKey)
	if key == "" {
		return fmt.Errorf("%w: empty object key", ErrValidation)
	}

	if !overwrite {
		_, err := r.store.StatObject(ctx, key)
		if err == nil {
			return fmt.Errorf("%w: %s", ErrConflict, key)
		}
		if mapped := mapStorageError(key, err); !errors.Is(mapped, ErrNotFound) {
			return mapped
		}
	}

	if err := r.store.PutObject(ctx, key, data, contentType); err != nil {
		return mapStorageError(key, err)
	}

	if r.cache != nil {
		_ = r.cache.Delete(ctx, signedURLCachePrefix+key)
	}

	return nil
}

// RemoveAll deletes the given objects best-effort and returns a warning
// describing any keys that could not be removed. It never fails: storage
// leakage is traded for forward progress of the row delete.
func (r *Resolver) RemoveAll(ctx context.Context, objectKeys ...string) string {
	var failed []string

	for _, objectKey := range objectKeys {
		key := utils.StripBucketPrefix(objectKey)
		if key == "" {
			continue
		}
		if err := r.store.RemoveObject(ctx, key); err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", key, err))
			continue
		}
		if r.cache != nil {
			_ = r.cache.Delete(ctx, signedURLCachePrefix+key)
		}
	}

	if len(failed) == 0 {
		return ""
	}
	return "storage deletion failed for " + strings.Join(failed, "; ")
}

func mapStorageError(key string, err error) error {
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey", "NoSuchBucket", "NotFound":
		return fmt.Errorf("%w: object %s", ErrNotFound, key)
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return fmt.Errorf("%w: object %s: %v", ErrAccessDenied, key, err)
	}
	return fmt.Errorf("storage error for object %s: %w", key, err)
}
