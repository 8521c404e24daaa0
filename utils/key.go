package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// BucketPrefix is the conventional prefix stored rows carry on their object
// keys; it must be stripped before any storage call.
const BucketPrefix = "photos/"

var unsafeKeyChars = regexp.MustCompile(`[^\w.-]+`)
var dashRuns = regexp.MustCompile(`-+`)

// StripBucketPrefix removes the conventional bucket prefix, if present.
func StripBucketPrefix(objectKey string) string {
	return strings.TrimPrefix(objectKey, BucketPrefix)
}

// WithBucketPrefix is the stored-row form of a bucket-relative key.
func WithBucketPrefix(key string) string {
	return BucketPrefix + key
}

// ToSafeKey sanitizes an uploaded filename into a storage-safe key
// fragment: ASCII word characters, dots and dashes only, extension
// lowercased, at most 80 characters of base name.
func ToSafeKey(filename string) string {
	base := filename
	ext := ""
	if dot := strings.LastIndex(filename, "."); dot >= 0 {
		base = filename[:dot]
		ext = strings.ToLower(filename[dot:])
	}

	safe := unsafeKeyChars.ReplaceAllString(base, "-")
	safe = dashRuns.ReplaceAllString(safe, "-")
	safe = strings.Trim(safe, "-")
	if len(safe) > 80 {
		safe = safe[:80]
	}
	if safe == "" {
		safe = "file"
	}

	return safe + ext
}

// NewObjectKey builds a caller-chosen, timestamp-prefixed key so repeated
// uploads of the same filename never collide.
func NewObjectKey(filename string) string {
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), ToSafeKey(filename))
}
