package utils

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestToSafeKey(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"plain", "cat.jpg", "cat.jpg"},
		{"extension lowercased", "IMG_0042.JPG", "IMG_0042.jpg"},
		{"spaces and symbols collapse", "my holiday (1)!.jpg", "my-holiday-1.jpg"},
		{"no extension", "README", "README"},
		{"nothing safe left", "!!!.png", "file.png"},
		{"long base truncated", strings.Repeat("a", 120) + ".jpg", strings.Repeat("a", 80) + ".jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToSafeKey(tt.filename); got != tt.want {
				t.Errorf("ToSafeKey(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestBucketPrefixRoundTrip(t *testing.T) {
	if got := StripBucketPrefix("photos/123_cat.jpg"); got != "123_cat.jpg" {
		t.Errorf("expected prefix stripped, got %q", got)
	}
	if got := StripBucketPrefix("123_cat.jpg"); got != "123_cat.jpg" {
		t.Errorf("expected bare key unchanged, got %q", got)
	}
	if got := WithBucketPrefix("123_cat.jpg"); got != "photos/123_cat.jpg" {
		t.Errorf("expected prefixed key, got %q", got)
	}
}

func TestNewObjectKeyIsTimestampPrefixed(t *testing.T) {
	before := time.Now().UnixMilli()
	key := NewObjectKey("cat.jpg")
	after := time.Now().UnixMilli()

	parts := strings.SplitN(key, "_", 2)
	if len(parts) != 2 {
		t.Fatalf("expected <millis>_<name>, got %q", key)
	}
	millis, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		t.Fatalf("prefix is not a timestamp: %q", parts[0])
	}
	if millis < before || millis > after {
		t.Errorf("timestamp %d outside [%d, %d]", millis, before, after)
	}
	if parts[1] != "cat.jpg" {
		t.Errorf("expected sanitized name suffix, got %q", parts[1])
	}
}
