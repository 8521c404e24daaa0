package provider

import (
	"testing"
	"time"
)

func TestParseExifDateTime(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
		ok   bool
	}{
		{
			name: "standard timestamp",
			raw:  "2024:03:05 10:42:17",
			want: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "surrounding whitespace",
			raw:  "  2021:12:31 23:59:59\x00",
			want: time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "iso layout rejected",
			raw:  "2024-03-05 10:42:17",
		},
		{
			name: "empty",
			raw:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseExifDateTime(tt.raw)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestInferCaptureDateFallsBackOnPlainBytes(t *testing.T) {
	fallback := time.Date(2023, 11, 1, 18, 30, 45, 0, time.UTC)

	got := InferCaptureDate([]byte("not an image at all"), fallback)

	want := time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected fallback day %v, got %v", want, got)
	}
}

func TestInferCaptureDateNormalizesFallbackZone(t *testing.T) {
	zone := time.FixedZone("UTC+7", 7*3600)
	fallback := time.Date(2023, 11, 1, 2, 0, 0, 0, zone)

	got := InferCaptureDate(nil, fallback)

	if got.Location() != time.UTC {
		t.Errorf("expected UTC day, got %v", got.Location())
	}
	if got.Day() != 1 || got.Month() != time.November {
		t.Errorf("expected the fallback's calendar day, got %v", got)
	}
}
