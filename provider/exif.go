package provider

import (
	"bytes"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

const exifDateTimeLayout = "2006:01:02 15:04:05"

// InferCaptureDate derives a calendar day for a photo from its embedded
// EXIF timestamp, falling back to the supplied timestamp when the metadata
// is absent or malformed. It never fails: a missing capture date must not
// block the add flow.
func InferCaptureDate(fileBytes []byte, fallback time.Time) time.Time {
	if x, err := exif.Decode(bytes.NewReader(fileBytes)); err == nil {
		for _, field := range []exif.FieldName{exif.DateTimeOriginal, exif.DateTime} {
			tag, err := x.Get(field)
			if err != nil {
				continue
			}
			raw, err := tag.StringVal()
			if err != nil {
				continue
			}
			if t, ok := ParseExifDateTime(raw); ok {
				return t
			}
		}
	}

	return truncateToDay(fallback)
}

// ParseExifDateTime normalizes an EXIF "YYYY:MM:DD HH:MM:SS" token to a
// calendar day in UTC.
func ParseExifDateTime(raw string) (time.Time, bool) {
	// EXIF string fields are frequently NUL-padded
	t, err := time.Parse(exifDateTimeLayout, strings.Trim(raw, " \t\r\n\x00"))
	if err != nil {
		return time.Time{}, false
	}
	return truncateToDay(t), true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
