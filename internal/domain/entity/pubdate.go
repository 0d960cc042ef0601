package entity

import (
	"errors"
	"strings"
	"time"
)

// PubDateLayout is the RFC-1123 form every stored pubDate is normalised to.
// Same layout as net/http's TimeFormat, always rendered in GMT.
const PubDateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

// pubDateLayouts lists the layouts accepted on input, tried in order.
var pubDateLayouts = []string{
	time.RFC1123,
	time.RFC1123Z,
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	time.RFC822,
	time.RFC822Z,
	"02 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04:05 -0700",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ErrUnparseableDate is returned by ParsePubDate when no layout matches.
var ErrUnparseableDate = errors.New("unrecognised date format")

// rfc822Zones holds the zone names of RFC 822 section 5 and their UTC offsets.
// time.Parse only knows an abbreviation when the local zone uses it and
// otherwise reads it as offset 0.
var rfc822Zones = map[string]int{
	"UT":  0,
	"UTC": 0,
	"GMT": 0,
	"Z":   0,
	"EST": -5 * 3600,
	"EDT": -4 * 3600,
	"CST": -6 * 3600,
	"CDT": -5 * 3600,
	"MST": -7 * 3600,
	"MDT": -6 * 3600,
	"PST": -8 * 3600,
	"PDT": -7 * 3600,
}

// ParsePubDate parses RFC-822 style or ISO-8601 text into a UTC timestamp.
// Values without an offset are read as UTC. A zone name outside RFC 822 is
// rejected unless it resolves to a non-zero offset.
func ParsePubDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrUnparseableDate
	}
	// time.Parse は 2 文字以下のゾーン名を受け付けない
	for _, short := range []string{" UT", " Z"} {
		if strings.HasSuffix(raw, short) {
			raw = strings.TrimSuffix(raw, short) + " GMT"
			break
		}
	}
	for _, layout := range pubDateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if strings.HasSuffix(layout, "MST") {
			return resolveZone(t)
		}
		return t.UTC(), nil
	}
	return time.Time{}, ErrUnparseableDate
}

// resolveZone re-reads the wall clock of t in the offset its zone name stands for.
func resolveZone(t time.Time) (time.Time, error) {
	name, offset := t.Zone()
	if known, ok := rfc822Zones[name]; ok {
		offset = known
	} else if offset == 0 {
		return time.Time{}, ErrUnparseableDate
	}
	loc := time.FixedZone(name, offset)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc).UTC(), nil
}

// FormatPubDate renders t in the stored RFC-1123 GMT form.
func FormatPubDate(t time.Time) string {
	return t.UTC().Format(PubDateLayout)
}
