package feed

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"feedstore/internal/domain/entity"
)

// Query filters feeds and their entries.
// Zero values mean "not given": empty strings, nil bounds and a zero Limit.
type Query struct {
	Title        string
	Description  string
	From         *time.Time
	To           *time.Time
	Limit        int
	IncludeEmpty bool
}

// ParseQuery reads the search parameters title, description, from_date,
// to_date, limit and include_empty. Unknown parameters are ignored.
func ParseQuery(v url.Values) (Query, error) {
	q := Query{
		Title:       strings.TrimSpace(v.Get("title")),
		Description: strings.TrimSpace(v.Get("description")),
	}

	if raw := strings.TrimSpace(v.Get("from_date")); raw != "" {
		t, _, err := parseBound(raw)
		if err != nil {
			return Query{}, &entity.ValidationError{Field: "from_date", Message: "invalid date: must be ISO-8601 or RFC-822"}
		}
		q.From = &t
	}

	if raw := strings.TrimSpace(v.Get("to_date")); raw != "" {
		t, dateOnly, err := parseBound(raw)
		if err != nil {
			return Query{}, &entity.ValidationError{Field: "to_date", Message: "invalid date: must be ISO-8601 or RFC-822"}
		}
		if dateOnly {
			// 日付のみの指定はその日の終わりまでを含む
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		q.To = &t
	}

	if q.From != nil && q.To != nil && q.From.After(*q.To) {
		return Query{}, &entity.ValidationError{Field: "from_date", Message: "must not be after to_date"}
	}

	if raw := strings.TrimSpace(v.Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Query{}, &entity.ValidationError{Field: "limit", Message: "must be a positive integer"}
		}
		q.Limit = n
	}

	if raw := strings.TrimSpace(v.Get("include_empty")); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Query{}, &entity.ValidationError{Field: "include_empty", Message: "must be true or false"}
		}
		q.IncludeEmpty = b
	}

	return q, nil
}

// parseBound parses a date bound in UTC and reports whether it carried no time of day.
func parseBound(raw string) (time.Time, bool, error) {
	if t, err := time.ParseInLocation(time.DateOnly, raw, time.UTC); err == nil {
		return t, true, nil
	}
	if t, err := entity.ParsePubDate(raw); err == nil {
		return t, false, nil
	}
	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return time.Time{}, false, err
	}
	t = t.UTC()
	dateOnly := !strings.Contains(raw, ":") &&
		t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
	return t, dateOnly, nil
}

// Matches reports whether the feed-level filters accept f.
func (q Query) Matches(f *entity.Feed) bool {
	if q.Title != "" && !containsFold(f.Title, q.Title) {
		return false
	}
	if q.Description != "" && !containsFold(f.Description, q.Description) {
		return false
	}
	return true
}

// inRange reports whether e falls within the inclusive date bounds.
func (q Query) inRange(e entity.FeedEntry) bool {
	if q.From != nil && e.Published.Before(*q.From) {
		return false
	}
	if q.To != nil && e.Published.After(*q.To) {
		return false
	}
	return true
}

// Evaluate applies q to feeds and returns deep copies of the matching feeds in
// input order. Each result's entries are filtered to the date range, sorted
// newest first (stable) and truncated to Limit.
func (q Query) Evaluate(feeds []*entity.Feed) []*entity.Feed {
	out := make([]*entity.Feed, 0, len(feeds))
	for _, f := range feeds {
		if !q.Matches(f) {
			continue
		}

		res := f.Clone()
		entries := make([]entity.FeedEntry, 0, len(f.Entries))
		for _, e := range f.Entries {
			if q.inRange(e) {
				entries = append(entries, e)
			}
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Published.After(entries[j].Published)
		})
		if q.Limit > 0 && len(entries) > q.Limit {
			entries = entries[:q.Limit]
		}
		res.Entries = entries

		if len(entries) == 0 && !q.IncludeEmpty {
			continue
		}
		out = append(out, res)
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
