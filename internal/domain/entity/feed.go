package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DefaultLanguage is applied to feeds created without a language.
const DefaultLanguage = "en-US"

// FeedEntry is a single item of a feed, the equivalent of an RSS <item>.
// PubDate holds the normalised RFC-1123 text; Published is the parsed
// timestamp used for retention and date filtering and is never serialised.
type FeedEntry struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	PubDate     string    `json:"pubDate"`
	GUID        string    `json:"guid"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Published   time.Time `json:"-"`
}

// UnmarshalJSON decodes an entry and re-derives Published from PubDate.
// Parseable dates are normalised; unparseable ones are kept verbatim with a
// zero Published so that retention evicts them.
func (e *FeedEntry) UnmarshalJSON(data []byte) error {
	type plain FeedEntry
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = FeedEntry(p)
	e.Published = time.Time{}
	if t, err := ParsePubDate(e.PubDate); err == nil {
		e.Published = t
		e.PubDate = FormatPubDate(t)
	}
	return nil
}

// Feed is a named, ordered collection of entries, the equivalent of an RSS <channel>.
// Entries are kept newest-insertion first: AddEntry prepends.
type Feed struct {
	FeedID      string      `json:"feedId"`
	Title       string      `json:"title"`
	Link        string      `json:"link"`
	Description string      `json:"description"`
	Language    string      `json:"language"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	Entries     []FeedEntry `json:"entries"`
}

// AddEntry prepends e to the feed. The entry's GUID must not already exist in the feed.
func (f *Feed) AddEntry(e FeedEntry) error {
	if f.HasEntry(e.GUID) {
		return &ValidationError{Field: "guid", Message: fmt.Sprintf("%q already exists in feed", e.GUID)}
	}
	f.Entries = append([]FeedEntry{e}, f.Entries...)
	return nil
}

// checkStored reports a loaded feed that could not have been created:
// a blank title, link or description, or an entry GUID that is empty or
// repeated. A missing language is filled with DefaultLanguage.
func (f *Feed) checkStored() error {
	for _, field := range [...]struct{ name, value string }{
		{"title", f.Title},
		{"link", f.Link},
		{"description", f.Description},
	} {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%s is empty", field.name)
		}
	}
	if f.Language == "" {
		f.Language = DefaultLanguage
	}

	seen := make(map[string]struct{}, len(f.Entries))
	for i, e := range f.Entries {
		if e.GUID == "" {
			return fmt.Errorf("entries[%d]: guid is empty", i)
		}
		if _, dup := seen[e.GUID]; dup {
			return fmt.Errorf("entries[%d]: duplicate guid %q", i, e.GUID)
		}
		seen[e.GUID] = struct{}{}
	}
	return nil
}

// HasEntry reports whether an entry with the given GUID exists in the feed.
func (f *Feed) HasEntry(guid string) bool {
	for i := range f.Entries {
		if f.Entries[i].GUID == guid {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the feed.
func (f *Feed) Clone() *Feed {
	if f == nil {
		return nil
	}
	c := *f
	c.Entries = make([]FeedEntry, len(f.Entries))
	copy(c.Entries, f.Entries)
	return &c
}

// EntryInput is the caller-supplied shape of a new entry.
type EntryInput struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	PubDate     string `json:"pubDate"`
	GUID        string `json:"guid,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Build validates the input and returns the entry it describes.
// newGUID is called only when the input carries no GUID.
// field prefixes the field names reported in a ValidationError
// (e.g. "entries[2]."), and may be empty.
func (in EntryInput) Build(field string, newGUID func() string) (FeedEntry, error) {
	if err := ValidateRequired(field+"title", in.Title); err != nil {
		return FeedEntry{}, err
	}
	if err := ValidateURL(field+"link", in.Link); err != nil {
		return FeedEntry{}, err
	}
	if err := ValidateRequired(field+"description", in.Description); err != nil {
		return FeedEntry{}, err
	}
	if err := ValidateRequired(field+"pubDate", in.PubDate); err != nil {
		return FeedEntry{}, err
	}
	published, err := ParsePubDate(in.PubDate)
	if err != nil {
		return FeedEntry{}, &ValidationError{
			Field:   field + "pubDate",
			Message: "invalid date: must be RFC-822 or ISO-8601",
		}
	}
	if err := ValidateOptionalURL(field+"imageUrl", in.ImageURL); err != nil {
		return FeedEntry{}, err
	}

	guid := strings.TrimSpace(in.GUID)
	if guid == "" {
		guid = newGUID()
	}

	return FeedEntry{
		Title:       strings.TrimSpace(in.Title),
		Link:        strings.TrimSpace(in.Link),
		Description: strings.TrimSpace(in.Description),
		PubDate:     FormatPubDate(published),
		GUID:        guid,
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Published:   published,
	}, nil
}

// FeedInput is the caller-supplied shape of a new feed.
type FeedInput struct {
	Title       string       `json:"title"`
	Link        string       `json:"link"`
	Description string       `json:"description"`
	Language    string       `json:"language,omitempty"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	Entries     []EntryInput `json:"entries,omitempty"`
}

// Build validates the input and returns the feed it describes under feedID.
// Entries are added in request order, each one prepended, the same way
// AddEntry would have added them one by one.
func (in FeedInput) Build(feedID string, newGUID func() string) (*Feed, error) {
	if err := ValidateRequired("title", in.Title); err != nil {
		return nil, err
	}
	if err := ValidateURL("link", in.Link); err != nil {
		return nil, err
	}
	if err := ValidateRequired("description", in.Description); err != nil {
		return nil, err
	}
	if err := ValidateOptionalURL("imageUrl", in.ImageURL); err != nil {
		return nil, err
	}

	language := strings.TrimSpace(in.Language)
	if language == "" {
		language = DefaultLanguage
	}

	f := &Feed{
		FeedID:      feedID,
		Title:       strings.TrimSpace(in.Title),
		Link:        strings.TrimSpace(in.Link),
		Description: strings.TrimSpace(in.Description),
		Language:    language,
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Entries:     make([]FeedEntry, 0, len(in.Entries)),
	}
	for i, ein := range in.Entries {
		prefix := fmt.Sprintf("entries[%d].", i)
		e, err := ein.Build(prefix, newGUID)
		if err != nil {
			return nil, err
		}
		if f.HasEntry(e.GUID) {
			return nil, &ValidationError{Field: prefix + "guid", Message: "must be unique within the feed"}
		}
		f.Entries = append([]FeedEntry{e}, f.Entries...)
	}
	return f, nil
}

// FeedUpdate carries a partial update of feed metadata. Nil fields are left unchanged.
type FeedUpdate struct {
	Title       *string `json:"title,omitempty"`
	Link        *string `json:"link,omitempty"`
	Description *string `json:"description,omitempty"`
	Language    *string `json:"language,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// Apply validates the update and writes it onto f. f is untouched on error.
func (u FeedUpdate) Apply(f *Feed) error {
	next := *f
	if u.Title != nil {
		if err := ValidateRequired("title", *u.Title); err != nil {
			return err
		}
		next.Title = strings.TrimSpace(*u.Title)
	}
	if u.Link != nil {
		if err := ValidateURL("link", *u.Link); err != nil {
			return err
		}
		next.Link = strings.TrimSpace(*u.Link)
	}
	if u.Description != nil {
		if err := ValidateRequired("description", *u.Description); err != nil {
			return err
		}
		next.Description = strings.TrimSpace(*u.Description)
	}
	if u.Language != nil {
		next.Language = strings.TrimSpace(*u.Language)
		if next.Language == "" {
			next.Language = DefaultLanguage
		}
	}
	if u.ImageURL != nil {
		if err := ValidateOptionalURL("imageUrl", *u.ImageURL); err != nil {
			return err
		}
		next.ImageURL = strings.TrimSpace(*u.ImageURL)
	}
	*f = next
	return nil
}

// IsEmpty reports whether the update changes nothing.
func (u FeedUpdate) IsEmpty() bool {
	return u.Title == nil && u.Link == nil && u.Description == nil &&
		u.Language == nil && u.ImageURL == nil
}
