package feed

import "feedstore/internal/domain/entity"

// EntryDTO is the JSON form of a feed entry.
type EntryDTO struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	PubDate     string `json:"pubDate"`
	GUID        string `json:"guid"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// DTO is the JSON form of a feed.
type DTO struct {
	FeedID      string     `json:"feedId"`
	Title       string     `json:"title"`
	Link        string     `json:"link"`
	Description string     `json:"description"`
	Language    string     `json:"language"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Entries     []EntryDTO `json:"entries"`
}

type ListResponse struct {
	Count int   `json:"count"`
	Feeds []DTO `json:"feeds"`
}

type SearchResponse struct {
	Count int               `json:"count"`
	Query map[string]string `json:"query"`
	Feeds []DTO             `json:"feeds"`
}

type CreatedResponse struct {
	Message string `json:"message"`
	FeedID  string `json:"feedId"`
}

type EntryCreatedResponse struct {
	Message string `json:"message"`
	EntryID string `json:"entryId"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type StatusResponse struct {
	Status            string `json:"status"`
	FeedCount         int    `json:"feed_count"`
	EntryCount        int    `json:"entry_count"`
	HistoryDays       int    `json:"history_days"`
	MaxEntriesPerFeed int    `json:"max_entries_per_feed"`
	StoragePath       string `json:"storage_path"`
}

func toDTO(f *entity.Feed) DTO {
	out := DTO{
		FeedID:      f.FeedID,
		Title:       f.Title,
		Link:        f.Link,
		Description: f.Description,
		Language:    f.Language,
		ImageURL:    f.ImageURL,
		Entries:     make([]EntryDTO, 0, len(f.Entries)),
	}
	for _, e := range f.Entries {
		out.Entries = append(out.Entries, EntryDTO{
			Title:       e.Title,
			Link:        e.Link,
			Description: e.Description,
			PubDate:     e.PubDate,
			GUID:        e.GUID,
			ImageURL:    e.ImageURL,
		})
	}
	return out
}

func toDTOs(fs []*entity.Feed) []DTO {
	out := make([]DTO, 0, len(fs))
	for _, f := range fs {
		out = append(out, toDTO(f))
	}
	return out
}
