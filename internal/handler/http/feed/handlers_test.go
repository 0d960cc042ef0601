package feed_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedstore/internal/domain/entity"
	"feedstore/internal/handler/http/feed"
	"feedstore/internal/infra/adapter/persistence/jsonfile"
	"feedstore/internal/repository"
	feedUC "feedstore/internal/usecase/feed"
)

/* ───────── テストヘルパー ───────── */

var testNow = time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)

var testConfig = feedUC.Config{HistoryDays: 30, MaxEntriesPerFeed: 100, GeneralFeedTitle: "All Feeds"}

func newMux(t *testing.T, repo repository.FeedRepository) *http.ServeMux {
	t.Helper()
	store, err := feedUC.NewStore(context.Background(), repo, testConfig,
		feedUC.WithClock(func() time.Time { return testNow }))
	require.NoError(t, err)

	mux := http.NewServeMux()
	feed.Register(mux, store, nil)
	return mux
}

func newStore(t *testing.T) *feedUC.Store {
	t.Helper()
	store, err := feedUC.NewStore(context.Background(),
		jsonfile.NewFeedRepo(filepath.Join(t.TempDir(), "feeds.json")), testConfig,
		feedUC.WithClock(func() time.Time { return testNow }))
	require.NoError(t, err)
	return store
}

func newFileMux(t *testing.T) *http.ServeMux {
	t.Helper()
	return newMux(t, jsonfile.NewFeedRepo(filepath.Join(t.TempDir(), "feeds.json")))
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func createFeed(t *testing.T, h http.Handler, body string) string {
	t.Helper()
	rr := do(t, h, http.MethodPost, "/feeds", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[feed.CreatedResponse](t, rr).FeedID
}

// failingRepo loads an empty collection and refuses every save.
type failingRepo struct{}

func (failingRepo) Load(context.Context) (*entity.Collection, error) {
	return entity.NewCollection(), nil
}
func (failingRepo) Save(context.Context, *entity.Collection) error {
	return errors.New("Save: Rename: read-only file system")
}
func (failingRepo) Path() string { return "/readonly/feeds.json" }

const techBlog = `{"title": "Tech Blog", "link": "https://t.example", "description": "news"}`

/* ───────── テストケース ───────── */

func TestScenario_CreateAddEntryRenderXML(t *testing.T) {
	mux := newFileMux(t)

	id := createFeed(t, mux, techBlog)
	require.NotEmpty(t, id)

	rr := do(t, mux, http.MethodPost, "/feeds/"+id+"/entries",
		`{"title": "A", "link": "https://t.example/a", "description": "d", "pubDate": "Mon, 13 May 2025 10:00:00 GMT"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	created := decode[feed.EntryCreatedResponse](t, rr)
	assert.Equal(t, "Entry added successfully", created.Message)
	require.NotEmpty(t, created.EntryID)

	rr = do(t, mux, http.MethodGet, "/feeds/"+id, "")
	require.Equal(t, http.StatusOK, rr.Code)
	got := decode[feed.DTO](t, rr)
	assert.Equal(t, "Tech Blog", got.Title)
	assert.Equal(t, entity.DefaultLanguage, got.Language)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, created.EntryID, got.Entries[0].GUID)
	assert.Equal(t, "Tue, 13 May 2025 10:00:00 GMT", got.Entries[0].PubDate)

	rr = do(t, mux, http.MethodGet, "/feeds/"+id+"/xml", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/rss+xml; charset=utf-8", rr.Header().Get("Content-Type"))
	doc := rr.Body.String()
	assert.Contains(t, doc, "<title>Tech Blog</title>")
	assert.Contains(t, doc, "<title>A</title>")
	assert.Equal(t, 1, strings.Count(doc, "<item>"))

	parsed, err := gofeed.NewParser().ParseString(doc)
	require.NoError(t, err)
	require.Len(t, parsed.Items, 1)
	assert.Equal(t, created.EntryID, parsed.Items[0].GUID)
}

func TestCreateHandler_WithEntries(t *testing.T) {
	mux := newFileMux(t)

	id := createFeed(t, mux, `{
		"title": "Cooking", "link": "https://c.example", "description": "recipes",
		"language": "fr-FR", "imageUrl": "https://c.example/logo.png",
		"entries": [
			{"title": "Soup", "link": "https://c.example/soup", "description": "d", "pubDate": "2025-05-10T09:00:00Z", "guid": "soup"},
			{"title": "Pasta", "link": "https://c.example/pasta", "description": "d", "pubDate": "2025-05-12", "guid": "pasta"}
		]
	}`)

	got := decode[feed.DTO](t, do(t, mux, http.MethodGet, "/feeds/"+id, ""))
	assert.Equal(t, "fr-FR", got.Language)
	assert.Equal(t, "https://c.example/logo.png", got.ImageURL)
	require.Len(t, got.Entries, 2)
	// 要求順に先頭へ追加されるので最後の要素が先頭になる
	assert.Equal(t, "pasta", got.Entries[0].GUID)
	assert.Equal(t, "soup", got.Entries[1].GUID)
}

func TestCreateHandler_BadRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "missing title",
			body:    `{"link": "https://t.example", "description": "news"}`,
			wantMsg: "title",
		},
		{
			name:    "invalid link",
			body:    `{"title": "T", "link": "not a url", "description": "news"}`,
			wantMsg: "link",
		},
		{
			name:    "invalid entry date",
			body:    `{"title": "T", "link": "https://t.example", "description": "news", "entries": [{"title": "A", "link": "https://t.example/a", "description": "d", "pubDate": "yesterday"}]}`,
			wantMsg: "entries[0].pubDate",
		},
		{
			name:    "invalid JSON",
			body:    `{"title": `,
			wantMsg: "invalid JSON body",
		},
		{
			name:    "wrong type",
			body:    `{"title": 42}`,
			wantMsg: "invalid JSON body",
		},
		{
			name:    "empty body",
			body:    "",
			wantMsg: "request body is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newFileMux(t)

			rr := do(t, mux, http.MethodPost, "/feeds", tt.body)
			require.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())
			assert.Contains(t, decode[feed.ErrorResponse](t, rr).Error, tt.wantMsg)

			list := decode[feed.ListResponse](t, do(t, mux, http.MethodGet, "/feeds", ""))
			assert.Zero(t, list.Count, "failed create must not store anything")
		})
	}
}

func TestCreateHandler_BodyTooLarge(t *testing.T) {
	mux := newFileMux(t)

	req := httptest.NewRequest(http.MethodPost, "/feeds", strings.NewReader(techBlog))
	rr := httptest.NewRecorder()
	req.Body = http.MaxBytesReader(rr, req.Body, 16)
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Equal(t, "request body too large", decode[feed.ErrorResponse](t, rr).Error)
}

func TestCreateHandler_StorageFailure(t *testing.T) {
	mux := newMux(t, failingRepo{})

	rr := do(t, mux, http.MethodPost, "/feeds", techBlog)
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "internal server error", decode[feed.ErrorResponse](t, rr).Error)

	// メモリ上の状態は更新済み
	list := decode[feed.ListResponse](t, do(t, mux, http.MethodGet, "/feeds", ""))
	assert.Equal(t, 1, list.Count)
}

func TestListHandler(t *testing.T) {
	mux := newFileMux(t)

	rr := do(t, mux, http.MethodGet, "/feeds", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"count": 0, "feeds": []}`, rr.Body.String())

	first := createFeed(t, mux, techBlog)
	second := createFeed(t, mux, `{"title": "Cooking", "link": "https://c.example", "description": "recipes"}`)

	list := decode[feed.ListResponse](t, do(t, mux, http.MethodGet, "/feeds", ""))
	require.Equal(t, 2, list.Count)
	assert.Equal(t, first, list.Feeds[0].FeedID)
	assert.Equal(t, second, list.Feeds[1].FeedID)
	assert.NotNil(t, list.Feeds[0].Entries)
}

func TestNotFound(t *testing.T) {
	mux := newFileMux(t)
	entry := `{"title": "A", "link": "https://t.example/a", "description": "d", "pubDate": "2025-05-13"}`

	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"get", http.MethodGet, "/feeds/missing", ""},
		{"xml", http.MethodGet, "/feeds/missing/xml", ""},
		{"update", http.MethodPut, "/feeds/missing", `{"title": "x"}`},
		{"delete", http.MethodDelete, "/feeds/missing", ""},
		{"add entry", http.MethodPost, "/feeds/missing/entries", entry},
		{"blank id", http.MethodGet, "/feeds/%20", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, mux, tt.method, tt.target, tt.body)
			assert.Equal(t, http.StatusNotFound, rr.Code, rr.Body.String())
			assert.Contains(t, decode[feed.ErrorResponse](t, rr).Error, "not found")
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newFileMux(t)
	rr := do(t, mux, http.MethodPatch, "/feeds", `{}`)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestUpdateHandler(t *testing.T) {
	mux := newFileMux(t)
	id := createFeed(t, mux, techBlog)
	require.Equal(t, http.StatusCreated, do(t, mux, http.MethodPost, "/feeds/"+id+"/entries",
		`{"title": "A", "link": "https://t.example/a", "description": "d", "pubDate": "2025-05-13"}`).Code)

	rr := do(t, mux, http.MethodPut, "/feeds/"+id, `{"title": "Tech Weekly", "language": "ja-JP"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	got := decode[feed.DTO](t, rr)
	assert.Equal(t, "Tech Weekly", got.Title)
	assert.Equal(t, "ja-JP", got.Language)
	assert.Equal(t, "news", got.Description)
	assert.Len(t, got.Entries, 1, "update must not touch entries")

	t.Run("empty update", func(t *testing.T) {
		rr := do(t, mux, http.MethodPut, "/feeds/"+id, `{}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decode[feed.ErrorResponse](t, rr).Error, "at least one field is required")
	})

	t.Run("invalid link leaves feed unchanged", func(t *testing.T) {
		rr := do(t, mux, http.MethodPut, "/feeds/"+id, `{"title": "Changed", "link": "ftp://t.example"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		got := decode[feed.DTO](t, do(t, mux, http.MethodGet, "/feeds/"+id, ""))
		assert.Equal(t, "Tech Weekly", got.Title)
		assert.Equal(t, "https://t.example", got.Link)
	})
}

func TestDeleteHandler(t *testing.T) {
	mux := newFileMux(t)
	id := createFeed(t, mux, techBlog)

	rr := do(t, mux, http.MethodDelete, "/feeds/"+id, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Feed deleted successfully", decode[feed.MessageResponse](t, rr).Message)

	assert.Equal(t, http.StatusNotFound, do(t, mux, http.MethodGet, "/feeds/"+id, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, mux, http.MethodDelete, "/feeds/"+id, "").Code)
}

func TestAddEntryHandler_Errors(t *testing.T) {
	mux := newFileMux(t)
	id := createFeed(t, mux, techBlog)
	target := "/feeds/" + id + "/entries"

	rr := do(t, mux, http.MethodPost, target,
		`{"title": "A", "link": "https://t.example/a", "description": "d", "pubDate": "2025-05-13", "guid": "dup"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "dup", decode[feed.EntryCreatedResponse](t, rr).EntryID)

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"duplicate guid", `{"title": "B", "link": "https://t.example/b", "description": "d", "pubDate": "2025-05-14", "guid": "dup"}`, "already exists"},
		{"missing pubDate", `{"title": "B", "link": "https://t.example/b", "description": "d"}`, "pubDate"},
		{"bad image url", `{"title": "B", "link": "https://t.example/b", "description": "d", "pubDate": "2025-05-14", "imageUrl": "nope"}`, "imageUrl"},
		{"invalid JSON", `[`, "invalid JSON body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, mux, http.MethodPost, target, tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())
			assert.Contains(t, decode[feed.ErrorResponse](t, rr).Error, tt.wantMsg)
		})
	}

	got := decode[feed.DTO](t, do(t, mux, http.MethodGet, "/feeds/"+id, ""))
	assert.Len(t, got.Entries, 1)
}

func TestStatusHandler(t *testing.T) {
	repo := jsonfile.NewFeedRepo(filepath.Join(t.TempDir(), "feeds.json"))
	mux := newMux(t, repo)
	id := createFeed(t, mux, techBlog)
	require.Equal(t, http.StatusCreated, do(t, mux, http.MethodPost, "/feeds/"+id+"/entries",
		`{"title": "A", "link": "https://t.example/a", "description": "d", "pubDate": "2025-05-13"}`).Code)

	rr := do(t, mux, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"status": "online",
		"feed_count": 1,
		"entry_count": 1,
		"history_days": 30,
		"max_entries_per_feed": 100,
		"storage_path": `+mustJSON(t, repo.Path())+`
	}`, rr.Body.String())
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
