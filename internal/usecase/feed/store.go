package feed

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"feedstore/internal/domain/entity"
	"feedstore/internal/observability/logging"
	"feedstore/internal/observability/metrics"
	"feedstore/internal/observability/tracing"
	"feedstore/internal/repository"
)

// Config holds the store settings.
type Config struct {
	HistoryDays       int
	MaxEntriesPerFeed int
	GeneralFeedTitle  string
}

// Status is a snapshot of the store's configuration and size.
type Status struct {
	FeedCount         int
	EntryCount        int
	HistoryDays       int
	MaxEntriesPerFeed int
	StoragePath       string
	GeneralFeedTitle  string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used by retention.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the generator of feed IDs and entry GUIDs.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// Store owns the feed collection. All reads take the shared lock and return
// deep copies; all mutations take the exclusive lock and run
// validate, mutate, prune and persist as one critical section.
type Store struct {
	mu     sync.RWMutex
	repo   repository.FeedRepository
	feeds  *entity.Collection
	cfg    Config
	policy RetentionPolicy

	// unsaved counts entries evicted at load time that the file still holds.
	unsaved PruneResult

	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// NewStore loads the collection from repo and applies retention to it.
// A corrupt file is logged and replaced by an empty collection in memory;
// the file itself is only rewritten by the next successful mutation.
// Any other load failure is returned as a *StorageError.
func NewStore(ctx context.Context, repo repository.FeedRepository, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{
		repo:   repo,
		cfg:    cfg,
		policy: RetentionPolicy{HistoryDays: cfg.HistoryDays, MaxEntries: cfg.MaxEntriesPerFeed},
		now:    time.Now,
		newID:  uuid.NewString,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	c, err := repo.Load(ctx)
	switch {
	case errors.Is(err, repository.ErrCorrupt):
		s.logger.Warn("feed storage unreadable, starting with empty collection",
			slog.String("path", repo.Path()),
			slog.Any("error", err))
	case err != nil:
		return nil, &StorageError{Op: "load", Err: err}
	}
	if c == nil {
		c = entity.NewCollection()
	}
	s.feeds = c

	res := s.policy.ApplyAll(s.feeds, s.now())
	s.recordPrune(ctx, res)
	s.unsaved = res
	metrics.UpdateCollectionSize(s.feeds.Len(), s.feeds.EntryCount())

	s.logger.Info("feed store loaded",
		slog.String("path", repo.Path()),
		slog.Int("feeds", s.feeds.Len()),
		slog.Int("entries", s.feeds.EntryCount()))
	return s, nil
}

// Config returns the store settings.
func (s *Store) Config() Config { return s.cfg }

// CreateFeed validates in, stores it under a fresh feed ID and persists the collection.
// On a *StorageError the feed is already visible and the ID is still returned.
func (s *Store) CreateFeed(ctx context.Context, in entity.FeedInput) (id string, err error) {
	ctx, span := tracing.StartSpan(ctx, "feed.create")
	defer func() { s.finish(span, "create_feed", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	id = s.freshFeedID()
	f, err := in.Build(id, s.newID)
	if err != nil {
		return "", err
	}
	span.SetAttributes(attribute.String("feed.id", id), attribute.Int("feed.entries", len(f.Entries)))

	s.feeds.Put(f)
	s.prune(ctx)
	return id, s.persist(ctx, "create feed")
}

// GetFeed returns a copy of the feed stored under id.
func (s *Store) GetFeed(ctx context.Context, id string) (f *entity.Feed, err error) {
	_, span := tracing.StartSpan(ctx, "feed.get", attribute.String("feed.id", id))
	defer func() { s.finish(span, "get_feed", err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.feeds.Get(id)
	if !ok {
		return nil, ErrFeedNotFound
	}
	return stored.Clone(), nil
}

// GetAllFeeds returns copies of all feeds in collection order.
func (s *Store) GetAllFeeds(ctx context.Context) []*entity.Feed {
	_, span := tracing.StartSpan(ctx, "feed.list")
	defer func() { s.finish(span, "list_feeds", nil) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	feeds := s.feeds.Feeds()
	out := make([]*entity.Feed, 0, len(feeds))
	for _, f := range feeds {
		out = append(out, f.Clone())
	}
	return out
}

// UpdateFeed applies u to the feed stored under id and persists the collection.
// Entries are not touched. An update with no fields is a ValidationError.
func (s *Store) UpdateFeed(ctx context.Context, id string, u entity.FeedUpdate) (f *entity.Feed, err error) {
	ctx, span := tracing.StartSpan(ctx, "feed.update", attribute.String("feed.id", id))
	defer func() { s.finish(span, "update_feed", err) }()

	if u.IsEmpty() {
		return nil, &entity.ValidationError{Field: "body", Message: "at least one field is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.feeds.Get(id)
	if !ok {
		return nil, ErrFeedNotFound
	}
	if err := u.Apply(stored); err != nil {
		return nil, err
	}
	s.prune(ctx)
	return stored.Clone(), s.persist(ctx, "update feed")
}

// DeleteFeed removes the feed stored under id and persists the collection.
func (s *Store) DeleteFeed(ctx context.Context, id string) (err error) {
	ctx, span := tracing.StartSpan(ctx, "feed.delete", attribute.String("feed.id", id))
	defer func() { s.finish(span, "delete_feed", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.feeds.Delete(id) {
		return ErrFeedNotFound
	}
	s.prune(ctx)
	return s.persist(ctx, "delete feed")
}

// AddEntry validates in, prepends it to the feed stored under feedID and
// persists the collection. It returns the entry GUID, generated when in has none.
// An entry already outside the retention window is accepted and immediately pruned.
func (s *Store) AddEntry(ctx context.Context, feedID string, in entity.EntryInput) (guid string, err error) {
	ctx, span := tracing.StartSpan(ctx, "feed.add_entry", attribute.String("feed.id", feedID))
	defer func() { s.finish(span, "add_entry", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.feeds.Get(feedID)
	if !ok {
		return "", ErrFeedNotFound
	}

	freshGUID := func() string {
		for {
			g := s.newID()
			if !f.HasEntry(g) {
				return g
			}
		}
	}
	e, err := in.Build("", freshGUID)
	if err != nil {
		return "", err
	}
	if err := f.AddEntry(e); err != nil {
		return "", err
	}
	span.SetAttributes(attribute.String("entry.guid", e.GUID))

	s.prune(ctx)
	return e.GUID, s.persist(ctx, "add entry")
}

// Search evaluates q over the current collection. See Query.Evaluate.
func (s *Store) Search(ctx context.Context, q Query) []*entity.Feed {
	_, span := tracing.StartSpan(ctx, "feed.search",
		attribute.String("query.title", q.Title),
		attribute.Int("query.limit", q.Limit),
		attribute.Bool("query.include_empty", q.IncludeEmpty))
	defer func() { s.finish(span, "search", nil) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	return q.Evaluate(s.feeds.Feeds())
}

// Status reports the current size and settings of the store.
func (s *Store) Status(ctx context.Context) Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		FeedCount:         s.feeds.Len(),
		EntryCount:        s.feeds.EntryCount(),
		HistoryDays:       s.cfg.HistoryDays,
		MaxEntriesPerFeed: s.cfg.MaxEntriesPerFeed,
		StoragePath:       s.repo.Path(),
		GeneralFeedTitle:  s.cfg.GeneralFeedTitle,
	}
}

// Prune runs retention over the whole collection and persists it when
// anything was evicted. The result includes entries evicted at load time
// that have not been written back yet.
func (s *Store) Prune(ctx context.Context) (res PruneResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "feed.prune")
	defer func() { s.finish(span, "prune", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	res = s.prune(ctx)
	res.add(s.unsaved)
	span.SetAttributes(attribute.Int("pruned.expired", res.Expired), attribute.Int("pruned.overflow", res.Overflow))
	if res.Total() == 0 {
		return res, nil
	}
	return res, s.persist(ctx, "prune")
}

// freshFeedID returns a generated ID not yet present in the collection.
// Caller holds the write lock.
func (s *Store) freshFeedID() string {
	for {
		id := s.newID()
		if _, exists := s.feeds.Get(id); !exists {
			return id
		}
	}
}

// prune applies retention to the whole collection. Caller holds the write lock.
func (s *Store) prune(ctx context.Context) PruneResult {
	res := s.policy.ApplyAll(s.feeds, s.now())
	s.recordPrune(ctx, res)
	return res
}

func (s *Store) recordPrune(ctx context.Context, res PruneResult) {
	if res.Total() == 0 {
		return
	}
	metrics.RecordPruned(metrics.RuleAge, res.Expired)
	metrics.RecordPruned(metrics.RuleCount, res.Overflow)
	logging.WithRequestID(ctx, s.logger).Info("entries pruned",
		slog.Int("expired", res.Expired),
		slog.Int("overflow", res.Overflow))
}

// persist saves the collection. Caller holds the write lock.
// The in-memory state stays authoritative when saving fails.
func (s *Store) persist(ctx context.Context, op string) error {
	start := time.Now()
	err := s.repo.Save(ctx, s.feeds)
	metrics.RecordPersist(time.Since(start), err)
	metrics.UpdateCollectionSize(s.feeds.Len(), s.feeds.EntryCount())

	if err != nil {
		logging.WithRequestID(ctx, s.logger).Error("failed to persist feeds",
			slog.String("op", op),
			slog.String("path", s.repo.Path()),
			slog.Any("error", err))
		return &StorageError{Op: op, Err: err}
	}
	s.unsaved = PruneResult{}
	return nil
}

// finish records the operation outcome and ends its span.
func (s *Store) finish(span trace.Span, op string, err error) {
	metrics.RecordOperation(op, resultOf(err))
	tracing.EndSpan(span, err)
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case entity.IsValidation(err):
		return metrics.ResultInvalid
	case errors.Is(err, entity.ErrNotFound):
		return metrics.ResultNotFound
	case IsStorage(err):
		return metrics.ResultStorageErr
	default:
		return metrics.ResultError
	}
}
