package repository

import (
	"context"
	"errors"

	"feedstore/internal/domain/entity"
)

// ErrCorrupt is returned (wrapped) by Load when the stored document cannot be
// decoded. Load still returns a usable empty collection alongside it.
var ErrCorrupt = errors.New("feed storage corrupt")

// FeedRepository loads and saves the whole feed collection as one unit.
type FeedRepository interface {
	Load(ctx context.Context) (*entity.Collection, error)
	Save(ctx context.Context, c *entity.Collection) error
	Path() string
}
