// Package feed provides the feed store: the in-memory, lock-guarded feed
// collection mirrored to a single file, together with its retention policy
// and search evaluator.
package feed

import (
	"errors"
	"fmt"

	"feedstore/internal/domain/entity"
)

// ErrFeedNotFound indicates that no feed exists under the requested ID.
// It matches entity.ErrNotFound via errors.Is.
var ErrFeedNotFound = fmt.Errorf("feed %w", entity.ErrNotFound)

// StorageError reports a failure to read or write the storage file.
// When returned from a mutation, the in-memory change has already been applied.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsStorage reports whether err is, or wraps, a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
