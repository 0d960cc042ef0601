// Package jsonfile persists the feed collection as a single JSON document.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"feedstore/internal/domain/entity"
	"feedstore/internal/repository"
)

const fileMode = 0o644

// FeedRepo reads and atomically replaces one JSON file.
// It holds no lock of its own; callers serialise access.
type FeedRepo struct {
	path string
}

func NewFeedRepo(path string) repository.FeedRepository {
	return &FeedRepo{path: path}
}

func (repo *FeedRepo) Path() string { return repo.path }

// Load reads the file. A missing file yields an empty collection and no error.
// Undecodable content yields an empty collection and an error wrapping
// repository.ErrCorrupt. Load never writes.
func (repo *FeedRepo) Load(ctx context.Context) (*entity.Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(repo.path)
	if errors.Is(err, os.ErrNotExist) {
		return entity.NewCollection(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("Load: ReadFile: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return entity.NewCollection(), nil
	}

	var c entity.Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return entity.NewCollection(), fmt.Errorf("Load: %s: %w: %v", repo.path, repository.ErrCorrupt, err)
	}
	return &c, nil
}

// Save writes the collection to a temp file next to the target, syncs it and
// renames it over the target. The previous file is left intact on failure.
func (repo *FeedRepo) Save(_ context.Context, c *entity.Collection) error {
	data, err := encode(c)
	if err != nil {
		return fmt.Errorf("Save: encode: %w", err)
	}

	dir := filepath.Dir(repo.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("Save: MkdirAll: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(repo.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("Save: CreateTemp: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("Save: Write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("Save: Sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("Save: Close: %w", err)
	}
	if err := os.Chmod(tmpName, fileMode); err != nil {
		return fmt.Errorf("Save: Chmod: %w", err)
	}
	if err := os.Rename(tmpName, repo.path); err != nil {
		return fmt.Errorf("Save: Rename: %w", err)
	}
	committed = true
	return nil
}

func encode(c *entity.Collection) ([]byte, error) {
	if c == nil {
		c = entity.NewCollection()
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
