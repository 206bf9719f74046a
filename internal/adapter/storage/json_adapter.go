package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rl1809/stockfile/internal/core/domain"
	"github.com/rl1809/stockfile/internal/port"
)

const (
	DefaultFileName = "inventory.json"
	jsonIndent      = "    "
	fileMode        = 0o644
)

// JSONFileAdapter persists a store as a single pretty-printed JSON object.
type JSONFileAdapter struct {
	path string
}

func NewJSONFileAdapter(path string) *JSONFileAdapter {
	if path == "" {
		path = DefaultFileName
	}
	return &JSONFileAdapter{path: path}
}

func (j *JSONFileAdapter) Path() string {
	return j.path
}

func (j *JSONFileAdapter) Load(ctx context.Context) (*domain.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(j.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", port.ErrStoreNotFound, j.path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", j.path, err)
	}

	store := domain.NewStore()
	if err := json.Unmarshal(content, store); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", port.ErrMalformedStore, j.path, err)
	}
	return store, nil
}

func (j *JSONFileAdapter) Save(ctx context.Context, store *domain.Store) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(store, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	encoded = append(encoded, '\n')

	if err := os.WriteFile(j.path, encoded, fileMode); err != nil {
		return fmt.Errorf("write %s: %w", j.path, err)
	}
	return nil
}
