package port

import (
	"context"
	"errors"

	"github.com/rl1809/stockfile/internal/core/domain"
)

type StockRepository interface {
	// Load reads the persisted store
	Load(ctx context.Context) (*domain.Store, error)

	// Save replaces the persisted store with the given one
	Save(ctx context.Context, store *domain.Store) error
}

var (
	// ErrStoreNotFound is returned by Load when nothing has been persisted yet
	ErrStoreNotFound = errors.New("store not found")

	// ErrMalformedStore is returned by Load when persisted data cannot be decoded
	ErrMalformedStore = errors.New("malformed store data")
)
