package itemcache

//go:generate mockgen -destination=mock/mock_repository.go -package=mockitemcache -source=repository.go

import (
	"context"

	"github.com/0niSec/cephalon-seraph/internal/domain/item"
)

// Repository caches item records by lookup name
type Repository interface {
	// Get returns a not_found error on a cache miss
	Get(ctx context.Context, name string) (*item.Record, error)
	Set(ctx context.Context, name string, record *item.Record) error
}
