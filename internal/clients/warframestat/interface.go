package warframestat

//go:generate mockgen -destination=mock/mock_client.go -package=mockwarframestat . Client

import (
	"context"

	"github.com/0niSec/cephalon-seraph/internal/domain/item"
)

// Client reads the WarframeStat.us items API
type Client interface {
	// GetItem returns the closest match for name
	GetItem(ctx context.Context, name string) (*item.Record, error)
	// Search returns every item whose name matches query
	Search(ctx context.Context, query string) ([]item.Summary, error)
}
