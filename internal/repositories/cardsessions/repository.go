package cardsessions

//go:generate mockgen -destination=mock/mock_repository.go -package=mockcardsessions -source=repository.go

import (
	"context"
	"time"

	"github.com/0niSec/cephalon-seraph/internal/card"
	"github.com/0niSec/cephalon-seraph/internal/domain/item"
)

// Snapshot is the persisted state of a live card. It lets a restarted
// process find the messages whose controls are still enabled. Instance names
// the replica that owns the card.
type Snapshot struct {
	ID           string
	Instance     string
	ChannelID    string
	MessageID    string
	Record       *item.Record
	View         card.ViewKind
	Page         int
	ComponentKey string
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// Repository stores card session snapshots
type Repository interface {
	Save(ctx context.Context, snapshot *Snapshot) error
	Get(ctx context.Context, id string) (*Snapshot, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Snapshot, error)
}
