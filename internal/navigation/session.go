package navigation

import (
	"time"

	"github.com/0niSec/cephalon-seraph/internal/card"
	"github.com/0niSec/cephalon-seraph/internal/domain/item"
	apperrors "github.com/0niSec/cephalon-seraph/internal/errors"
)

// State is the lifecycle state of a card session
type State int

const (
	Active State = iota
	Expired
)

func (s State) String() string {
	if s == Expired {
		return "expired"
	}
	return "active"
}

// Direction is a pagination step
type Direction int

const (
	Next Direction = iota
	Previous
)

func (d Direction) String() string {
	if d == Previous {
		return "prev"
	}
	return "next"
}

// ParseDirection resolves "next" or "prev"
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "next":
		return Next, true
	case "prev":
		return Previous, true
	default:
		return Next, false
	}
}

// Session is one interactive card. Transitions return a new value and leave
// the receiver untouched, so a failed event never leaves a half-applied state.
type Session struct {
	ID           string
	Record       *item.Record
	View         card.ViewKind
	Page         int
	ComponentKey string
	State        State
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// NewSession starts an active session on the basic info view
func NewSession(id string, rec *item.Record, now time.Time, idle time.Duration) Session {
	return Session{
		ID:        id,
		Record:    rec,
		View:      card.BasicInfo,
		Page:      1,
		State:     Active,
		CreatedAt: now,
		ExpiresAt: now.Add(idle),
	}
}

func (s Session) checkActive() error {
	if s.State != Active {
		return apperrors.Expiredf("card session %s has expired", s.ID).WithMeta("session_id", s.ID)
	}
	return nil
}

// SelectView switches to a view offered by the menu
func (s Session) SelectView(kind card.ViewKind) (Session, error) {
	if err := s.checkActive(); err != nil {
		return s, err
	}
	family := s.Record.Family()
	if !card.IsAllowed(family, kind) {
		return s, apperrors.InvalidArgumentf("%s is not available for a %s", kind.Label(), family)
	}
	if !card.IsOffered(s.Record, kind) {
		return s, apperrors.InvalidArgumentf("%s has no %s", s.Record.Name, kind.Label())
	}

	next := s
	next.View = kind
	next.Page = 1
	next.ComponentKey = ""
	return next, nil
}

// Paginate moves one page through a paginated view
func (s Session) Paginate(dir Direction) (Session, error) {
	if err := s.checkActive(); err != nil {
		return s, err
	}
	if !s.View.Paginated() {
		return s, apperrors.InvalidArgumentf("%s is not paginated", s.View.Label())
	}

	next := s
	switch dir {
	case Next:
		if !s.hasNextPage() {
			return s, apperrors.InvalidArgument("already on the last page")
		}
		next.Page++
	case Previous:
		if !s.hasPreviousPage() {
			return s, apperrors.InvalidArgument("already on the first page")
		}
		next.Page--
	default:
		return s, apperrors.InvalidArgumentf("unknown direction %d", dir)
	}
	return next, nil
}

// SelectComponent opens the drop locations of one weapon component
func (s Session) SelectComponent(key string) (Session, error) {
	if err := s.checkActive(); err != nil {
		return s, err
	}
	if s.Record.Family() != item.FamilyWeapon {
		return s, apperrors.InvalidArgument("only weapons have component drop locations")
	}
	if s.View != card.Components {
		return s, apperrors.InvalidArgument("components can only be opened from the components view")
	}
	c, ok := s.Record.Component(key)
	if !ok || !c.Droppable() {
		return s, apperrors.InvalidArgumentf("%s has no drop locations", key)
	}

	next := s
	next.View = card.ComponentDropLocations
	next.Page = 1
	next.ComponentKey = c.Name
	return next, nil
}

// Expire ends the session. It is terminal and idempotent.
func (s Session) Expire() Session {
	next := s
	next.State = Expired
	return next
}

// Touch pushes the idle deadline forward
func (s Session) Touch(now time.Time, idle time.Duration) Session {
	next := s
	next.ExpiresAt = now.Add(idle)
	return next
}

// TotalPages returns the page count of the current view
func (s Session) TotalPages() int {
	if !s.View.Paginated() {
		return 1
	}
	return card.TotalPages(len(s.Record.Drops))
}

func (s Session) hasNextPage() bool {
	return s.View.Paginated() && s.Page*card.PageSize < len(s.Record.Drops)
}

func (s Session) hasPreviousPage() bool {
	return s.View.Paginated() && s.Page > 1
}

// RenderInput builds the renderer input for the current view
func (s Session) RenderInput(prices map[string]item.PriceResult) card.Input {
	return card.Input{
		Record:       s.Record,
		View:         s.View,
		Page:         s.Page,
		ComponentKey: s.ComponentKey,
		Prices:       prices,
	}
}
