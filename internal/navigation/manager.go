package navigation

//go:generate mockgen -destination=mock/mock_manager.go -package=mocknavigation -source=manager.go

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/0niSec/cephalon-seraph/internal/card"
	"github.com/0niSec/cephalon-seraph/internal/domain/item"
	apperrors "github.com/0niSec/cephalon-seraph/internal/errors"
	"github.com/0niSec/cephalon-seraph/internal/repositories/cardsessions"
	"github.com/0niSec/cephalon-seraph/internal/uuid"
)

// expireTimeout bounds the message edit made when a timer expires a card
const expireTimeout = 10 * time.Second

// MessageRef locates the chat message a card is bound to
type MessageRef struct {
	ChannelID string
	MessageID string
}

// SendFunc posts the first payload of a card and returns the message it created
type SendFunc func(ctx context.Context, payload *card.Payload, controls Controls) (MessageRef, error)

// PresentFunc replaces the bound message in place
type PresentFunc func(ctx context.Context, payload *card.Payload, controls Controls) error

// PriceSource fetches market prices for a set of market keys.
// Every key is present in the result; failed lookups carry an error.
type PriceSource interface {
	PricesFor(ctx context.Context, keys []string) map[string]item.PriceResult
}

// Messenger edits card messages outside of an interaction
type Messenger interface {
	DisableControls(ctx context.Context, ref MessageRef, controls Controls) error
}

// ManagerConfig holds the dependencies of a Manager
type ManagerConfig struct {
	Renderer    *card.Renderer
	Prices      PriceSource
	Messenger   Messenger
	Snapshots   cardsessions.Repository
	IDGenerator uuid.Generator
	Clock       Clock
	IdleTimeout time.Duration
	// Instance names this process among replicas sharing a snapshot store.
	// It must stay the same across restarts of one replica.
	Instance string
}

type entry struct {
	mu      sync.Mutex
	session Session
	ref     MessageRef
	timer   Timer
}

// Manager owns the live card sessions. Events on one session are handled
// one at a time; different sessions proceed independently.
type Manager struct {
	renderer  *card.Renderer
	prices    PriceSource
	messenger Messenger
	snapshots cardsessions.Repository
	ids       uuid.Generator
	clock     Clock
	idle      time.Duration
	instance  string

	mu      sync.RWMutex
	entries map[string]*entry
	closed  bool
}

// NewManager creates a session manager
func NewManager(cfg *ManagerConfig) *Manager {
	if cfg.Renderer == nil {
		panic("renderer is required")
	}
	if cfg.Prices == nil {
		panic("price source is required")
	}
	if cfg.Messenger == nil {
		panic("messenger is required")
	}
	if cfg.IdleTimeout <= 0 {
		panic("idle timeout must be positive")
	}

	m := &Manager{
		renderer:  cfg.Renderer,
		prices:    cfg.Prices,
		messenger: cfg.Messenger,
		snapshots: cfg.Snapshots,
		ids:       cfg.IDGenerator,
		clock:     cfg.Clock,
		idle:      cfg.IdleTimeout,
		instance:  cfg.Instance,
		entries:   make(map[string]*entry),
	}
	if m.snapshots == nil {
		m.snapshots = cardsessions.NewInMemoryRepository()
	}
	if m.ids == nil {
		m.ids = uuid.NewCompactGenerator()
	}
	if m.clock == nil {
		m.clock = realClock{}
	}
	return m
}

// Open creates a session for a freshly fetched record, sends its first view
// and starts the idle timer
func (m *Manager) Open(ctx context.Context, rec *item.Record, send SendFunc) (Session, error) {
	if rec == nil {
		return Session{}, apperrors.InvalidArgument("record is required")
	}

	if m.isClosed() {
		return Session{}, errClosed()
	}

	s := NewSession(m.ids.New(), rec, m.clock.Now(), m.idle)
	payload := m.render(ctx, s)

	ref, err := send(ctx, payload, s.Controls())
	if err != nil {
		return Session{}, apperrors.Wrapf(err, "failed to send card for %s", rec.Name)
	}

	e := &entry{session: s, ref: ref}
	e.mu.Lock()
	defer e.mu.Unlock()

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		// The message is already posted; the snapshot lets the next
		// process disable it.
		m.save(ctx, e)
		return Session{}, errClosed()
	}
	m.entries[s.ID] = e
	m.mu.Unlock()

	e.timer = m.schedule(s.ID, m.idle)
	m.save(ctx, e)

	log.Printf("[Navigation] Opened card %s for %s", s.ID, rec.Name)
	return s, nil
}

// SelectView switches the card to another view
func (m *Manager) SelectView(ctx context.Context, id string, kind card.ViewKind, present PresentFunc) (Session, error) {
	return m.apply(ctx, id, present, func(s Session) (Session, error) {
		return s.SelectView(kind)
	})
}

// Paginate moves a paginated view one page
func (m *Manager) Paginate(ctx context.Context, id string, dir Direction, present PresentFunc) (Session, error) {
	return m.apply(ctx, id, present, func(s Session) (Session, error) {
		return s.Paginate(dir)
	})
}

// SelectComponent opens the drop locations of the component at index
func (m *Manager) SelectComponent(ctx context.Context, id string, index int, present PresentFunc) (Session, error) {
	return m.apply(ctx, id, present, func(s Session) (Session, error) {
		if index < 0 || index >= len(s.Record.Components) {
			return s, apperrors.InvalidArgumentf("component %d does not exist", index)
		}
		return s.SelectComponent(s.Record.Components[index].Name)
	})
}

// apply runs one event against a session under its lock. The new state is
// committed only after the message was replaced.
func (m *Manager) apply(ctx context.Context, id string, present PresentFunc, transition func(Session) (Session, error)) (Session, error) {
	e := m.lookup(id)
	if e == nil {
		return Session{}, apperrors.Expiredf("card session %s not found", id).WithMeta("session_id", id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session.State == Active && !m.clock.Now().Before(e.session.ExpiresAt) {
		m.expireLocked(ctx, e)
	}

	next, err := transition(e.session)
	if err != nil {
		return e.session, err
	}

	payload := m.render(ctx, next)
	if err := present(ctx, payload, next.Controls()); err != nil {
		return e.session, apperrors.Wrapf(err, "failed to update card %s", id)
	}

	e.session = next.Touch(m.clock.Now(), m.idle)
	m.save(ctx, e)
	return e.session, nil
}

// Expire ends a session and disables the controls on its message
func (m *Manager) Expire(ctx context.Context, id string) error {
	e := m.lookup(id)
	if e == nil {
		return apperrors.Expiredf("card session %s not found", id).WithMeta("session_id", id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return m.expireLocked(ctx, e)
}

// expireLocked must be called with e.mu held
func (m *Manager) expireLocked(ctx context.Context, e *entry) error {
	if e.session.State == Expired {
		return nil
	}

	e.session = e.session.Expire()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}

	m.mu.Lock()
	delete(m.entries, e.session.ID)
	m.mu.Unlock()

	// The snapshot stays until the edit lands so DisableOrphans can retry it
	if err := m.messenger.DisableControls(ctx, e.ref, e.session.Controls()); err != nil {
		log.Printf("[Navigation] Failed to disable controls for card %s: %v", e.session.ID, err)
		return apperrors.Wrapf(err, "failed to disable card %s", e.session.ID)
	}

	if err := m.snapshots.Delete(ctx, e.session.ID); err != nil {
		log.Printf("[Navigation] Failed to delete snapshot %s: %v", e.session.ID, err)
	}

	log.Printf("[Navigation] Card %s expired", e.session.ID)
	return nil
}

// onTimer fires when a session's timer elapses. Events in flight may have
// pushed the deadline out, in which case the timer is re-armed.
func (m *Manager) onTimer(id string) {
	e := m.lookup(id)
	if e == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session.State != Active {
		return
	}
	if remaining := e.session.ExpiresAt.Sub(m.clock.Now()); remaining > 0 {
		e.timer = m.schedule(id, remaining)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), expireTimeout)
	defer cancel()
	_ = m.expireLocked(ctx, e)
}

func (m *Manager) schedule(id string, d time.Duration) Timer {
	return m.clock.AfterFunc(d, func() { m.onTimer(id) })
}

// DisableOrphans disables the controls of cards left behind by a previous
// process of this instance and clears their snapshots. Snapshots of other
// instances are left alone, as are those whose edit failed so a later call
// can retry. It returns the number of cards disabled.
func (m *Manager) DisableOrphans(ctx context.Context) (int, error) {
	snapshots, err := m.snapshots.List(ctx)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to list card sessions")
	}

	disabled := 0
	for _, snap := range snapshots {
		if snap.Instance != m.instance || m.lookup(snap.ID) != nil {
			continue
		}

		s := fromSnapshot(snap).Expire()
		ref := MessageRef{ChannelID: snap.ChannelID, MessageID: snap.MessageID}
		if err := m.messenger.DisableControls(ctx, ref, s.Controls()); err != nil {
			log.Printf("[Navigation] Failed to disable orphaned card %s: %v", snap.ID, err)
			continue
		}
		disabled++

		if err := m.snapshots.Delete(ctx, snap.ID); err != nil {
			log.Printf("[Navigation] Failed to delete snapshot %s: %v", snap.ID, err)
		}
	}
	return disabled, nil
}

// Session returns a copy of a live session
func (m *Manager) Session(id string) (Session, bool) {
	e := m.lookup(id)
	if e == nil {
		return Session{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session, true
}

// ActiveCount returns the number of live sessions
func (m *Manager) ActiveCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Close cancels every expiry timer. Snapshots are kept so the next process
// can disable the orphaned controls.
func (m *Manager) Close() {
	m.mu.Lock()
	m.closed = true
	entries := m.entries
	m.entries = make(map[string]*entry)
	m.mu.Unlock()

	for _, e := range entries {
		e.mu.Lock()
		if e.timer != nil {
			e.timer.Stop()
			e.timer = nil
		}
		e.mu.Unlock()
	}
}

func (m *Manager) isClosed() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.closed
}

func errClosed() error {
	return apperrors.Internalf("session manager is closed")
}

func (m *Manager) lookup(id string) *entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries[id]
}

func (m *Manager) render(ctx context.Context, s Session) *card.Payload {
	var prices map[string]item.PriceResult
	if keys := card.PriceKeys(s.Record, s.View); len(keys) > 0 {
		prices = m.prices.PricesFor(ctx, keys)
	}
	return m.renderer.Render(s.RenderInput(prices))
}

// save must be called with e.mu held
func (m *Manager) save(ctx context.Context, e *entry) {
	if err := m.snapshots.Save(ctx, m.toSnapshot(e)); err != nil {
		log.Printf("[Navigation] Failed to save snapshot %s: %v", e.session.ID, err)
	}
}

func (m *Manager) toSnapshot(e *entry) *cardsessions.Snapshot {
	return &cardsessions.Snapshot{
		ID:           e.session.ID,
		Instance:     m.instance,
		ChannelID:    e.ref.ChannelID,
		MessageID:    e.ref.MessageID,
		Record:       e.session.Record,
		View:         e.session.View,
		Page:         e.session.Page,
		ComponentKey: e.session.ComponentKey,
		CreatedAt:    e.session.CreatedAt,
		ExpiresAt:    e.session.ExpiresAt,
	}
}

func fromSnapshot(snap *cardsessions.Snapshot) Session {
	rec := snap.Record
	if rec == nil {
		rec = &item.Record{}
	}
	page := snap.Page
	if page < 1 {
		page = 1
	}
	return Session{
		ID:           snap.ID,
		Record:       rec,
		View:         snap.View,
		Page:         page,
		ComponentKey: snap.ComponentKey,
		State:        Active,
		CreatedAt:    snap.CreatedAt,
		ExpiresAt:    snap.ExpiresAt,
	}
}
