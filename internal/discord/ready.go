package discord

import (
	"sync/atomic"

	"github.com/bwmarrin/discordgo"
)

// HandlerAdder is the part of *discordgo.Session that registers event handlers
type HandlerAdder interface {
	AddHandler(handler interface{}) func()
}

// ReadyTracker follows gateway connectivity from session events, so it can be
// read from any goroutine
type ReadyTracker struct {
	ready atomic.Bool
}

// NewReadyTracker registers the tracker on a session. Call it before Open so
// the first Ready event is seen.
func NewReadyTracker(s HandlerAdder) *ReadyTracker {
	t := &ReadyTracker{}
	s.AddHandler(t.OnReady)
	s.AddHandler(t.OnResumed)
	s.AddHandler(t.OnDisconnect)
	return t
}

// Ready reports whether the gateway is connected
func (t *ReadyTracker) Ready() bool {
	return t.ready.Load()
}

func (t *ReadyTracker) OnReady(_ *discordgo.Session, _ *discordgo.Ready) {
	t.ready.Store(true)
}

func (t *ReadyTracker) OnResumed(_ *discordgo.Session, _ *discordgo.Resumed) {
	t.ready.Store(true)
}

func (t *ReadyTracker) OnDisconnect(_ *discordgo.Session, _ *discordgo.Disconnect) {
	t.ready.Store(false)
}
