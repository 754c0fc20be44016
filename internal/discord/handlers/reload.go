package handlers

import (
	"fmt"
	"log"

	"github.com/0niSec/cephalon-seraph/internal/discord/core"
)

// Reloader re-reads a configuration file
type Reloader interface {
	Reload() error
}

// ReloadHandler lets the owner reload the emoji table without a restart
type ReloadHandler struct {
	emoji Reloader
}

// NewReloadHandler creates a reload handler
func NewReloadHandler(emoji Reloader) *ReloadHandler {
	if emoji == nil {
		panic("reloader is required")
	}
	return &ReloadHandler{emoji: emoji}
}

// Handle reloads the emoji table
func (h *ReloadHandler) Handle(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	if err := h.emoji.Reload(); err != nil {
		return nil, core.NewHandlerError(err, fmt.Sprintf("Reload failed: %v", err), core.StatusInternal)
	}

	log.Printf("[Reload] Emoji table reloaded by %s", ctx.UserID)
	return &core.HandlerResult{
		Response: core.NewEphemeralResponse("Emoji table reloaded."),
	}, nil
}
