package routers

import (
	"github.com/0niSec/cephalon-seraph/internal/discord/core"
	"github.com/0niSec/cephalon-seraph/internal/discord/handlers"
	"github.com/0niSec/cephalon-seraph/internal/discord/middleware"
)

// NewHelpRouter registers /help
func NewHelpRouter(pipeline *core.Pipeline) {
	core.NewRouter(HelpCommand, pipeline).
		CommandFunc(handlers.HandleHelp).
		Register()
}

// NewReloadRouter registers the owner-only /reload
func NewReloadRouter(pipeline *core.Pipeline, emoji handlers.Reloader, ownerID string) {
	handler := handlers.NewReloadHandler(emoji)

	core.NewRouter(ReloadCommand, pipeline).
		Use(middleware.OwnerOnlyMiddleware(ownerID)).
		CommandFunc(handler.Handle).
		Register()
}
