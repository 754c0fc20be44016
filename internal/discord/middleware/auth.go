package middleware

import (
	"github.com/0niSec/cephalon-seraph/internal/discord/core"
)

const ownerOnlyMessage = "This command is restricted to the bot owner."

// OwnerOnlyMiddleware lets only ownerID through. An empty ownerID locks the
// route for everyone.
func OwnerOnlyMiddleware(ownerID string) core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			if ownerID == "" || ctx.UserID != ownerID {
				return nil, core.Forbidden(ownerOnlyMessage)
			}
			return next.Handle(ctx)
		})
	}
}
