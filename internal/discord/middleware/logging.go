package middleware

import (
	"log"
	"time"

	"github.com/0niSec/cephalon-seraph/internal/discord/core"
)

// LoggingMiddleware logs each interaction and how long it took. Autocomplete
// fires on every keystroke and is left out.
func LoggingMiddleware() core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			if ctx.IsAutocomplete() {
				return next.Handle(ctx)
			}

			name := describe(ctx)
			log.Printf("[Discord] %s, User: %s, Guild: %s", name, ctx.UserID, ctx.GuildID)

			start := time.Now()
			result, err := next.Handle(ctx)
			log.Printf("[Discord] %s completed in %v", name, time.Since(start))

			return result, err
		})
	}
}

// describe names the interaction for log lines
func describe(ctx *core.InteractionContext) string {
	switch ctx.Kind {
	case core.KindCommand:
		if sub := ctx.Subcommand(); sub != "" {
			return "/" + ctx.CommandName() + " " + sub
		}
		return "/" + ctx.CommandName()
	case core.KindAutocomplete:
		return "autocomplete /" + ctx.CommandName() + " " + ctx.Subcommand()
	case core.KindComponent:
		if id, err := core.ParseCustomID(ctx.ComponentID()); err == nil {
			return "component " + id.Domain + ":" + id.Action + " (card " + id.Target + ")"
		}
		return "component " + ctx.ComponentID()
	}
	return "interaction " + ctx.ID
}
