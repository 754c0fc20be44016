package middleware

import (
	"fmt"
	"log"
	"runtime/debug"

	"github.com/0niSec/cephalon-seraph/internal/discord/core"
	apperrors "github.com/0niSec/cephalon-seraph/internal/errors"
)

// User notices for errors that reach the middleware without a HandlerError
const (
	ExpiredMessage     = "This card has expired. Run `/search` again for a fresh one."
	InvalidMessage     = "That option isn't available on this card."
	ForbiddenMessage   = "You are not allowed to use this command."
	UnavailableMessage = "Couldn't reach the item database right now. Please try again later."
	GenericMessage     = "An error occurred while processing your request."
)

var noticeByStatus = map[core.Status]string{
	core.StatusGone:       ExpiredMessage,
	core.StatusBadRequest: InvalidMessage,
	core.StatusForbidden:  ForbiddenMessage,
	core.StatusUpstream:   UnavailableMessage,
}

// ErrorMiddleware logs handler errors and answers with a private notice.
// Autocomplete can only answer with choices, so it gets an empty list.
func ErrorMiddleware() core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			result, err := next.Handle(ctx)
			if err == nil {
				return result, nil
			}

			logError(ctx, err)

			if ctx.IsAutocomplete() {
				return &core.HandlerResult{Response: core.NewChoicesResponse(nil)}, nil
			}
			return &core.HandlerResult{Response: core.NewEphemeralResponse(Notice(err))}, nil
		})
	}
}

// Notice is what the user is told about err
func Notice(err error) string {
	if message, ok := core.MessageOf(err); ok {
		return message
	}
	if notice, ok := noticeByStatus[core.StatusOf(err)]; ok {
		return notice
	}
	return GenericMessage
}

// RecoveryMiddleware turns a handler panic into an internal error
func RecoveryMiddleware() core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (result *core.HandlerResult, err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[Discord] PANIC in %s: %v\n%s", describe(ctx), r, debug.Stack())
					result, err = nil, core.Internal(fmt.Errorf("panic: %v", r))
				}
			}()
			return next.Handle(ctx)
		})
	}
}

func logError(ctx *core.InteractionContext, err error) {
	status := core.StatusOf(err)
	if upstream := apperrors.StatusCode(err); upstream != 0 {
		log.Printf("[Discord] %s failed (%d, upstream status %d, user %s): %v", describe(ctx), status, upstream, ctx.UserID, err)
		return
	}
	log.Printf("[Discord] %s failed (%d, user %s): %v", describe(ctx), status, ctx.UserID, err)
}
