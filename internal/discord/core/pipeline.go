package core

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Pipeline manages handler registration and execution
type Pipeline struct {
	// Handlers registered in the pipeline
	handlers []Handler

	// Middleware to apply to all handlers
	middleware []Middleware

	// Creates the responder for each interaction
	newResponder ResponderFactory

	// Mutex for thread-safe handler registration
	mu sync.RWMutex
}

// Middleware is a function that wraps a handler
type Middleware func(Handler) Handler

// ResponderFactory creates the responder used to answer an interaction
type ResponderFactory func(s *discordgo.Session, i *discordgo.InteractionCreate) InteractionResponder

// NewPipeline creates a new handler pipeline
func NewPipeline() *Pipeline {
	return &Pipeline{
		handlers:     make([]Handler, 0),
		middleware:   make([]Middleware, 0),
		newResponder: func(s *discordgo.Session, i *discordgo.InteractionCreate) InteractionResponder {
			return NewDiscordResponder(s, i)
		},
	}
}

// Register adds handlers to the pipeline
func (p *Pipeline) Register(handlers ...Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, h := range handlers {
		var wrapped Handler = h
		for i := len(p.middleware) - 1; i >= 0; i-- {
			wrapped = p.middleware[i](wrapped)
		}
		p.handlers = append(p.handlers, guarded{match: h, next: wrapped})
	}
}

// guarded keeps the routing decision of a handler once middleware has wrapped it
type guarded struct {
	match Handler
	next  Handler
}

func (g guarded) CanHandle(ctx *InteractionContext) bool {
	return g.match.CanHandle(ctx)
}

func (g guarded) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	return g.next.Handle(ctx)
}

// Use adds middleware to the pipeline. It applies to handlers registered afterwards.
func (p *Pipeline) Use(middleware ...Middleware) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.middleware = append(p.middleware, middleware...)
}

// SetResponderFactory replaces how responders are created
func (p *Pipeline) SetResponderFactory(factory ResponderFactory) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.newResponder = factory
}

// HandleInteraction is the discordgo event handler entry point
func (p *Pipeline) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := p.Execute(context.Background(), s, i); err != nil {
		log.Printf("[Pipeline] Interaction %s failed: %v", i.ID, err)
	}
}

// Execute runs the first handler that accepts the interaction
func (p *Pipeline) Execute(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	interactionCtx := NewInteractionContext(ctx, i)

	p.mu.RLock()
	handlers := make([]Handler, len(p.handlers))
	copy(handlers, p.handlers)
	responder := p.newResponder(s, i)
	p.mu.RUnlock()

	interactionCtx.responder = responder

	for _, handler := range handlers {
		if !handler.CanHandle(interactionCtx) {
			continue
		}

		result, err := handler.Handle(interactionCtx)
		if err != nil {
			result = defaultErrorHandler(err)
		}

		if result != nil && result.Response != nil {
			if err := sendResponse(responder, result.Response); err != nil {
				return fmt.Errorf("failed to send response: %w", err)
			}
		}
		return nil
	}

	if interactionCtx.IsAutocomplete() {
		return sendResponse(responder, NewChoicesResponse(nil))
	}

	log.Printf("[Pipeline] No handler for %s %s", interactionCtx.CommandName(), interactionCtx.ComponentID())
	if !responder.HasResponded() {
		return sendResponse(responder, NewEphemeralResponse("I don't know how to handle that command."))
	}
	return nil
}

// sendResponse answers according to how the handler acknowledged the interaction
func sendResponse(responder InteractionResponder, response *Response) error {
	switch responder.Deferred() {
	case DeferredMessage:
		if !response.Ephemeral {
			_, err := responder.Edit(response)
			return err
		}
		// The placeholder is public; swap it for a private notice
		if err := responder.DeleteOriginal(); err != nil {
			log.Printf("[Pipeline] Failed to delete placeholder: %v", err)
		}
		_, err := responder.FollowUp(response)
		return err

	case DeferredPrivateMessage:
		_, err := responder.Edit(response)
		return err

	case DeferredUpdate:
		if response.Update {
			_, err := responder.Edit(response)
			return err
		}
		_, err := responder.FollowUp(response)
		return err
	}

	return responder.Respond(response)
}

// HandlerCount returns the number of registered handlers
func (p *Pipeline) HandlerCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.handlers)
}

// defaultErrorHandler shows the attached notice, or a generic one. The error
// middleware normally answers first; this covers routes registered without it.
func defaultErrorHandler(err error) *HandlerResult {
	message, ok := MessageOf(err)
	if !ok {
		message = "An error occurred while processing your request."
	}
	return &HandlerResult{Response: NewEphemeralResponse(message)}
}

// MiddlewareChain creates a single middleware from multiple middleware
func MiddlewareChain(middleware ...Middleware) Middleware {
	return func(next Handler) Handler {
		for i := len(middleware) - 1; i >= 0; i-- {
			next = middleware[i](next)
		}
		return next
	}
}
