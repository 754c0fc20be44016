package routers

import (
	"time"

	"github.com/0niSec/cephalon-seraph/internal/discord/builders"
	"github.com/0niSec/cephalon-seraph/internal/discord/core"
	"github.com/0niSec/cephalon-seraph/internal/discord/handlers"
	"github.com/0niSec/cephalon-seraph/internal/discord/middleware"
	"github.com/0niSec/cephalon-seraph/internal/navigation"
	"github.com/0niSec/cephalon-seraph/internal/services"
)

// SearchRouterConfig holds what the search router needs
type SearchRouterConfig struct {
	Provider *services.Provider
	Cards    *navigation.Manager

	// RateLimitPerMinute caps lookups per user. Zero disables the limit.
	RateLimitPerMinute int
	RateLimitStore     middleware.RateLimitStore
}

// SearchRouter handles /search and the controls of the cards it posts
type SearchRouter struct {
	router  *core.Router
	handler *handlers.SearchHandler
}

// NewSearchRouter creates the search router and registers it with the pipeline
func NewSearchRouter(pipeline *core.Pipeline, cfg *SearchRouterConfig) (*SearchRouter, error) {
	handler, err := handlers.NewSearchHandler(&handlers.SearchHandlerConfig{
		Items: cfg.Provider.ItemService,
		Cards: cfg.Cards,
	})
	if err != nil {
		return nil, err
	}

	router := core.NewRouter(builders.SearchDomain, pipeline)
	sr := &SearchRouter{
		router:  router,
		handler: handler,
	}

	router.Use(
		middleware.RateLimitMiddleware(&middleware.RateLimitConfig{
			MaxRequests: cfg.RateLimitPerMinute,
			Window:      time.Minute,
			Store:       cfg.RateLimitStore,
		}),
	)

	sr.registerRoutes()
	router.Register()

	return sr, nil
}

func (r *SearchRouter) registerRoutes() {
	// Every subcommand is a family; the handler resolves it
	r.router.SubcommandFunc("*", r.handler.HandleLookup)
	r.router.AutocompleteFunc("*", r.handler.HandleAutocomplete)

	r.router.ComponentFunc(builders.ActionView, r.handler.HandleView)
	r.router.ComponentFunc(builders.ActionPage, r.handler.HandlePage)
	r.router.ComponentFunc(builders.ActionComponent, r.handler.HandleComponent)
}
