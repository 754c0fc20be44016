package core

const anyName = "*"

// route identifies a handler within one command: the subcommand for commands
// and autocomplete, the custom ID action for components. An empty name is the
// bare command.
type route struct {
	kind Kind
	name string
}

// Router collects the handlers of one slash command and of the components
// that command posts. Component custom IDs carry the command as their domain.
type Router struct {
	domain     string
	routes     map[route]Handler
	middleware []Middleware
	pipeline   *Pipeline
}

func NewRouter(domain string, pipeline *Pipeline) *Router {
	return &Router{
		domain:   domain,
		routes:   make(map[route]Handler),
		pipeline: pipeline,
	}
}

// Use adds middleware to routes added afterwards
func (r *Router) Use(middleware ...Middleware) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

func (r *Router) add(kind Kind, name string, fn func(*InteractionContext) (*HandlerResult, error)) *Router {
	var h Handler = HandlerFunc(fn)
	for i := len(r.middleware) - 1; i >= 0; i-- {
		h = r.middleware[i](h)
	}
	r.routes[route{kind: kind, name: name}] = h
	return r
}

// CommandFunc handles the command when it has no subcommands
func (r *Router) CommandFunc(fn func(*InteractionContext) (*HandlerResult, error)) *Router {
	return r.add(KindCommand, "", fn)
}

// SubcommandFunc handles one subcommand, or every subcommand with "*"
func (r *Router) SubcommandFunc(sub string, fn func(*InteractionContext) (*HandlerResult, error)) *Router {
	return r.add(KindCommand, sub, fn)
}

// AutocompleteFunc answers autocomplete for one subcommand, or every subcommand with "*"
func (r *Router) AutocompleteFunc(sub string, fn func(*InteractionContext) (*HandlerResult, error)) *Router {
	return r.add(KindAutocomplete, sub, fn)
}

// ComponentFunc handles clicks on components whose custom ID carries action
func (r *Router) ComponentFunc(action string, fn func(*InteractionContext) (*HandlerResult, error)) *Router {
	return r.add(KindComponent, action, fn)
}

// Register hands the router to its pipeline
func (r *Router) Register() {
	if r.pipeline != nil {
		r.pipeline.Register(r)
	}
}

func (r *Router) CanHandle(ctx *InteractionContext) bool {
	return r.lookup(ctx) != nil
}

func (r *Router) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	h := r.lookup(ctx)
	if h == nil {
		return nil, NotFound("handler")
	}
	return h.Handle(ctx)
}

// lookup prefers an exact route over the wildcard
func (r *Router) lookup(ctx *InteractionContext) Handler {
	var name string
	switch ctx.Kind {
	case KindCommand, KindAutocomplete:
		if ctx.CommandName() != r.domain {
			return nil
		}
		name = ctx.Subcommand()
	case KindComponent:
		id, err := ParseCustomID(ctx.ComponentID())
		if err != nil || id.Domain != r.domain {
			return nil
		}
		name = id.Action
	default:
		return nil
	}

	if h, ok := r.routes[route{kind: ctx.Kind, name: name}]; ok {
		return h
	}
	if name == "" {
		return nil
	}
	return r.routes[route{kind: ctx.Kind, name: anyName}]
}
