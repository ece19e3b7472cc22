package http

import "strings"

type Handler func(ctx *RequestCtx) error

type Router struct {
	Routes     []Route
	Middleware []Middleware
}

func NewRouter() Router {
	return Router{
		Routes: make([]Route, 0),
	}
}

func (router *Router) GET(path string, handler Handler, middleware ...Middleware) {
	router.Any([]string{MethodGet}, path, handler, middleware...)
}

func (router *Router) POST(path string, handler Handler, middleware ...Middleware) {
	router.Any([]string{MethodPost}, path, handler, middleware...)
}

func (router *Router) Any(methods []string, path string, handler Handler, middleware ...Middleware) {
	for _, middleware := range middleware {
		handler = middleware(handler)
	}

	router.Routes = append(router.Routes, newRoute(methods, path, handler))
}

func (router *Router) Use(middleware ...Middleware) {
	router.Middleware = append(router.Middleware, middleware...)
}

// Match picks the route for method and path. Routes are filtered by method
// first. An exact pattern beats any wildcard one, and among wildcard
// patterns the longest literal prefix wins.
func (router *Router) Match(method, path string) (*Route, map[string]string, bool) {
	var best *Route
	for i := range router.Routes {
		route := &router.Routes[i]
		if !route.allows(method) {
			continue
		}

		if !route.wildcard() {
			if route.Path == path {
				return route, nil, true
			}
			continue
		}

		if !strings.HasPrefix(path, route.prefix) {
			continue
		}
		if best == nil || len(route.prefix) > len(best.prefix) {
			best = route
		}
	}

	if best == nil {
		return nil, nil, false
	}

	return best, map[string]string{best.param: path[len(best.prefix):]}, true
}

// Handler resolves the route for each request and runs it inside the
// router-wide middleware, the first registered being outermost.
func (router *Router) Handler() Handler {
	var handler Handler = func(ctx *RequestCtx) error {
		route, params, found := router.Match(ctx.Request.Method, ctx.Request.Path)
		if !found {
			return NotFoundHandler(ctx)
		}

		ctx.Route = route.Path
		ctx.Params = params
		return route.Handler(ctx)
	}

	for i := len(router.Middleware) - 1; i >= 0; i-- {
		handler = router.Middleware[i](handler)
	}

	return handler
}
