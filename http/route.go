package http

import "strings"

// Route maps methods and a path pattern to a handler. A pattern ending in a
// {name} segment matches every path that starts with the text before it and
// binds the remainder to name.
type Route struct {
	Methods []string
	Path    string
	Handler Handler

	prefix string
	param  string
}

func newRoute(methods []string, path string, handler Handler) Route {
	route := Route{
		Methods: methods,
		Path:    path,
		Handler: handler,
	}

	if i := strings.IndexByte(path, '{'); i >= 0 && strings.HasSuffix(path, "}") {
		route.prefix = path[:i]
		route.param = path[i+1 : len(path)-1]
	}

	return route
}

func (route *Route) allows(method string) bool {
	for _, m := range route.Methods {
		if strings.EqualFold(m, method) {
			return true
		}
	}
	return false
}

func (route *Route) wildcard() bool {
	return route.param != ""
}

var NotFoundHandler Handler = func(ctx *RequestCtx) error {
	ctx.Respond(StatusNotFound)
	return nil
}
