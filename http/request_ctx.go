package http

import (
	"context"
	"log/slog"
)

// RequestCtx carries one request through the router and its middleware.
type RequestCtx struct {
	ID      string
	Context context.Context
	Logger  *slog.Logger

	// Root is the content root that /files/ routes resolve names under.
	Root string

	Request  *Request
	Response *Response

	Route  string
	Params map[string]string
}

func NewRequestCtx(ctx context.Context, req *Request, root string) *RequestCtx {
	return &RequestCtx{
		Context: ctx,
		Logger:  slog.Default(),
		Root:    root,
		Request: req,
	}
}

func (ctx *RequestCtx) Param(name string) string {
	return ctx.Params[name]
}

// Respond starts a response using the request's protocol version.
func (ctx *RequestCtx) Respond(status int) *Response {
	ctx.Response = NewResponse(ctx.Request.Protocol, status)
	return ctx.Response
}
