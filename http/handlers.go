package http

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/freekieb7/grit/filesystem"
)

// FileRouter registers the routes the server answers:
//
//	GET  /               empty 200
//	GET  /echo/{value}   value as text/plain, gzip when accepted
//	GET  /user-agent     the User-Agent header as text/plain
//	GET  /files/{name}   contents of {root}/{name}, 404 when missing
//	POST /files/{name}   request body written to {root}/{name}, 201
//
// Names are joined to the root as given; nothing stops a name from walking
// out of it.
func FileRouter(fs filesystem.Filesystem) Router {
	files := fileHandlers{fs: fs}

	router := NewRouter()
	router.GET("/", rootHandler)
	router.GET("/echo/{value}", echoHandler)
	router.GET("/user-agent", userAgentHandler)
	router.GET("/files/{name}", files.read)
	router.POST("/files/{name}", files.write)

	return router
}

// BuildResponse runs req through FileRouter backed by the local filesystem.
func BuildResponse(req *Request, root string) (*Response, error) {
	router := FileRouter(filesystem.NewLocalFileSystem())

	ctx := NewRequestCtx(context.Background(), req, root)
	if err := router.Handler()(ctx); err != nil {
		return nil, err
	}

	return ctx.Response, nil
}

func rootHandler(ctx *RequestCtx) error {
	ctx.Respond(StatusOK)
	return nil
}

func echoHandler(ctx *RequestCtx) error {
	body, encoding, err := EncodeBody(ctx.Request, []byte(ctx.Param("value")))
	if err != nil {
		return err
	}

	res := ctx.Respond(StatusOK).WithHeader(HeaderContentType, ContentTypeText)
	if encoding != "" {
		res.WithHeader(HeaderContentEncoding, encoding)
	}
	res.WithBody(body)

	return nil
}

func userAgentHandler(ctx *RequestCtx) error {
	userAgent, _ := ctx.Request.HeaderValue(HeaderUserAgent)

	ctx.Respond(StatusOK).
		WithHeader(HeaderContentType, ContentTypeText).
		WithBody([]byte(userAgent))

	return nil
}

type fileHandlers struct {
	fs filesystem.Filesystem
}

func (h fileHandlers) read(ctx *RequestCtx) error {
	name := ctx.Param("name")
	if name == "" {
		return NotFoundHandler(ctx)
	}

	content, err := h.fs.ReadFile(filepath.Join(ctx.Root, name))
	if err != nil {
		if errors.Is(err, filesystem.ErrFileNotFound) {
			return NotFoundHandler(ctx)
		}
		return err
	}

	ctx.Respond(StatusOK).
		WithHeader(HeaderContentType, ContentTypeOctetStream).
		WithBody(content)

	return nil
}

func (h fileHandlers) write(ctx *RequestCtx) error {
	name := ctx.Param("name")
	if name == "" {
		return NotFoundHandler(ctx)
	}

	if err := h.fs.WriteFile(filepath.Join(ctx.Root, name), ctx.Request.Body); err != nil {
		return err
	}

	ctx.Respond(StatusCreated)
	return nil
}
