package http

import (
	"io"
	"strconv"
)

type Response struct {
	Protocol string
	Status   int
	Reason   string
	Headers  Headers

	Body []byte
}

// NewResponse starts a response with the reason phrase for status filled in.
func NewResponse(protocol string, status int) *Response {
	return &Response{
		Protocol: protocol,
		Status:   status,
		Reason:   StatusText(status),
	}
}

func (res *Response) WithHeader(key, value string) *Response {
	res.Headers.Add(key, value)
	return res
}

// WithBody sets body and appends the matching Content-Length. Any
// Content-Encoding must already be applied to body.
func (res *Response) WithBody(body []byte) *Response {
	res.Headers.Add(HeaderContentLength, strconv.Itoa(len(body)))
	res.Body = body
	return res
}

// Bytes renders the wire form in one allocation.
func (res *Response) Bytes() []byte {
	size := len(res.Protocol) + len(res.Reason) + 16
	for _, header := range res.Headers {
		size += len(header.Key) + len(header.Value) + 4
	}
	size += len(crlf) + len(res.Body)

	buf := make([]byte, 0, size)
	buf = append(buf, res.Protocol...)
	buf = append(buf, ' ')
	buf = appendInt(buf, res.Status)
	buf = append(buf, ' ')
	buf = append(buf, res.Reason...)
	buf = append(buf, crlf...)

	for _, header := range res.Headers {
		buf = append(buf, header.Key...)
		buf = append(buf, ':', ' ')
		buf = append(buf, header.Value...)
		buf = append(buf, crlf...)
	}

	buf = append(buf, crlf...)
	return append(buf, res.Body...)
}

func (res *Response) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(res.Bytes())
	return int64(n), err
}
