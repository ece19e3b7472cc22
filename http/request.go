package http

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrPeerClosed is returned when the connection ends before a single
	// request byte arrived. It is a normal close, not a failure.
	ErrPeerClosed       = errors.New("http: peer closed connection before sending a request")
	ErrMalformedRequest = errors.New("http: malformed request")
	ErrBodyTooLarge     = errors.New("http: request body too large")
)

type Request struct {
	Method   string
	Path     string
	Protocol string
	Headers  Headers

	Body []byte
}

func (req *Request) HeaderValue(key string) (string, bool) {
	return req.Headers.Get(key)
}

// ReadRequest reads one request off reader: the head up to the blank line,
// then exactly Content-Length body bytes when the header is present and valid.
func ReadRequest(reader *bufio.Reader) (*Request, error) {
	lines, err := readHead(reader)
	if err != nil {
		return nil, err
	}

	req, err := parseHead(lines)
	if err != nil {
		return nil, err
	}

	if err := req.readBody(reader); err != nil {
		return nil, err
	}

	return req, nil
}

func readHead(reader *bufio.Reader) ([]string, error) {
	lines := make([]string, 0, 8)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				return nil, fmt.Errorf("http: reading request head: %w", err)
			}
			if line == "" && len(lines) == 0 {
				return nil, ErrPeerClosed
			}
			return nil, fmt.Errorf("%w: stream ended inside head", ErrMalformedRequest)
		}

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if len(lines) == 0 {
				return nil, fmt.Errorf("%w: empty request line", ErrMalformedRequest)
			}
			return lines, nil
		}

		if len(lines) > MaxRequestHeaders {
			return nil, fmt.Errorf("%w: more than %d header fields", ErrMalformedRequest, MaxRequestHeaders)
		}
		lines = append(lines, line)
	}
}

func parseHead(lines []string) (*Request, error) {
	parts := strings.Fields(lines[0])
	if len(parts) < 3 {
		return nil, fmt.Errorf("%w: request line %q", ErrMalformedRequest, lines[0])
	}

	req := &Request{
		Method:   parts[0],
		Path:     parts[1],
		Protocol: parts[2],
		Headers:  make(Headers, 0, len(lines)-1),
	}

	for _, line := range lines[1:] {
		key, value, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("%w: header line %q has no colon", ErrMalformedRequest, line)
		}
		if key == "" {
			return nil, fmt.Errorf("%w: header line %q has an empty name", ErrMalformedRequest, line)
		}

		req.Headers.Add(key, strings.TrimLeft(value, " \t"))
	}

	return req, nil
}

// readBody fills Body. A missing or unparsable Content-Length both mean an
// empty body.
func (req *Request) readBody(reader *bufio.Reader) error {
	value, found := req.HeaderValue(HeaderContentLength)
	if !found {
		return nil
	}

	n, err := atoi(strings.TrimSpace(value))
	if err != nil || n == 0 {
		return nil
	}
	if n > MaxRequestBodySize {
		return fmt.Errorf("%w: %d bytes", ErrBodyTooLarge, n)
	}

	body := make([]byte, n)
	if _, err := io.ReadFull(reader, body); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return fmt.Errorf("http: reading request body: %w", err)
	}

	req.Body = body
	return nil
}
