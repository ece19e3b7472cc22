package http

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/freekieb7/grit/test"
)

func readRequest(raw string) (*Request, error) {
	return ReadRequest(bufio.NewReader(strings.NewReader(raw)))
}

func TestRequestParse(t *testing.T) {
	req, err := readRequest("GET /test HTTP/1.1\r\nAccept: text/css\r\nUser-Agent:   curl/8.0\r\nContent-Length: 0\r\n\r\n")
	test.AssertNoError(t, err)

	test.AssertEqual(t, "GET", req.Method)
	test.AssertEqual(t, "/test", req.Path)
	test.AssertEqual(t, "HTTP/1.1", req.Protocol)
	test.AssertEqual(t, 3, len(req.Headers))
	test.AssertEqual(t, Header{Key: "Accept", Value: "text/css"}, req.Headers[0])
	test.AssertEqual(t, 0, len(req.Body))

	h, found := req.HeaderValue("user-agent")
	if !found {
		t.Fatal("user-agent header not found")
	}
	test.AssertEqual(t, "curl/8.0", h)
}

func TestRequestParseBody(t *testing.T) {
	req, err := readRequest("POST /files/test.txt HTTP/1.1\r\ncontent-length: 5\r\n\r\nhello")
	test.AssertNoError(t, err)

	test.AssertEqual(t, "hello", string(req.Body))
}

func TestRequestParseBodyIsExact(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("POST /files/a HTTP/1.1\r\nContent-Length: 3\r\n\r\nabcdef"))

	req, err := ReadRequest(br)
	test.AssertNoError(t, err)
	test.AssertEqual(t, "abc", string(req.Body))

	rest, _ := io.ReadAll(br)
	test.AssertEqual(t, "def", string(rest))
}

func TestRequestParseBinaryBody(t *testing.T) {
	body := []byte{0x00, 0xff, '\r', '\n', '\r', '\n', 0x1f}
	raw := append([]byte("POST /files/b HTTP/1.1\r\nContent-Length: 7\r\n\r\n"), body...)

	req, err := ReadRequest(bufio.NewReader(bytes.NewReader(raw)))
	test.AssertNoError(t, err)

	if !bytes.Equal(body, req.Body) {
		t.Errorf("expected %v, got %v", body, req.Body)
	}
}

func TestRequestParseIgnoredContentLength(t *testing.T) {
	tests := map[string]string{
		"missing":  "POST /files/a HTTP/1.1\r\n\r\nhello",
		"negative": "POST /files/a HTTP/1.1\r\nContent-Length: -5\r\n\r\nhello",
		"garbage":  "POST /files/a HTTP/1.1\r\nContent-Length: five\r\n\r\nhello",
		"empty":    "POST /files/a HTTP/1.1\r\nContent-Length:\r\n\r\nhello",
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			req, err := readRequest(raw)
			test.AssertNoError(t, err)
			test.AssertEqual(t, 0, len(req.Body))
		})
	}
}

func TestRequestParsePeerClosed(t *testing.T) {
	_, err := readRequest("")
	test.AssertErrorIs(t, err, ErrPeerClosed)
}

func TestRequestParseMalformed(t *testing.T) {
	tests := map[string]string{
		"ends inside request line": "GET / HTTP/1.1",
		"ends inside head":         "GET / HTTP/1.1\r\nHost: localhost\r\n",
		"missing version":          "GET /\r\n\r\n",
		"only method":              "GET\r\n\r\n",
		"empty request line":       "\r\n",
		"header without colon":     "GET / HTTP/1.1\r\nHost localhost\r\n\r\n",
		"header without name":      "GET / HTTP/1.1\r\n: value\r\n\r\n",
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := readRequest(raw)
			test.AssertErrorIs(t, err, ErrMalformedRequest)
		})
	}
}

func TestRequestParseTooManyHeaders(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("GET / HTTP/1.1\r\n")
	for range MaxRequestHeaders + 1 {
		sb.WriteString("X-Test: 1\r\n")
	}
	sb.WriteString("\r\n")

	_, err := readRequest(sb.String())
	test.AssertErrorIs(t, err, ErrMalformedRequest)
}

func TestRequestParseShortBody(t *testing.T) {
	_, err := readRequest("POST /files/a HTTP/1.1\r\nContent-Length: 10\r\n\r\nhello")
	test.AssertErrorIs(t, err, io.ErrUnexpectedEOF)

	if errors.Is(err, ErrMalformedRequest) {
		t.Error("a short body is an I/O error, not a malformed request")
	}
}

func TestRequestParseNoBodyBytes(t *testing.T) {
	_, err := readRequest("POST /files/a HTTP/1.1\r\nContent-Length: 10\r\n\r\n")
	test.AssertErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestRequestParseBodyTooLarge(t *testing.T) {
	_, err := readRequest("POST /files/a HTTP/1.1\r\nContent-Length: 999999999999\r\n\r\n")
	test.AssertErrorIs(t, err, ErrBodyTooLarge)
}

func TestRequestParseExtraRequestLineTokens(t *testing.T) {
	req, err := readRequest("GET  /a   HTTP/1.1 extra\r\n\r\n")
	test.AssertNoError(t, err)

	test.AssertEqual(t, "/a", req.Path)
	test.AssertEqual(t, "HTTP/1.1", req.Protocol)
}

func BenchmarkRequestParse(b *testing.B) {
	reqMsg := []byte("GET /test HTTP/1.1\r\nAccept: text/css\r\nConnection: keep-alive\r\nContent-Length: 0\r\n\r\n")

	reader := bytes.NewReader(reqMsg)
	br := bufio.NewReader(reader)

	for b.Loop() {
		reader.Reset(reqMsg)
		br.Reset(reader)

		if _, err := ReadRequest(br); err != nil {
			b.Error(err)
		}
	}
}
