package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/freekieb7/grit/test"
)

func build(t *testing.T, raw, root string) *Response {
	t.Helper()

	req, err := readRequest(raw)
	test.AssertNoError(t, err)

	res, err := BuildResponse(req, root)
	test.AssertNoError(t, err)

	return res
}

func TestBuildResponseRoot(t *testing.T) {
	res := build(t, "GET / HTTP/1.1\r\n\r\n", "")

	test.AssertEqual(t, "HTTP/1.1 200 OK\r\n\r\n", string(res.Bytes()))
}

func TestBuildResponseEcho(t *testing.T) {
	res := build(t, "GET /echo/abc HTTP/1.1\r\n\r\n", "")

	test.AssertEqual(t, StatusOK, res.Status)
	test.AssertEqual(t, "abc", string(res.Body))

	contentType, _ := res.Headers.Get(HeaderContentType)
	test.AssertEqual(t, "text/plain", contentType)
	contentLength, _ := res.Headers.Get(HeaderContentLength)
	test.AssertEqual(t, "3", contentLength)

	if _, found := res.Headers.Get(HeaderContentEncoding); found {
		t.Error("uncompressed echo must not carry Content-Encoding")
	}
}

func TestBuildResponseEchoGzip(t *testing.T) {
	res := build(t, "GET /echo/abcabcabc HTTP/1.1\r\nAccept-Encoding: deflate, gzip\r\n\r\n", "")

	test.AssertEqual(t, StatusOK, res.Status)

	encoding, _ := res.Headers.Get(HeaderContentEncoding)
	test.AssertEqual(t, "gzip", encoding)

	contentLength, _ := res.Headers.Get(HeaderContentLength)
	test.AssertEqual(t, strconv.Itoa(len(res.Body)), contentLength)

	zr, err := gzip.NewReader(bytes.NewReader(res.Body))
	test.AssertNoError(t, err)
	decoded, err := io.ReadAll(zr)
	test.AssertNoError(t, err)
	test.AssertEqual(t, "abcabcabc", string(decoded))

	keys := make([]string, 0, len(res.Headers))
	for _, header := range res.Headers {
		keys = append(keys, header.Key)
	}
	test.AssertEqual(t, 3, len(keys))
	test.AssertEqual(t, HeaderContentLength, keys[len(keys)-1])
}

func TestBuildResponseEchoUnsupportedEncoding(t *testing.T) {
	res := build(t, "GET /echo/abc HTTP/1.1\r\nAccept-Encoding: invalid-encoding\r\n\r\n", "")

	test.AssertEqual(t, "abc", string(res.Body))
	if _, found := res.Headers.Get(HeaderContentEncoding); found {
		t.Error("unsupported encoding must not set Content-Encoding")
	}
}

func TestBuildResponseUserAgent(t *testing.T) {
	// Same answer however often and in whatever order it is asked.
	for range 3 {
		build(t, "GET /echo/x HTTP/1.1\r\n\r\n", "")

		res := build(t, "GET /user-agent HTTP/1.1\r\nUser-Agent: test-agent\r\nAccept-Encoding: gzip\r\n\r\n", "")
		test.AssertEqual(t, StatusOK, res.Status)
		test.AssertEqual(t, "test-agent", string(res.Body))

		contentLength, _ := res.Headers.Get(HeaderContentLength)
		test.AssertEqual(t, "10", contentLength)
		if _, found := res.Headers.Get(HeaderContentEncoding); found {
			t.Error("user-agent responses are never compressed")
		}
	}
}

func TestBuildResponseUserAgentMissing(t *testing.T) {
	res := build(t, "GET /user-agent HTTP/1.1\r\n\r\n", "")

	test.AssertEqual(t, StatusOK, res.Status)
	test.AssertEqual(t, 0, len(res.Body))
}

func TestBuildResponseFiles(t *testing.T) {
	root := t.TempDir()

	res := build(t, "POST /files/test.txt HTTP/1.1\r\nContent-Length: 5\r\n\r\nhello", root)
	test.AssertEqual(t, "HTTP/1.1 201 Created\r\n\r\n", string(res.Bytes()))

	res = build(t, "GET /files/test.txt HTTP/1.1\r\n\r\n", root)
	test.AssertEqual(t, StatusOK, res.Status)
	test.AssertEqual(t, "hello", string(res.Body))

	contentType, _ := res.Headers.Get(HeaderContentType)
	test.AssertEqual(t, "application/octet-stream", contentType)
	contentLength, _ := res.Headers.Get(HeaderContentLength)
	test.AssertEqual(t, "5", contentLength)
}

func TestBuildResponseFilesOverwrite(t *testing.T) {
	root := t.TempDir()

	build(t, "POST /files/a HTTP/1.1\r\nContent-Length: 11\r\n\r\nhello world", root)
	build(t, "POST /files/a HTTP/1.1\r\nContent-Length: 2\r\n\r\nhi", root)

	content, err := os.ReadFile(filepath.Join(root, "a"))
	test.AssertNoError(t, err)
	test.AssertEqual(t, "hi", string(content))
}

func TestBuildResponseFilesBinary(t *testing.T) {
	root := t.TempDir()
	content := []byte{0x00, 0xff, 0x1f, 0x8b}
	test.AssertNoError(t, os.WriteFile(filepath.Join(root, "blob"), content, 0644))

	res := build(t, "GET /files/blob HTTP/1.1\r\n\r\n", root)

	if !bytes.Equal(content, res.Body) {
		t.Errorf("expected %v, got %v", content, res.Body)
	}
}

func TestBuildResponseNotFound(t *testing.T) {
	root := t.TempDir()

	tests := []string{
		"GET /files/missing.txt HTTP/1.1\r\n\r\n",
		"GET /files/ HTTP/1.1\r\n\r\n",
		"GET /unknown HTTP/1.1\r\n\r\n",
		"GET /x/echo/abc HTTP/1.1\r\n\r\n",
		"POST /echo/abc HTTP/1.1\r\n\r\n",
		"POST / HTTP/1.1\r\n\r\n",
		"PUT /files/a HTTP/1.1\r\n\r\n",
		"DELETE / HTTP/1.1\r\n\r\n",
	}

	for _, raw := range tests {
		res := build(t, raw, root)
		if got, want := string(res.Bytes()), "HTTP/1.1 404 Not Found\r\n\r\n"; got != want {
			t.Errorf("%q: got %q, want %q", raw, got, want)
		}
	}
}

func TestBuildResponseFileWriteFailure(t *testing.T) {
	root := t.TempDir()
	// A regular file where a directory is needed makes the write fail.
	test.AssertNoError(t, os.WriteFile(filepath.Join(root, "blocker"), nil, 0644))

	req, err := readRequest("POST /files/blocker/child HTTP/1.1\r\nContent-Length: 2\r\n\r\nhi")
	test.AssertNoError(t, err)

	if _, err := BuildResponse(req, root); err == nil {
		t.Error("expected write failure to be returned")
	}
}
