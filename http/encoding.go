package http

import (
	"bytes"
	"strconv"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
)

const EncodingGzip = "gzip"

var gzipWriterPool = sync.Pool{
	New: func() any {
		w, _ := gzip.NewWriterLevel(nil, gzip.DefaultCompression)
		return w
	},
}

// AcceptsEncoding reports whether an Accept-Encoding value lists coding
// with a non-zero quality.
func AcceptsEncoding(acceptEncoding, coding string) bool {
	for _, token := range strings.Split(acceptEncoding, ",") {
		name, params, _ := strings.Cut(token, ";")
		if !strings.EqualFold(strings.TrimSpace(name), coding) {
			continue
		}

		return quality(params) > 0
	}

	return false
}

func quality(params string) float64 {
	for _, param := range strings.Split(params, ";") {
		key, value, found := strings.Cut(strings.TrimSpace(param), "=")
		if !found || !strings.EqualFold(strings.TrimSpace(key), "q") {
			continue
		}

		q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0
		}
		return q
	}

	return 1
}

// Gzip compresses body at the default level.
func Gzip(body []byte) ([]byte, error) {
	var buf bytes.Buffer

	w := gzipWriterPool.Get().(*gzip.Writer)
	defer gzipWriterPool.Put(w)
	w.Reset(&buf)

	if _, err := w.Write(body); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// EncodeBody applies the first encoding the request accepts and returns the
// encoded body with the coding used, or body unchanged and "".
func EncodeBody(req *Request, body []byte) ([]byte, string, error) {
	acceptEncoding, found := req.HeaderValue(HeaderAcceptEncoding)
	if !found || !AcceptsEncoding(acceptEncoding, EncodingGzip) {
		return body, "", nil
	}

	encoded, err := Gzip(body)
	if err != nil {
		return nil, "", err
	}

	return encoded, EncodingGzip, nil
}
