package http

import "strings"

// Header is a single header field. Keys keep the casing they were received
// or set with; lookups ignore case.
type Header struct {
	Key   string
	Value string
}

// Headers keeps header fields in insertion order.
type Headers []Header

func (headers Headers) Get(key string) (string, bool) {
	for _, header := range headers {
		if strings.EqualFold(header.Key, key) {
			return header.Value, true
		}
	}

	return "", false
}

func (headers *Headers) Add(key, value string) {
	*headers = append(*headers, Header{Key: key, Value: value})
}
