// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package http

const (
	StatusContinue           = 100 // RFC 7231, 6.2.1
	StatusSwitchingProtocols = 101 // RFC 7231, 6.2.2

	StatusOK        = 200 // RFC 7231, 6.3.1
	StatusCreated   = 201 // RFC 7231, 6.3.2
	StatusAccepted  = 202 // RFC 7231, 6.3.3
	StatusNoContent = 204 // RFC 7231, 6.3.5

	StatusMovedPermanently = 301 // RFC 7231, 6.4.2
	StatusFound            = 302 // RFC 7231, 6.4.3
	StatusNotModified      = 304 // RFC 7232, 4.1

	StatusBadRequest            = 400 // RFC 7231, 6.5.1
	StatusForbidden             = 403 // RFC 7231, 6.5.3
	StatusNotFound              = 404 // RFC 7231, 6.5.4
	StatusMethodNotAllowed      = 405 // RFC 7231, 6.5.5
	StatusRequestTimeout        = 408 // RFC 7231, 6.5.7
	StatusLengthRequired        = 411 // RFC 7231, 6.5.10
	StatusRequestEntityTooLarge = 413 // RFC 7231, 6.5.11

	StatusInternalServerError     = 500 // RFC 7231, 6.6.1
	StatusNotImplemented          = 501 // RFC 7231, 6.6.2
	StatusServiceUnavailable      = 503 // RFC 7231, 6.6.4
	StatusHTTPVersionNotSupported = 505 // RFC 7231, 6.6.6
)

var statusText = map[int]string{
	StatusContinue:           "Continue",
	StatusSwitchingProtocols: "Switching Protocols",

	StatusOK:        "OK",
	StatusCreated:   "Created",
	StatusAccepted:  "Accepted",
	StatusNoContent: "No Content",

	StatusMovedPermanently: "Moved Permanently",
	StatusFound:            "Found",
	StatusNotModified:      "Not Modified",

	StatusBadRequest:            "Bad Request",
	StatusForbidden:             "Forbidden",
	StatusNotFound:              "Not Found",
	StatusMethodNotAllowed:      "Method Not Allowed",
	StatusRequestTimeout:        "Request Timeout",
	StatusLengthRequired:        "Length Required",
	StatusRequestEntityTooLarge: "Request Entity Too Large",

	StatusInternalServerError:     "Internal Server Error",
	StatusNotImplemented:          "Not Implemented",
	StatusServiceUnavailable:      "Service Unavailable",
	StatusHTTPVersionNotSupported: "HTTP Version Not Supported",
}

// StatusText returns the reason phrase for code, or "Unknown Status Code".
func StatusText(code int) string {
	if text, ok := statusText[code]; ok {
		return text
	}
	return "Unknown Status Code"
}
