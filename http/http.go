package http

const (
	DefaultReadBufferSize  = 4096 // 4kB
	DefaultWriteBufferSize = 4096 // 4kB
	ChannelBufferSize      = 2000
	MaxRequestHeaders      = 255
	MaxRequestBodySize     = 2 * 1024 * 1024 // 2MB

	DefaultWorkerPoolSize = 8
)

const (
	ProtocolHTTP10 = "HTTP/1.0"
	ProtocolHTTP11 = "HTTP/1.1"

	MethodGet  = "GET"
	MethodPost = "POST"
)

const (
	HeaderAcceptEncoding  = "Accept-Encoding"
	HeaderContentEncoding = "Content-Encoding"
	HeaderContentLength   = "Content-Length"
	HeaderContentType     = "Content-Type"
	HeaderUserAgent       = "User-Agent"

	ContentTypeText        = "text/plain"
	ContentTypeOctetStream = "application/octet-stream"
)

var crlf = []byte("\r\n")
