package http

import "time"

const (
	// DefaultBaseURL is used when no base URL override is supplied.
	DefaultBaseURL = "http://localhost:8080"

	// BaseURLEnvVar is the environment variable that overrides DefaultBaseURL.
	BaseURLEnvVar = "SAES_API_BASE_URL"

	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 5000 * time.Millisecond

	// DefaultMaxLogLength is the default maximum size (in bytes) of a logged request or response dump.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// ContentTypeHeader is the HTTP header name for Content-Type.
	ContentTypeHeader = "Content-Type"

	// ContentTypeJSON is the default Content-Type of every request.
	ContentTypeJSON = "application/json"
)
