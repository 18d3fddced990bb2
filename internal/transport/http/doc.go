// Package http builds the shared, pre-configured HTTP client used to talk to the S-AES backend.
// The client carries a base URL (overridable through the environment), a request timeout
// and a default JSON Content-Type header. Transport, pooling and timeout enforcement are
// delegated to resty and net/http; this package only assembles the configuration and adds
// debug-level request/response logging.
package http
