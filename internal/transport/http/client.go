package http

import (
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// Settings holds everything needed to build a Client.
type Settings struct {
	// BaseURL is the origin every relative request path resolves against.
	BaseURL string
	// Timeout is the maximum time a request may take before it is aborted.
	Timeout time.Duration
	// Headers are attached to every request unless the request sets them itself.
	Headers map[string]string
	// MaxLogLength bounds the size of request and response dumps at debug level.
	// Zero means DefaultMaxLogLength.
	MaxLogLength uint64
}

// Client is a read-only handle to a configured resty client.
// The wrapped client is never exposed, so its defaults cannot change after construction
// and a single instance can be shared by any number of goroutines.
type Client struct {
	// rc is the underlying resty client.
	rc *resty.Client
}

//nolint:gochecknoglobals // The process-wide client is built once on first use and never mutated.
var shared = sync.OnceValue(func() *Client {
	return New(SettingsFromEnv())
})

// ResolveBaseURL returns envValue when it is non-empty, otherwise DefaultBaseURL.
// The value is used as is: it is neither trimmed nor validated.
func ResolveBaseURL(envValue string) string {
	if envValue != "" {
		return envValue
	}

	return DefaultBaseURL
}

// DefaultHeaders returns a fresh copy of the headers attached to every request.
func DefaultHeaders() map[string]string {
	return map[string]string{
		ContentTypeHeader: ContentTypeJSON,
	}
}

// NewSettings returns the default settings with the given base URL.
func NewSettings(baseURL string) Settings {
	return Settings{
		BaseURL:      baseURL,
		Timeout:      DefaultTimeout,
		Headers:      DefaultHeaders(),
		MaxLogLength: DefaultMaxLogLength,
	}
}

// SettingsFromEnv returns the default settings with the base URL taken from BaseURLEnvVar.
func SettingsFromEnv() Settings {
	return NewSettings(ResolveBaseURL(os.Getenv(BaseURLEnvVar)))
}

// New builds a Client from settings. It never fails: a malformed base URL
// surfaces only when a request is issued.
func New(settings Settings) *Client {
	rc := resty.New().
		SetBaseURL(settings.BaseURL).
		SetTimeout(settings.Timeout).
		SetLogger(NewRestyLogger())

	for name, value := range settings.Headers {
		rc.SetHeader(name, value)
	}

	rc.SetTransport(NewLogTransport(rc.GetClient().Transport, settings.MaxLogLength))

	return &Client{rc: rc}
}

// Shared returns the process-wide Client built from SettingsFromEnv.
// The environment is read on the first call only; every call returns the same instance.
func Shared() *Client {
	return shared()
}

// R starts a new request. Headers, body, context and other per-call settings
// applied to the returned request affect that request only.
func (c *Client) R() *resty.Request {
	return c.rc.R()
}

// BaseURL returns the base URL every relative request path resolves against.
func (c *Client) BaseURL() string {
	return c.rc.BaseURL
}

// Timeout returns the timeout applied to every request.
func (c *Client) Timeout() time.Duration {
	return c.rc.GetClient().Timeout
}

// Headers returns a copy of the default request headers.
func (c *Client) Headers() http.Header {
	return c.rc.Header.Clone()
}
