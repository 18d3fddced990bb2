package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/saes-client/internal/logger"
)

// roundTripFunc adapts a function to http.RoundTripper.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// TestNewLogTransport tests the NewLogTransport function.
func TestNewLogTransport(t *testing.T) {
	t.Parallel()

	transport := NewLogTransport(nil, 0)
	require.IsType(t, &LogTransport{}, transport)

	logTransport, _ := transport.(*LogTransport)
	assert.Equal(t, http.DefaultTransport, logTransport.next)
	assert.Equal(t, uint64(DefaultMaxLogLength), logTransport.maxLogLength)
}

// TestLogTransport_RoundTrip_NilRequest tests that a nil request is rejected.
func TestLogTransport_RoundTrip_NilRequest(t *testing.T) {
	t.Parallel()

	resp, err := NewLogTransport(http.DefaultTransport, 0).RoundTrip(nil) //nolint:bodyclose // Response is nil.
	require.ErrorIs(t, err, ErrNilRequest)
	assert.Nil(t, resp)
}

// TestLogTransport_RoundTrip_DoesNotAlterTraffic tests that the request and response pass through unchanged.
func TestLogTransport_RoundTrip_DoesNotAlterTraffic(t *testing.T) {
	// Don't run in parallel to avoid race conditions with global logger state.
	originalLevel := logger.Level()
	defer logger.SetLevel(originalLevel)

	for _, level := range []zapcore.Level{zapcore.InfoLevel, zapcore.DebugLevel} {
		logger.SetLevel(level)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.JSONEq(t, `{"plaintext":"0110111101101011","key":"1010011100111011"}`, string(body))
			assert.Equal(t, ContentTypeJSON, r.Header.Get(ContentTypeHeader))

			w.Header().Set(ContentTypeHeader, ContentTypeJSON)
			_, _ = w.Write([]byte(`{"code":0,"message":"success"}`))
		}))

		transport := NewLogTransport(http.DefaultTransport, 0)

		req, err := http.NewRequest( //nolint:noctx // Test code, context not needed.
			http.MethodPost,
			server.URL+"/encrypt",
			strings.NewReader(`{"plaintext":"0110111101101011","key":"1010011100111011"}`))
		require.NoError(t, err)
		req.Header.Set(ContentTypeHeader, ContentTypeJSON)

		resp, err := transport.RoundTrip(req)
		require.NoError(t, err)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		resp.Body.Close() //nolint:errcheck,gosec // Test cleanup, error is not critical.

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"code":0,"message":"success"}`, string(body))

		server.Close()
	}
}

// TestLogTransport_RoundTrip_PropagatesError tests that transport errors are returned unchanged.
func TestLogTransport_RoundTrip_PropagatesError(t *testing.T) {
	t.Parallel()

	failing := roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, io.ErrUnexpectedEOF
	})

	req, err := http.NewRequest(http.MethodGet, "http://example.test", http.NoBody) //nolint:noctx // Test code.
	require.NoError(t, err)

	resp, err := NewLogTransport(failing, 0).RoundTrip(req) //nolint:bodyclose // Response is nil on error.
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Nil(t, resp)
}

// TestLogTransport_truncate tests dump truncation.
func TestLogTransport_truncate(t *testing.T) {
	t.Parallel()

	transport := &LogTransport{maxLogLength: 4}

	assert.Equal(t, "abc", transport.truncate([]byte("abc")))
	assert.Equal(t, "abcd", transport.truncate([]byte("abcd")))
	assert.Equal(t, "abcd... [truncated, 6 B total]", transport.truncate([]byte("abcdef")))
}
