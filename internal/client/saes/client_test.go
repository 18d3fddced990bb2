package saes

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	http_transport "github.com/oshokin/saes-client/internal/transport/http"
)

// recordedRequest captures what the fake backend received.
type recordedRequest struct {
	Method      string
	Path        string
	ContentType string
	Trace       string
	Body        map[string]any
}

// newFakeBackend starts a server that records each request and answers with the handler's envelope.
func newFakeBackend(
	t *testing.T,
	respond func(path string, body map[string]any) (int, string),
) (*httptest.Server, chan recordedRequest) {
	t.Helper()

	requests := make(chan recordedRequest, 10)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var body map[string]any
		if len(raw) > 0 {
			assert.NoError(t, json.Unmarshal(raw, &body))
		}

		requests <- recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			ContentType: r.Header.Get("Content-Type"),
			Trace:       r.Header.Get("X-Trace"),
			Body:        body,
		}

		status, payload := respond(r.URL.Path, body)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(payload))
	}))

	t.Cleanup(server.Close)

	return server, requests
}

func newTestClient(server *httptest.Server) Client {
	return NewClient(http_transport.New(http_transport.NewSettings(server.URL)))
}

// TestNewClient tests the NewClient function.
func TestNewClient(t *testing.T) {
	t.Parallel()

	client := NewClient(http_transport.New(http_transport.NewSettings("http://saes.test")))
	assert.Equal(t, "http://saes.test", client.GetBaseURL())

	shared := NewClient(nil)
	assert.Equal(t, http_transport.Shared().BaseURL(), shared.GetBaseURL())
}

// TestClient_Endpoints tests that every call posts the right body to the right path.
func TestClient_Endpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		call         func(ctx context.Context, c Client) (any, error)
		expectedPath string
		expectedBody map[string]any
		response     string
		expected     any
	}{
		{
			name: "encrypt binary",
			call: func(ctx context.Context, c Client) (any, error) {
				return c.EncryptBinary(ctx, "0110111101101011", "1010011100111011")
			},
			expectedPath: "/encrypt",
			expectedBody: map[string]any{"plaintext": "0110111101101011", "key": "1010011100111011"},
			response:     `{"code":0,"message":"success","data":{"ciphertext":"0000011100111000"}}`,
			expected:     &EncryptResult{Ciphertext: "0000011100111000"},
		},
		{
			name: "decrypt binary",
			call: func(ctx context.Context, c Client) (any, error) {
				return c.DecryptBinary(ctx, "0000011100111000", "1010011100111011")
			},
			expectedPath: "/decrypt",
			expectedBody: map[string]any{"ciphertext": "0000011100111000", "key": "1010011100111011"},
			response:     `{"code":0,"message":"success","data":{"plaintext":"0110111101101011"}}`,
			expected:     &DecryptResult{Plaintext: "0110111101101011"},
		},
		{
			name: "encrypt base64",
			call: func(ctx context.Context, c Client) (any, error) {
				return c.EncryptBase64(ctx, "hi", "1010011100111011")
			},
			expectedPath: "/encrypt/base64",
			expectedBody: map[string]any{"plaintext": "hi", "key": "1010011100111011"},
			response:     `{"code":0,"message":"success","data":{"ciphertext":"q1w="}}`,
			expected:     &EncryptResult{Ciphertext: "q1w="},
		},
		{
			name: "decrypt base64",
			call: func(ctx context.Context, c Client) (any, error) {
				return c.DecryptBase64(ctx, "q1w=", "1010011100111011")
			},
			expectedPath: "/decrypt/base64",
			expectedBody: map[string]any{"ciphertext": "q1w=", "key": "1010011100111011"},
			response:     `{"code":0,"message":"success","data":{"plaintext":"hi"}}`,
			expected:     &DecryptResult{Plaintext: "hi"},
		},
		{
			name: "encrypt cbc",
			call: func(ctx context.Context, c Client) (any, error) {
				return c.EncryptCBC(ctx, "hello", "1010011100111011")
			},
			expectedPath: "/encrypt/cbc",
			expectedBody: map[string]any{"plaintext": "hello", "key": "1010011100111011"},
			response:     `{"code":0,"message":"success","data":{"ciphertext":"AbCdEf==","iv":"1100110011001100"}}`,
			expected:     &EncryptResult{Ciphertext: "AbCdEf==", IV: "1100110011001100"},
		},
		{
			name: "decrypt cbc",
			call: func(ctx context.Context, c Client) (any, error) {
				return c.DecryptCBC(ctx, "AbCdEf==", "1010011100111011", "1100110011001100")
			},
			expectedPath: "/decrypt/cbc",
			expectedBody: map[string]any{
				"ciphertext": "AbCdEf==",
				"key":        "1010011100111011",
				"iv":         "1100110011001100",
			},
			response: `{"code":0,"message":"success","data":{"plaintext":"hello"}}`,
			expected: &DecryptResult{Plaintext: "hello"},
		},
		{
			name: "meet in the middle",
			call: func(ctx context.Context, c Client) (any, error) {
				return c.MeetInTheMiddle(ctx, []PlainCipherPair{{Plaintext: "0x1234", Ciphertext: "0xABCD"}})
			},
			expectedPath: "/attack/meet-in-the-middle",
			expectedBody: map[string]any{
				"pairs": []any{map[string]any{"plaintext": "0x1234", "ciphertext": "0xABCD"}},
			},
			response: `{"code":0,"message":"success","data":{"count":1,"keys":[{` +
				`"k1_hex":"0x2D55","k1_bin":"0010110101010101",` +
				`"k2_hex":"0x1A2B","k2_bin":"0001101000101011",` +
				`"combined_hex":"0x2D551A2B","combined_bin":"00101101010101010001101000101011"}]}}`,
			expected: &MeetInTheMiddleResult{
				Count: 1,
				Keys: []KeyCandidate{{
					K1Hex:       "0x2D55",
					K1Bin:       "0010110101010101",
					K2Hex:       "0x1A2B",
					K2Bin:       "0001101000101011",
					CombinedHex: "0x2D551A2B",
					CombinedBin: "00101101010101010001101000101011",
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server, requests := newFakeBackend(t, func(string, map[string]any) (int, string) {
				return http.StatusOK, tt.response
			})

			result, err := tt.call(context.Background(), newTestClient(server))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)

			request := <-requests
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Equal(t, tt.expectedPath, request.Path)
			assert.Equal(t, "application/json", request.ContentType)
			assert.Equal(t, tt.expectedBody, request.Body)
		})
	}
}

// TestClient_Errors tests how failed responses are surfaced.
func TestClient_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		response    string
		checkError  func(t *testing.T, err error)
		description string
	}{
		{
			name:     "validation failure with envelope",
			status:   http.StatusBadRequest,
			response: `{"code":1,"message":"key must be 16 bits"}`,
			checkError: func(t *testing.T, err error) {
				t.Helper()

				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
				assert.Equal(t, 1, apiErr.Code)
				assert.Equal(t, "key must be 16 bits", apiErr.Message)
				assert.Contains(t, err.Error(), "key must be 16 bits")
			},
		},
		{
			name:     "non-zero code with 200",
			status:   http.StatusOK,
			response: `{"code":2,"message":"busy"}`,
			checkError: func(t *testing.T, err error) {
				t.Helper()

				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusOK, apiErr.StatusCode)
				assert.Equal(t, 2, apiErr.Code)
			},
		},
		{
			name:     "server error without envelope",
			status:   http.StatusBadGateway,
			response: `upstream unavailable`,
			checkError: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, ErrUnexpectedHTTPStatus)
				assert.Contains(t, err.Error(), "502")
			},
		},
		{
			name:     "success without data",
			status:   http.StatusOK,
			response: `{"code":0,"message":"success"}`,
			checkError: func(t *testing.T, err error) {
				t.Helper()

				require.ErrorIs(t, err, ErrEmptyResponseData)
			},
		},
		{
			name:     "success with malformed body",
			status:   http.StatusOK,
			response: `{"code":0,`,
			checkError: func(t *testing.T, err error) {
				t.Helper()

				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to decode /encrypt response")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server, _ := newFakeBackend(t, func(string, map[string]any) (int, string) {
				return tt.status, tt.response
			})

			result, err := newTestClient(server).EncryptBinary(context.Background(), "0110111101101011", "1")
			assert.Nil(t, result)
			tt.checkError(t, err)
		})
	}
}

// TestClient_TransportError tests that network failures are wrapped with the endpoint name.
func TestClient_TransportError(t *testing.T) {
	t.Parallel()

	server, _ := newFakeBackend(t, func(string, map[string]any) (int, string) {
		return http.StatusOK, `{}`
	})
	client := newTestClient(server)
	server.Close()

	_, err := client.DecryptBinary(context.Background(), "0000011100111000", "1010011100111011")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to call /decrypt")

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

// TestClient_MeetInTheMiddle_NoPairs tests that an empty pair list is rejected locally.
func TestClient_MeetInTheMiddle_NoPairs(t *testing.T) {
	t.Parallel()

	server, requests := newFakeBackend(t, func(string, map[string]any) (int, string) {
		return http.StatusOK, `{"code":0,"message":"success","data":{"count":0,"keys":[]}}`
	})

	_, err := newTestClient(server).MeetInTheMiddle(context.Background(), nil)
	require.ErrorIs(t, err, ErrNoPairs)
	assert.Empty(t, requests)
}

// TestClient_RequestOptions tests that per-call options apply to one call only.
func TestClient_RequestOptions(t *testing.T) {
	t.Parallel()

	server, requests := newFakeBackend(t, func(path string, _ map[string]any) (int, string) {
		if path == "/attack/meet-in-the-middle" {
			time.Sleep(200 * time.Millisecond)
		}

		return http.StatusOK, `{"code":0,"message":"success","data":{"plaintext":"hi"}}`
	})
	client := newTestClient(server)
	ctx := context.Background()

	_, err := client.DecryptBase64(ctx, "q1w=", "1010011100111011", WithHeader("X-Trace", "lab-1"))
	require.NoError(t, err)
	assert.Equal(t, "lab-1", (<-requests).Trace)

	_, err = client.DecryptBase64(ctx, "q1w=", "1010011100111011")
	require.NoError(t, err)

	request := <-requests
	assert.Empty(t, request.Trace)
	assert.Equal(t, "application/json", request.ContentType)

	_, err = client.MeetInTheMiddle(ctx,
		[]PlainCipherPair{{Plaintext: "0x1234", Ciphertext: "0xABCD"}},
		WithTimeout(20*time.Millisecond))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestAPIError_Error tests the APIError message.
func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	err := &APIError{StatusCode: 400, Code: 1, Message: "bad key"}
	assert.Equal(t, "api error (status 400, code 1): bad key", err.Error())
}
