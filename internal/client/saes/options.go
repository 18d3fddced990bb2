package saes

import "time"

// RequestOption adjusts a single API call without touching the shared client defaults.
type RequestOption func(*requestParams)

// requestParams collects the per-call overrides.
type requestParams struct {
	// headers are set on the request, replacing defaults with the same name.
	headers map[string]string
	// timeout bounds this call; the shared client timeout still applies, so the earlier limit wins.
	timeout time.Duration
}

// WithHeader sets a header on one call.
func WithHeader(name, value string) RequestOption {
	return func(p *requestParams) {
		if p.headers == nil {
			p.headers = make(map[string]string)
		}

		p.headers[name] = value
	}
}

// WithTimeout bounds one call by the given duration.
func WithTimeout(timeout time.Duration) RequestOption {
	return func(p *requestParams) {
		p.timeout = timeout
	}
}

func newRequestParams(opts []RequestOption) *requestParams {
	params := &requestParams{}

	for _, opt := range opts {
		if opt != nil {
			opt(params)
		}
	}

	return params
}
