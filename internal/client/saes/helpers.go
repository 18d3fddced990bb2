package saes

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/oshokin/saes-client/internal/logger"
)

// postJSON posts body to uri and unwraps the response envelope.
//
//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func postJSON[T any](
	c *ClientImpl,
	ctx context.Context,
	uri string,
	body any,
	opts []RequestOption,
) (*T, error) {
	params := newRequestParams(opts)

	if params.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, params.timeout)
		defer cancel()
	}

	request := c.httpClient.R().
		SetContext(ctx).
		SetBody(body)

	for name, value := range params.headers {
		request.SetHeader(name, value)
	}

	response, err := request.Post(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", uri, err)
	}

	statusCode := response.StatusCode()

	logger.DebugKV(ctx, "S-AES API call finished",
		"uri", uri,
		"status", statusCode,
		"duration", response.Time())

	var envelope Response[T]

	decodeErr := json.Unmarshal(response.Body(), &envelope)

	if !response.IsSuccess() {
		// The backend reports validation failures as 4xx responses with a filled envelope.
		if decodeErr == nil && envelope.Message != "" {
			return nil, &APIError{
				StatusCode: statusCode,
				Code:       envelope.Code,
				Message:    envelope.Message,
			}
		}

		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, statusCode)
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", uri, decodeErr)
	}

	if envelope.Code != successCode {
		return nil, &APIError{
			StatusCode: statusCode,
			Code:       envelope.Code,
			Message:    envelope.Message,
		}
	}

	if envelope.Data == nil {
		return nil, fmt.Errorf("%w: %s", ErrEmptyResponseData, uri)
	}

	return envelope.Data, nil
}
