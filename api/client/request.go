package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/monetaio/moneta/api/types"
)

// Get issues a GET request and decodes the JSON response into out.
func (cli *APIClient) Get(ctx context.Context, endpoint string, query url.Values, out interface{}) error {
	return cli.Do(ctx, http.MethodGet, endpoint, query, nil, out)
}

// Post issues a POST request with a JSON body and decodes the JSON
// response into out.
func (cli *APIClient) Post(ctx context.Context, endpoint string, body, out interface{}) error {
	return cli.Do(ctx, http.MethodPost, endpoint, nil, body, out)
}

// Delete issues a DELETE request. Any response body is discarded.
func (cli *APIClient) Delete(ctx context.Context, endpoint string) error {
	return cli.Do(ctx, http.MethodDelete, endpoint, nil, nil, nil)
}

// Do sends one network request per attempt until an attempt succeeds or
// the retry policy gives up. Every attempt issues an identical request:
// the body is serialized once and the correlation id stays constant.
func (cli *APIClient) Do(ctx context.Context, method, endpoint string, query url.Values, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return err
		}
	}

	requestID := uuid.NewString()
	for attempt := 0; ; attempt++ {
		err := cli.send(ctx, method, endpoint, query, payload, out, requestID, attempt)
		if err == nil {
			return nil
		}

		action := cli.policy(attempt, err)
		if !action.Retry {
			return err
		}
		logrus.Warnf("%s %s failed (request %s, attempt %d), retrying in %v: %v",
			method, endpoint, requestID, attempt, action.Delay, err)
		if err := cli.wait(ctx, action.Delay); err != nil {
			return err
		}
	}
}

// send performs exactly one network call and classifies the outcome.
func (cli *APIClient) send(ctx context.Context, method, endpoint string, query url.Values, payload []byte, out interface{}, requestID string, attempt int) error {
	address := cli.host + endpoint
	if len(query) > 0 {
		address += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, address, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	for k, v := range cli.headers {
		req.Header.Set(k, v)
	}
	if cli.token != "" {
		req.Header.Set("Authorization", "Bearer "+cli.token)
	}

	logrus.Debugf("%s %s (request %s, attempt %d)", method, address, requestID, attempt)

	resp, err := cli.client.Do(req)
	if err != nil {
		// Transport failure, no status known. Retryable like any other
		// server error.
		return err
	}
	defer ensureClosed(resp)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return UnauthorizedError{}
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return APIError{Status: resp.StatusCode, Message: errorMessage(resp.Body)}
	case resp.StatusCode == http.StatusNoContent || method == http.MethodDelete || out == nil:
		// No-content result, the body is intentionally discarded.
		return nil
	default:
		return json.NewDecoder(resp.Body).Decode(out)
	}
}

// errorMessage extracts the message field from an error response body,
// falling back to a generic message when the body has no usable one.
func errorMessage(body io.Reader) string {
	var m types.Message
	if err := json.NewDecoder(body).Decode(&m); err == nil && m.Message != "" {
		return m.Message
	}
	return "Unknown server error"
}

// ensureClosed drains and closes the response body so the underlying
// connection can be reused.
func ensureClosed(resp *http.Response) {
	if resp != nil && resp.Body != nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
}
