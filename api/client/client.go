// Package client implements the authenticated request client for the
// Moneta finance API: JSON in and out, bearer-token auth, status-based
// error classification and retry with exponential backoff.
package client

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
)

// APIClient performs authenticated JSON requests against a Moneta API
// server. It closes over the token it was created with and never
// mutates it; a client for another identity is derived with WithToken.
// All methods are safe for concurrent use, each call is independent.
type APIClient struct {
	host    string
	token   string
	client  *http.Client
	headers map[string]string
	policy  Policy

	// wait blocks between attempts. Replaced in tests to observe the
	// backoff schedule without sleeping.
	wait func(ctx context.Context, delay time.Duration) error
}

// NewAPIClient creates a client for the API rooted at host. The token
// may be empty for the unauthenticated endpoints (login, registration).
// client and httpHeaders are optional.
func NewAPIClient(host, token string, client *http.Client, httpHeaders map[string]string) (*APIClient, error) {
	if host == "" {
		return nil, errors.New("no API host specified")
	}
	if client == nil {
		client = &http.Client{}
	}

	headers := make(map[string]string, len(httpHeaders))
	for k, v := range httpHeaders {
		headers[k] = v
	}

	return &APIClient{
		host:    strings.TrimRight(host, "/"),
		token:   token,
		client:  client,
		headers: headers,
		policy:  Backoff(DefaultRetries),
		wait:    sleep,
	}, nil
}

// WithToken returns a copy of the client that authenticates with token.
// The receiver is left untouched.
func (cli *APIClient) WithToken(token string) *APIClient {
	derived := *cli
	derived.token = token
	return &derived
}

// WithPolicy returns a copy of the client using the given retry policy.
func (cli *APIClient) WithPolicy(policy Policy) *APIClient {
	derived := *cli
	derived.policy = policy
	return &derived
}

// Host returns the base address this client talks to.
func (cli *APIClient) Host() string {
	return cli.host
}

func sleep(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
