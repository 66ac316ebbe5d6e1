package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v57/github"
)

// BadCredentials is the message GitHub returns for a rejected token.
const BadCredentials = "Bad credentials"

var ErrAuthenticationMissing = errors.New("GitHub token is required")

// TransportError is a non-2xx answer from the GraphQL endpoint.
type TransportError struct {
	StatusCode int
	StatusText string
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("GitHub API request failed: %d %s", e.StatusCode, e.StatusText)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Request is a GraphQL document plus its variables.
type Request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type Error struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

// Response carries the top-level fields of a GraphQL answer besides data.
type Response struct {
	Message string
	Errors  []Error
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Errors  []Error         `json:"errors"`
}

// Querier executes a GraphQL request and decodes its data into out.
type Querier interface {
	Execute(ctx context.Context, req Request, out interface{}) (*Response, error)
}

// GraphQLClient sends queries through a go-github client so it shares its
// base URL and oauth2 transport.
type GraphQLClient struct {
	client   *github.Client
	hasToken bool
}

func NewGraphQLClient(client *github.Client, token string) *GraphQLClient {
	return &GraphQLClient{
		client:   client,
		hasToken: token != "",
	}
}

// Execute posts req to the graphql endpoint. out should be a pointer to a
// struct whose optional levels are pointers; it is left untouched when the
// answer has no data.
func (c *GraphQLClient) Execute(ctx context.Context, req Request, out interface{}) (*Response, error) {
	if !c.hasToken {
		return nil, ErrAuthenticationMissing
	}

	httpReq, err := c.client.NewRequest(http.MethodPost, "graphql", req)
	if err != nil {
		return nil, fmt.Errorf("error building graphql request: %w", err)
	}

	var env envelope
	resp, err := c.client.Do(ctx, httpReq, &env)
	if err != nil {
		if resp != nil && resp.Response != nil && resp.StatusCode >= http.StatusMultipleChoices {
			return nil, newTransportError(resp.Response, err)
		}
		return nil, fmt.Errorf("error executing graphql request: %w", err)
	}

	result := &Response{Message: env.Message, Errors: env.Errors}
	if out == nil || len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return result, nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return result, fmt.Errorf("error decoding graphql data: %w", err)
	}
	return result, nil
}

func newTransportError(resp *http.Response, err error) *TransportError {
	te := &TransportError{
		StatusCode: resp.StatusCode,
		StatusText: http.StatusText(resp.StatusCode),
		Err:        err,
	}

	var errResp *github.ErrorResponse
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	switch {
	case errors.As(err, &errResp):
		te.Message = errResp.Message
	case errors.As(err, &rateErr):
		te.Message = rateErr.Message
	case errors.As(err, &abuseErr):
		te.Message = abuseErr.Message
	}
	return te
}

// IsCredentialRejection reports whether GitHub refused the token, either in a
// 2xx payload or on a failed response.
func IsCredentialRejection(resp *Response, err error) bool {
	if resp != nil && resp.Message == BadCredentials {
		return true
	}
	var te *TransportError
	return errors.As(err, &te) && te.Message == BadCredentials
}
