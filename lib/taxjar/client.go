// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package taxjar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/taxjar-tools/taxjar-cli/lib/netutil"
)

// defaultBaseURL is the production TaxJar API endpoint.
const defaultBaseURL = "https://api.taxjar.com/v2"

// requestTimeout bounds every API call. There is no per-call override;
// a request that outlives this fails as a NetworkError.
const requestTimeout = 30 * time.Second

// Config holds configuration for creating a Client.
type Config struct {
	// APIKey is the TaxJar API token, sent as a bearer token. Required.
	APIKey string

	// BaseURL is the API root. Defaults to the production endpoint.
	// Point it at https://api.sandbox.taxjar.com/v2 for sandbox use.
	BaseURL string

	// HTTPClient is used for all requests. Defaults to a client with
	// a 30-second timeout.
	HTTPClient *http.Client

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client is a typed TaxJar REST API client. One method per remote
// capability; all methods are safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a TaxJar API client from the given configuration.
// Returns an error if no API key is configured.
func NewClient(config Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("taxjar: no API key configured")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     config.APIKey,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// do executes one authenticated API request. The path is relative to
// the base URL (e.g. "/taxes"). For requests with a body, requestBody
// is JSON-encoded; pass nil for no body.
//
// Returns the raw response body on 2xx. Error translation: body
// encoding and request construction failures become *RequestError,
// transport failures become *NetworkError, and non-2xx responses
// become *APIError. No retry on any of them.
func (client *Client) do(ctx context.Context, method, path string, requestBody any) ([]byte, error) {
	requestURL := client.baseURL + path

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, &RequestError{Err: fmt.Errorf("encoding request body: %w", err)}
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, &RequestError{Err: fmt.Errorf("creating request: %w", err)}
	}

	request.Header.Set("Authorization", "Bearer "+client.apiKey)
	request.Header.Set("Accept", "application/json")
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer response.Body.Close()

	body, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("reading response body: %w", err)}
	}

	client.logger.Debug("api request",
		"method", method,
		"path", path,
		"status", response.StatusCode,
	)

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, parseAPIError(response.StatusCode, body)
	}

	return body, nil
}

// get is a convenience method for GET requests. Decodes the response
// into result.
func (client *Client) get(ctx context.Context, path string, result any) error {
	body, err := client.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decodeEnvelope(body, result)
}

// post is a convenience method for POST requests with a JSON body.
func (client *Client) post(ctx context.Context, path string, requestBody, result any) error {
	body, err := client.do(ctx, http.MethodPost, path, requestBody)
	if err != nil {
		return err
	}
	return decodeEnvelope(body, result)
}

// put is a convenience method for PUT requests with a JSON body.
func (client *Client) put(ctx context.Context, path string, requestBody, result any) error {
	body, err := client.do(ctx, http.MethodPut, path, requestBody)
	if err != nil {
		return err
	}
	return decodeEnvelope(body, result)
}

// delete is a convenience method for DELETE requests. The API echoes
// the deleted resource in the response envelope.
func (client *Client) delete(ctx context.Context, path string, result any) error {
	body, err := client.do(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return decodeEnvelope(body, result)
}

// decodeEnvelope unwraps a response envelope into result. Every
// successful TaxJar response nests the payload under a single field
// ("tax", "rate", "orders", ...); result is a pointer to a struct
// with the matching json tag. A malformed success body is a
// RequestError — the request round-tripped, the payload did not.
func decodeEnvelope(body []byte, result any) error {
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return &RequestError{Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// queryValues is implemented by optional parameter structs for
// list-style GET endpoints.
type queryValues interface {
	values() url.Values
}

// buildPath appends encoded query parameters to basePath. Nil or
// empty options leave the path untouched.
func buildPath(basePath string, options queryValues) string {
	if options == nil {
		return basePath
	}
	values := options.values()
	if len(values) == 0 {
		return basePath
	}
	return basePath + "?" + values.Encode()
}
