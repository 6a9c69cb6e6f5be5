// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package taxjar

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError represents a non-2xx response from the TaxJar API. The
// service returns JSON error bodies with a "detail" field (and
// sometimes "error"); when neither parses, Message falls back to the
// raw response body.
type APIError struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Message is the error description extracted from the body.
	Message string
}

func (err *APIError) Error() string {
	return fmt.Sprintf("taxjar: HTTP %d: %s", err.StatusCode, err.Message)
}

// NetworkError indicates the request was sent but no response was
// received: connection refused, DNS failure, timeout.
type NetworkError struct {
	// Err is the underlying transport error.
	Err error
}

func (err *NetworkError) Error() string {
	return fmt.Sprintf("taxjar: network error: %v", err.Err)
}

func (err *NetworkError) Unwrap() error { return err.Err }

// RequestError indicates the request could not be constructed or
// dispatched at all: bad URL, unserializable body.
type RequestError struct {
	// Err is the underlying construction error.
	Err error
}

func (err *RequestError) Error() string {
	return fmt.Sprintf("taxjar: request error: %v", err.Err)
}

func (err *RequestError) Unwrap() error { return err.Err }

// IsNotFound reports whether err is a TaxJar API 404 response.
func IsNotFound(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 404
}

// IsUnauthorized reports whether err is a TaxJar API 401 response,
// which almost always means a bad or revoked API token.
func IsUnauthorized(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 401
}

// parseAPIError builds an APIError from a status code and response
// body. TaxJar error bodies look like:
//
//	{"error": "Not Found", "detail": "Resource can not be found", "status": 404}
//
// The detail field carries the useful description; "error" is the
// status text. Unparseable bodies are surfaced verbatim.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode}

	var wireError struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if json.Unmarshal(body, &wireError) == nil {
		if wireError.Detail != "" {
			apiError.Message = wireError.Detail
			return apiError
		}
		if wireError.Error != "" {
			apiError.Message = wireError.Error
			return apiError
		}
	}

	apiError.Message = strings.TrimSpace(string(body))
	return apiError
}
