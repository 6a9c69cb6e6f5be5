// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package taxjar

import (
	"context"
	"fmt"
	"net/url"
)

// Refund is a recorded refund transaction. It references the original
// order through TransactionReferenceID.
type Refund struct {
	TransactionID          string     `json:"transaction_id"`
	UserID                 int64      `json:"user_id,omitempty"`
	TransactionDate        string     `json:"transaction_date"`
	TransactionReferenceID string     `json:"transaction_reference_id"`
	Provider               string     `json:"provider,omitempty"`
	FromCountry            string     `json:"from_country,omitempty"`
	FromZip                string     `json:"from_zip,omitempty"`
	FromState              string     `json:"from_state,omitempty"`
	FromCity               string     `json:"from_city,omitempty"`
	FromStreet             string     `json:"from_street,omitempty"`
	ToCountry              string     `json:"to_country"`
	ToZip                  string     `json:"to_zip"`
	ToState                string     `json:"to_state"`
	ToCity                 string     `json:"to_city,omitempty"`
	ToStreet               string     `json:"to_street,omitempty"`
	Amount                 float64    `json:"amount"`
	Shipping               float64    `json:"shipping"`
	SalesTax               float64    `json:"sales_tax"`
	LineItems              []LineItem `json:"line_items,omitempty"`
}

// RefundParams contains the fields for creating a refund transaction.
// Amounts are passed through exactly as supplied; by TaxJar
// convention refund amounts are negative, but the service (not this
// client) owns that rule.
type RefundParams struct {
	TransactionID          string     `json:"transaction_id"`
	TransactionReferenceID string     `json:"transaction_reference_id"`
	TransactionDate        string     `json:"transaction_date"`
	Provider               string     `json:"provider,omitempty"`
	FromCountry            string     `json:"from_country,omitempty"`
	FromZip                string     `json:"from_zip,omitempty"`
	FromState              string     `json:"from_state,omitempty"`
	FromCity               string     `json:"from_city,omitempty"`
	FromStreet             string     `json:"from_street,omitempty"`
	ToCountry              string     `json:"to_country"`
	ToZip                  string     `json:"to_zip"`
	ToState                string     `json:"to_state"`
	ToCity                 string     `json:"to_city,omitempty"`
	ToStreet               string     `json:"to_street,omitempty"`
	Amount                 float64    `json:"amount"`
	Shipping               float64    `json:"shipping"`
	SalesTax               float64    `json:"sales_tax"`
	LineItems              []LineItem `json:"line_items,omitempty"`
}

// ListRefunds lists refund transaction ids matching the filters, in
// the order the API returns them.
func (client *Client) ListRefunds(ctx context.Context, params *ListTransactionsParams) ([]string, error) {
	var envelope struct {
		Refunds []string `json:"refunds"`
	}
	path := buildPath("/transactions/refunds", params)
	if err := client.get(ctx, path, &envelope); err != nil {
		return nil, fmt.Errorf("listing refunds: %w", err)
	}
	return envelope.Refunds, nil
}

// ShowRefund retrieves a single refund transaction by id.
func (client *Client) ShowRefund(ctx context.Context, transactionID string) (*Refund, error) {
	var envelope struct {
		Refund Refund `json:"refund"`
	}
	path := "/transactions/refunds/" + url.PathEscape(transactionID)
	if err := client.get(ctx, path, &envelope); err != nil {
		return nil, fmt.Errorf("getting refund %s: %w", transactionID, err)
	}
	return &envelope.Refund, nil
}

// CreateRefund records a new refund transaction.
func (client *Client) CreateRefund(ctx context.Context, params RefundParams) (*Refund, error) {
	var envelope struct {
		Refund Refund `json:"refund"`
	}
	if err := client.post(ctx, "/transactions/refunds", params, &envelope); err != nil {
		return nil, fmt.Errorf("creating refund %s: %w", params.TransactionID, err)
	}
	return &envelope.Refund, nil
}
