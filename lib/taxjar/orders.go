// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package taxjar

import (
	"context"
	"fmt"
	"net/url"
)

// ListTransactionsParams filters order and refund listings. All
// fields are optional and pass through as query parameters; the API
// applies the filtering.
type ListTransactionsParams struct {
	// FromTransactionDate is the inclusive start date (YYYY/MM/DD).
	FromTransactionDate string

	// ToTransactionDate is the inclusive end date (YYYY/MM/DD).
	ToTransactionDate string

	// Provider filters to transactions imported from one platform
	// (e.g. "api", "amazon").
	Provider string
}

func (params *ListTransactionsParams) values() url.Values {
	values := url.Values{}
	if params == nil {
		return values
	}
	if params.FromTransactionDate != "" {
		values.Set("from_transaction_date", params.FromTransactionDate)
	}
	if params.ToTransactionDate != "" {
		values.Set("to_transaction_date", params.ToTransactionDate)
	}
	if params.Provider != "" {
		values.Set("provider", params.Provider)
	}
	return values
}

// LineItem is one product line on an order or refund transaction.
type LineItem struct {
	ID                string  `json:"id,omitempty"`
	Quantity          int     `json:"quantity,omitempty"`
	ProductIdentifier string  `json:"product_identifier,omitempty"`
	Description       string  `json:"description,omitempty"`
	ProductTaxCode    string  `json:"product_tax_code,omitempty"`
	UnitPrice         float64 `json:"unit_price,omitempty"`
	Discount          float64 `json:"discount,omitempty"`
	SalesTax          float64 `json:"sales_tax,omitempty"`
}

// Order is a recorded sale transaction. The transaction id is the
// caller-supplied identity; the service rejects duplicates per
// account.
type Order struct {
	TransactionID   string     `json:"transaction_id"`
	UserID          int64      `json:"user_id,omitempty"`
	TransactionDate string     `json:"transaction_date"`
	Provider        string     `json:"provider,omitempty"`
	ExemptionType   string     `json:"exemption_type,omitempty"`
	FromCountry     string     `json:"from_country,omitempty"`
	FromZip         string     `json:"from_zip,omitempty"`
	FromState       string     `json:"from_state,omitempty"`
	FromCity        string     `json:"from_city,omitempty"`
	FromStreet      string     `json:"from_street,omitempty"`
	ToCountry       string     `json:"to_country"`
	ToZip           string     `json:"to_zip"`
	ToState         string     `json:"to_state"`
	ToCity          string     `json:"to_city,omitempty"`
	ToStreet        string     `json:"to_street,omitempty"`
	Amount          float64    `json:"amount"`
	Shipping        float64    `json:"shipping"`
	SalesTax        float64    `json:"sales_tax"`
	LineItems       []LineItem `json:"line_items,omitempty"`
}

// OrderParams contains the fields for creating an order transaction.
// Optional location fields are omitted entirely when unset.
type OrderParams struct {
	TransactionID   string     `json:"transaction_id"`
	TransactionDate string     `json:"transaction_date"`
	Provider        string     `json:"provider,omitempty"`
	FromCountry     string     `json:"from_country,omitempty"`
	FromZip         string     `json:"from_zip,omitempty"`
	FromState       string     `json:"from_state,omitempty"`
	FromCity        string     `json:"from_city,omitempty"`
	FromStreet      string     `json:"from_street,omitempty"`
	ToCountry       string     `json:"to_country"`
	ToZip           string     `json:"to_zip"`
	ToState         string     `json:"to_state"`
	ToCity          string     `json:"to_city,omitempty"`
	ToStreet        string     `json:"to_street,omitempty"`
	Amount          float64    `json:"amount"`
	Shipping        float64    `json:"shipping"`
	SalesTax        float64    `json:"sales_tax"`
	LineItems       []LineItem `json:"line_items,omitempty"`
}

// UpdateOrderParams contains the fields for updating an order. Only
// non-nil fields are sent; the transaction id names the order and
// cannot change.
type UpdateOrderParams struct {
	TransactionID   string   `json:"transaction_id"`
	TransactionDate *string  `json:"transaction_date,omitempty"`
	FromCountry     *string  `json:"from_country,omitempty"`
	FromZip         *string  `json:"from_zip,omitempty"`
	FromState       *string  `json:"from_state,omitempty"`
	FromCity        *string  `json:"from_city,omitempty"`
	FromStreet      *string  `json:"from_street,omitempty"`
	ToCountry       *string  `json:"to_country,omitempty"`
	ToZip           *string  `json:"to_zip,omitempty"`
	ToState         *string  `json:"to_state,omitempty"`
	ToCity          *string  `json:"to_city,omitempty"`
	ToStreet        *string  `json:"to_street,omitempty"`
	Amount          *float64 `json:"amount,omitempty"`
	Shipping        *float64 `json:"shipping,omitempty"`
	SalesTax        *float64 `json:"sales_tax,omitempty"`
}

// ListOrders lists order transaction ids matching the filters, in the
// order the API returns them.
func (client *Client) ListOrders(ctx context.Context, params *ListTransactionsParams) ([]string, error) {
	var envelope struct {
		Orders []string `json:"orders"`
	}
	path := buildPath("/transactions/orders", params)
	if err := client.get(ctx, path, &envelope); err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return envelope.Orders, nil
}

// ShowOrder retrieves a single order transaction by id.
func (client *Client) ShowOrder(ctx context.Context, transactionID string) (*Order, error) {
	var envelope struct {
		Order Order `json:"order"`
	}
	path := "/transactions/orders/" + url.PathEscape(transactionID)
	if err := client.get(ctx, path, &envelope); err != nil {
		return nil, fmt.Errorf("getting order %s: %w", transactionID, err)
	}
	return &envelope.Order, nil
}

// CreateOrder records a new order transaction.
func (client *Client) CreateOrder(ctx context.Context, params OrderParams) (*Order, error) {
	var envelope struct {
		Order Order `json:"order"`
	}
	if err := client.post(ctx, "/transactions/orders", params, &envelope); err != nil {
		return nil, fmt.Errorf("creating order %s: %w", params.TransactionID, err)
	}
	return &envelope.Order, nil
}

// UpdateOrder updates an existing order transaction.
func (client *Client) UpdateOrder(ctx context.Context, transactionID string, params UpdateOrderParams) (*Order, error) {
	params.TransactionID = transactionID

	var envelope struct {
		Order Order `json:"order"`
	}
	path := "/transactions/orders/" + url.PathEscape(transactionID)
	if err := client.put(ctx, path, params, &envelope); err != nil {
		return nil, fmt.Errorf("updating order %s: %w", transactionID, err)
	}
	return &envelope.Order, nil
}

// DeleteOrder deletes an order transaction. The API echoes the
// deleted order back.
func (client *Client) DeleteOrder(ctx context.Context, transactionID string) (*Order, error) {
	var envelope struct {
		Order Order `json:"order"`
	}
	path := "/transactions/orders/" + url.PathEscape(transactionID)
	if err := client.delete(ctx, path, &envelope); err != nil {
		return nil, fmt.Errorf("deleting order %s: %w", transactionID, err)
	}
	return &envelope.Order, nil
}
