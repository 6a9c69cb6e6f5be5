// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package taxjar

import (
	"context"
	"fmt"
)

// Category is a product taxability classification. The product tax
// code goes on order line items to get category-specific treatment
// (e.g. clothing exemptions).
type Category struct {
	Name           string `json:"name"`
	ProductTaxCode string `json:"product_tax_code"`
	Description    string `json:"description,omitempty"`
}

// Categories lists all product tax categories, in the order the API
// returns them.
func (client *Client) Categories(ctx context.Context) ([]Category, error) {
	var envelope struct {
		Categories []Category `json:"categories"`
	}
	if err := client.get(ctx, "/categories", &envelope); err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return envelope.Categories, nil
}
