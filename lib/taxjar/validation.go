// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package taxjar

import (
	"context"
	"fmt"
	"net/url"
)

// AddressParams contains the fields for address validation.
type AddressParams struct {
	Country string `json:"country,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	City    string `json:"city,omitempty"`
	Street  string `json:"street,omitempty"`
}

// Address is one standardized candidate match for a validated
// address. Zero or more candidates come back per call.
type Address struct {
	Country string `json:"country,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	City    string `json:"city,omitempty"`
	Street  string `json:"street,omitempty"`
}

// VatValidation is the outcome of a VAT-number registry check.
type VatValidation struct {
	Valid         bool          `json:"valid"`
	Exists        bool          `json:"exists"`
	ViesAvailable bool          `json:"vies_available"`
	ViesResponse  *ViesResponse `json:"vies_response,omitempty"`
}

// ViesResponse carries the registry detail for a valid VAT number.
type ViesResponse struct {
	CountryCode string `json:"country_code"`
	VatNumber   string `json:"vat_number"`
	RequestDate string `json:"request_date,omitempty"`
	Valid       bool   `json:"valid"`
	Name        string `json:"name,omitempty"`
	Address     string `json:"address,omitempty"`
}

// ValidateAddress returns standardized candidate matches for an
// address, in the order the API returns them.
func (client *Client) ValidateAddress(ctx context.Context, params AddressParams) ([]Address, error) {
	var envelope struct {
		Addresses []Address `json:"addresses"`
	}
	if err := client.post(ctx, "/addresses/validate", params, &envelope); err != nil {
		return nil, fmt.Errorf("validating address: %w", err)
	}
	return envelope.Addresses, nil
}

// ValidateVAT checks a VAT number against the VIES registry.
func (client *Client) ValidateVAT(ctx context.Context, vatNumber string) (*VatValidation, error) {
	var envelope struct {
		Validation VatValidation `json:"validation"`
	}
	path := "/validation?" + url.Values{"vat": {vatNumber}}.Encode()
	if err := client.get(ctx, path, &envelope); err != nil {
		return nil, fmt.Errorf("validating VAT number %s: %w", vatNumber, err)
	}
	return &envelope.Validation, nil
}
