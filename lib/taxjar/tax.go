// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package taxjar

import (
	"context"
	"fmt"
)

// TaxParams contains the fields for a tax calculation. Optional
// fields are omitted from the request body entirely when unset — the
// API treats an empty string as a real (invalid) value, not an
// absence.
type TaxParams struct {
	FromCountry string  `json:"from_country,omitempty"`
	FromZip     string  `json:"from_zip,omitempty"`
	FromState   string  `json:"from_state,omitempty"`
	FromCity    string  `json:"from_city,omitempty"`
	FromStreet  string  `json:"from_street,omitempty"`
	ToCountry   string  `json:"to_country,omitempty"`
	ToZip       string  `json:"to_zip,omitempty"`
	ToState     string  `json:"to_state,omitempty"`
	ToCity      string  `json:"to_city,omitempty"`
	ToStreet    string  `json:"to_street,omitempty"`
	Amount      float64 `json:"amount"`
	Shipping    float64 `json:"shipping"`
}

// Tax is the computed outcome of a tax calculation.
type Tax struct {
	OrderTotalAmount float64       `json:"order_total_amount"`
	Shipping         float64       `json:"shipping"`
	TaxableAmount    float64       `json:"taxable_amount"`
	AmountToCollect  float64       `json:"amount_to_collect"`
	Rate             float64       `json:"rate"`
	HasNexus         bool          `json:"has_nexus"`
	FreightTaxable   bool          `json:"freight_taxable"`
	TaxSource        string        `json:"tax_source,omitempty"`
	Breakdown        *TaxBreakdown `json:"breakdown,omitempty"`
}

// TaxBreakdown splits the collectable amount across jurisdiction
// levels. Present when the account has nexus for the destination.
type TaxBreakdown struct {
	TaxableAmount                 float64 `json:"taxable_amount"`
	TaxCollectable                float64 `json:"tax_collectable"`
	CombinedTaxRate               float64 `json:"combined_tax_rate"`
	StateTaxableAmount            float64 `json:"state_taxable_amount"`
	StateTaxRate                  float64 `json:"state_tax_rate"`
	StateTaxCollectable           float64 `json:"state_tax_collectable"`
	CountyTaxableAmount           float64 `json:"county_taxable_amount"`
	CountyTaxRate                 float64 `json:"county_tax_rate"`
	CountyTaxCollectable          float64 `json:"county_tax_collectable"`
	CityTaxableAmount             float64 `json:"city_taxable_amount"`
	CityTaxRate                   float64 `json:"city_tax_rate"`
	CityTaxCollectable            float64 `json:"city_tax_collectable"`
	SpecialDistrictTaxableAmount  float64 `json:"special_district_taxable_amount"`
	SpecialTaxRate                float64 `json:"special_tax_rate"`
	SpecialDistrictTaxCollectable float64 `json:"special_district_tax_collectable"`
}

// CalculateTax computes sales tax for an order.
func (client *Client) CalculateTax(ctx context.Context, params TaxParams) (*Tax, error) {
	var envelope struct {
		Tax Tax `json:"tax"`
	}
	if err := client.post(ctx, "/taxes", params, &envelope); err != nil {
		return nil, fmt.Errorf("calculating tax: %w", err)
	}
	return &envelope.Tax, nil
}
