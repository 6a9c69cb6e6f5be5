// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package taxjar

import (
	"context"
	"fmt"
	"net/url"
)

// RateParams narrows a rate lookup beyond the ZIP code.
type RateParams struct {
	City    string
	State   string
	Country string
}

func (params *RateParams) values() url.Values {
	values := url.Values{}
	if params == nil {
		return values
	}
	if params.City != "" {
		values.Set("city", params.City)
	}
	if params.State != "" {
		values.Set("state", params.State)
	}
	if params.Country != "" {
		values.Set("country", params.Country)
	}
	return values
}

// Rate is the tax-rate detail for one location. The API returns rate
// fields as decimal strings (e.g. "0.0625"), which are preserved
// verbatim rather than converted through floating point.
type Rate struct {
	Zip                  string `json:"zip"`
	Country              string `json:"country,omitempty"`
	CountryRate          string `json:"country_rate,omitempty"`
	State                string `json:"state,omitempty"`
	StateRate            string `json:"state_rate,omitempty"`
	County               string `json:"county,omitempty"`
	CountyRate           string `json:"county_rate,omitempty"`
	City                 string `json:"city,omitempty"`
	CityRate             string `json:"city_rate,omitempty"`
	CombinedDistrictRate string `json:"combined_district_rate,omitempty"`
	CombinedRate         string `json:"combined_rate"`
	FreightTaxable       bool   `json:"freight_taxable"`
}

// SummaryRate is the minimum and average rate for one region, from
// the backup rates listing.
type SummaryRate struct {
	CountryCode string          `json:"country_code"`
	Country     string          `json:"country"`
	RegionCode  string          `json:"region_code,omitempty"`
	Region      string          `json:"region,omitempty"`
	MinimumRate SummaryRateSpan `json:"minimum_rate"`
	AverageRate SummaryRateSpan `json:"average_rate"`
}

// SummaryRateSpan is a labeled rate value within a summary rate.
type SummaryRateSpan struct {
	Label string  `json:"label"`
	Rate  float64 `json:"rate"`
}

// RatesForLocation looks up the sales-tax rates for a ZIP code,
// optionally narrowed by city, state, and country.
func (client *Client) RatesForLocation(ctx context.Context, zip string, params *RateParams) (*Rate, error) {
	var envelope struct {
		Rate Rate `json:"rate"`
	}
	path := buildPath("/rates/"+url.PathEscape(zip), params)
	if err := client.get(ctx, path, &envelope); err != nil {
		return nil, fmt.Errorf("looking up rates for %s: %w", zip, err)
	}
	return &envelope.Rate, nil
}

// SummaryRates lists minimum and average rates for all regions, in
// the order the API returns them.
func (client *Client) SummaryRates(ctx context.Context) ([]SummaryRate, error) {
	var envelope struct {
		SummaryRates []SummaryRate `json:"summary_rates"`
	}
	if err := client.get(ctx, "/summary_rates", &envelope); err != nil {
		return nil, fmt.Errorf("listing summary rates: %w", err)
	}
	return envelope.SummaryRates, nil
}
