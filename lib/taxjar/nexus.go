// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package taxjar

import (
	"context"
	"fmt"
)

// Region is a jurisdiction where the account is registered to collect
// sales tax.
type Region struct {
	CountryCode string `json:"country_code"`
	Country     string `json:"country"`
	RegionCode  string `json:"region_code,omitempty"`
	Region      string `json:"region,omitempty"`
}

// NexusRegions lists the account's registered nexus regions, in the
// order the API returns them.
func (client *Client) NexusRegions(ctx context.Context) ([]Region, error) {
	var envelope struct {
		Regions []Region `json:"regions"`
	}
	if err := client.get(ctx, "/nexus/regions", &envelope); err != nil {
		return nil, fmt.Errorf("listing nexus regions: %w", err)
	}
	return envelope.Regions, nil
}
