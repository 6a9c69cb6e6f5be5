// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package orders

import (
	"bytes"
	"strings"
	"testing"

	"github.com/taxjar-tools/taxjar-cli/lib/taxjar"
)

func TestRenderOrder_FormatsAmounts(t *testing.T) {
	var buffer bytes.Buffer
	renderOrder(&buffer, &taxjar.Order{
		TransactionID:   "ORDER-123",
		TransactionDate: "2026/03/15",
		ToCity:          "Los Angeles",
		ToState:         "CA",
		ToZip:           "90002",
		ToCountry:       "US",
		Amount:          16.5,
		Shipping:        1.5,
		SalesTax:        0.95,
	})

	output := buffer.String()
	for _, want := range []string{"ORDER-123", "2026/03/15", "Los Angeles, CA, 90002, US", "$16.50", "$1.50", "$0.95"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestRenderOrder_SkipsEmptyProvider(t *testing.T) {
	var buffer bytes.Buffer
	renderOrder(&buffer, &taxjar.Order{TransactionID: "ORDER-1"})

	if strings.Contains(buffer.String(), "Provider") {
		t.Errorf("provider row rendered for empty provider:\n%s", buffer.String())
	}
}

func TestShipTo_JoinsNonEmptyParts(t *testing.T) {
	tests := []struct {
		city, state, zip, country string
		want                      string
	}{
		{"Los Angeles", "CA", "90002", "US", "Los Angeles, CA, 90002, US"},
		{"", "CA", "90002", "", "CA, 90002"},
		{"", "", "", "", ""},
	}
	for _, test := range tests {
		if got := shipTo(test.city, test.state, test.zip, test.country); got != test.want {
			t.Errorf("shipTo(%q, %q, %q, %q) = %q, want %q",
				test.city, test.state, test.zip, test.country, got, test.want)
		}
	}
}
