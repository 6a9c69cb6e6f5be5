// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package rates

import (
	"bytes"
	"strings"
	"testing"

	"github.com/taxjar-tools/taxjar-cli/lib/taxjar"
)

func TestPercent_ParsesRateStrings(t *testing.T) {
	tests := []struct {
		rate string
		want string
	}{
		{"0.0625", "6.25%"},
		{"0.1025", "10.25%"},
		{"0", "0%"},
		{"garbage", "garbage"}, // unparseable passes through
	}
	for _, test := range tests {
		if got := percent(test.rate); got != test.want {
			t.Errorf("percent(%q) = %q, want %q", test.rate, got, test.want)
		}
	}
}

func TestRenderRate_SkipsEmptyJurisdictions(t *testing.T) {
	var buffer bytes.Buffer
	renderRate(&buffer, &taxjar.Rate{
		Zip:            "90404",
		State:          "CA",
		StateRate:      "0.0625",
		City:           "SANTA MONICA",
		CityRate:       "0.01",
		CombinedRate:   "0.1025",
		FreightTaxable: false,
	})

	output := buffer.String()
	for _, want := range []string{"90404", "CA (6.25%)", "SANTA MONICA (1%)", "10.25%"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, "County") {
		t.Errorf("county row rendered for empty county:\n%s", output)
	}
	if strings.Contains(output, "Country") {
		t.Errorf("country row rendered for empty country:\n%s", output)
	}
}
