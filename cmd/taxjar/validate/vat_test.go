// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/taxjar-tools/taxjar-cli/lib/taxjar"
)

func TestRenderValidation_IncludesRegistryDetail(t *testing.T) {
	var buffer bytes.Buffer
	renderValidation(&buffer, &taxjar.VatValidation{
		Valid:         true,
		Exists:        true,
		ViesAvailable: true,
		ViesResponse: &taxjar.ViesResponse{
			CountryCode: "GB",
			VatNumber:   "333289454",
			Valid:       true,
			Name:        "TAXJAR UK LTD",
			Address:     "1 Example Street, London",
		},
	})

	output := buffer.String()
	for _, want := range []string{"GB333289454", "TAXJAR UK LTD", "1 Example Street, London"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestRenderValidation_OmitsRegistryWhenUnavailable(t *testing.T) {
	var buffer bytes.Buffer
	renderValidation(&buffer, &taxjar.VatValidation{
		Valid:         false,
		Exists:        false,
		ViesAvailable: false,
	})

	output := buffer.String()
	if strings.Contains(output, "Registered") {
		t.Errorf("registry rows rendered without registry data:\n%s", output)
	}
	if !strings.Contains(output, "no") {
		t.Errorf("output missing negative validity:\n%s", output)
	}
}

func TestRenderAddress_SkipsEmptyFields(t *testing.T) {
	var buffer bytes.Buffer
	renderAddress(&buffer, taxjar.Address{
		Street:  "3301 S Greenfield Rd",
		City:    "Gilbert",
		State:   "AZ",
		Zip:     "85297-2176",
		Country: "US",
	})

	output := buffer.String()
	for _, want := range []string{"3301 S Greenfield Rd", "Gilbert", "AZ", "85297-2176", "US"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}
