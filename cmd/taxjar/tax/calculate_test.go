// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package tax

import (
	"bytes"
	"strings"
	"testing"

	"github.com/taxjar-tools/taxjar-cli/lib/taxjar"
)

func TestRenderTax_FormatsAmountsAndRate(t *testing.T) {
	var buffer bytes.Buffer
	renderTax(&buffer, &taxjar.Tax{
		OrderTotalAmount: 105,
		Shipping:         5,
		TaxableAmount:    100,
		AmountToCollect:  8.88,
		Rate:             0.0888,
		HasNexus:         true,
		FreightTaxable:   false,
		TaxSource:        "destination",
	})

	output := buffer.String()
	for _, want := range []string{"$8.88", "8.88%", "$105.00", "destination", "yes", "no"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestRenderTax_IncludesBreakdownWhenPresent(t *testing.T) {
	var buffer bytes.Buffer
	renderTax(&buffer, &taxjar.Tax{
		AmountToCollect: 6.25,
		Rate:            0.0625,
		HasNexus:        true,
		Breakdown: &taxjar.TaxBreakdown{
			StateTaxCollectable:  6,
			StateTaxRate:         0.06,
			CountyTaxCollectable: 0.25,
			CountyTaxRate:        0.0025,
		},
	})

	output := buffer.String()
	if !strings.Contains(output, "Breakdown:") {
		t.Fatalf("output missing breakdown section:\n%s", output)
	}
	if !strings.Contains(output, "$6.00 at 6%") {
		t.Errorf("output missing state line:\n%s", output)
	}
	if !strings.Contains(output, "$0.25 at 0.25%") {
		t.Errorf("output missing county line:\n%s", output)
	}
}

func TestRenderTax_OmitsBreakdownWhenAbsent(t *testing.T) {
	var buffer bytes.Buffer
	renderTax(&buffer, &taxjar.Tax{AmountToCollect: 0, HasNexus: false})

	if strings.Contains(buffer.String(), "Breakdown:") {
		t.Errorf("breakdown section rendered without breakdown data:\n%s", buffer.String())
	}
}
