// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package refunds

import (
	"bytes"
	"strings"
	"testing"

	"github.com/taxjar-tools/taxjar-cli/lib/taxjar"
)

func TestRenderRefund_FormatsNegativeAmounts(t *testing.T) {
	var buffer bytes.Buffer
	renderRefund(&buffer, &taxjar.Refund{
		TransactionID:          "REFUND-123",
		TransactionReferenceID: "ORDER-123",
		TransactionDate:        "2026/03/20",
		Amount:                 -16.5,
		Shipping:               -1.5,
		SalesTax:               -0.95,
	})

	output := buffer.String()
	for _, want := range []string{"REFUND-123", "ORDER-123", "-$16.50", "-$1.50", "-$0.95"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}
