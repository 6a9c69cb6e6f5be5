// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{8.88, "$8.88"},
		{100, "$100.00"},
		{5.5, "$5.50"},
		{0, "$0.00"},
		{-16.5, "-$16.50"},
	}

	for _, test := range tests {
		if got := Money(test.amount); got != test.want {
			t.Errorf("Money(%v) = %q, want %q", test.amount, got, test.want)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{0.0625, "6.25%"},
		{0.0888, "8.88%"},
		{0, "0%"},
	}

	for _, test := range tests {
		if got := Percent(test.rate); got != test.want {
			t.Errorf("Percent(%v) = %q, want %q", test.rate, got, test.want)
		}
	}
}

func TestRenderFields_AlignsValues(t *testing.T) {
	var buffer bytes.Buffer
	RenderFields(&buffer, []Field{
		{Label: "Amount to collect", Value: "$8.88"},
		{Label: "Rate", Value: "8.88%"},
	})

	lines := strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "$8.88") {
		t.Errorf("first line missing value: %q", lines[0])
	}
	// Values start at the same column regardless of label length.
	if strings.Index(lines[0], "$8.88") != strings.Index(lines[1], "8.88%") {
		t.Errorf("values not aligned:\n%s", buffer.String())
	}
}

func TestYesNo(t *testing.T) {
	if YesNo(true) != "yes" || YesNo(false) != "no" {
		t.Error("YesNo mapping wrong")
	}
}
