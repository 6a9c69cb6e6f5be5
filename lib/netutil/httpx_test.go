// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"strings"
	"testing"
)

func TestDecodeResponse(t *testing.T) {
	var decoded struct {
		Rate float64 `json:"rate"`
	}
	if err := DecodeResponse(strings.NewReader(`{"rate":0.0625}`), &decoded); err != nil {
		t.Fatalf("DecodeResponse: %v", err)
	}
	if decoded.Rate != 0.0625 {
		t.Errorf("rate = %v, want 0.0625", decoded.Rate)
	}
}

func TestDecodeResponse_InvalidJSON(t *testing.T) {
	var decoded map[string]any
	if err := DecodeResponse(strings.NewReader("not json"), &decoded); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestErrorBody_IgnoresReadErrors(t *testing.T) {
	if got := ErrorBody(strings.NewReader("Not Found")); got != "Not Found" {
		t.Errorf("ErrorBody = %q, want %q", got, "Not Found")
	}
}
