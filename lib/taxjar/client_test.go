// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package taxjar

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient creates a Client backed by the given httptest.Server.
func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client, err := NewClient(Config{
		APIKey:     "test-token",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{})
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestClient_AuthHeaderInjection(t *testing.T) {
	var receivedAuth, receivedAccept string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedAuth = request.Header.Get("Authorization")
		receivedAccept = request.Header.Get("Accept")
		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`{"categories":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	if _, err := client.Categories(context.Background()); err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if receivedAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want bearer token", receivedAuth)
	}
	if receivedAccept != "application/json" {
		t.Errorf("Accept = %q, want application/json", receivedAccept)
	}
}

func TestCalculateTax_RequiredFieldsOnly(t *testing.T) {
	var receivedBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Method != http.MethodPost || request.URL.Path != "/taxes" {
			t.Errorf("unexpected request: %s %s", request.Method, request.URL.Path)
		}
		if err := json.NewDecoder(request.Body).Decode(&receivedBody); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		writer.Write([]byte(`{"tax":{"amount_to_collect":8.88,"rate":0.0888,"has_nexus":true,"freight_taxable":false}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	tax, err := client.CalculateTax(context.Background(), TaxParams{
		FromZip:   "94025",
		FromState: "CA",
		ToZip:     "10001",
		ToState:   "NY",
		Amount:    100,
		Shipping:  5,
	})
	if err != nil {
		t.Fatalf("CalculateTax: %v", err)
	}
	if tax.AmountToCollect != 8.88 {
		t.Errorf("AmountToCollect = %v, want 8.88", tax.AmountToCollect)
	}

	want := map[string]any{
		"from_zip":   "94025",
		"from_state": "CA",
		"to_zip":     "10001",
		"to_state":   "NY",
		"amount":     float64(100),
		"shipping":   float64(5),
	}
	if len(receivedBody) != len(want) {
		t.Errorf("request body has %d fields, want %d: %v", len(receivedBody), len(want), receivedBody)
	}
	for key, value := range want {
		if receivedBody[key] != value {
			t.Errorf("body[%q] = %v, want %v", key, receivedBody[key], value)
		}
	}
	// Unset optional fields must not appear as empty strings.
	for _, key := range []string{"from_city", "from_street", "to_city", "to_street", "to_country", "from_country"} {
		if _, present := receivedBody[key]; present {
			t.Errorf("optional field %q leaked into request body", key)
		}
	}
}

func TestClient_NotFoundIsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
		writer.Write([]byte(`{"error":"Not Found","detail":"Resource can not be found","status":404}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.ShowOrder(context.Background(), "ORDER-123")
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	var apiError *APIError
	if !errors.As(err, &apiError) {
		t.Fatalf("error is %T, want *APIError", err)
	}
	if apiError.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", apiError.StatusCode)
	}
	if apiError.Message != "Resource can not be found" {
		t.Errorf("Message = %q, want detail field", apiError.Message)
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound = false, want true")
	}
}

func TestClient_ErrorBodyFallbacks(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"detail field", `{"error":"Bad Request","detail":"to_state is missing"}`, "to_state is missing"},
		{"error field only", `{"error":"Unauthorized"}`, "Unauthorized"},
		{"raw body", "upstream exploded", "upstream exploded"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			apiError := parseAPIError(400, []byte(test.body))
			if apiError.Message != test.want {
				t.Errorf("Message = %q, want %q", apiError.Message, test.want)
			}
		})
	}
}

func TestClient_ConnectionFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // nothing listening anymore

	client, err := NewClient(Config{APIKey: "test-token", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.NexusRegions(context.Background())
	if err == nil {
		t.Fatal("expected error for closed server")
	}
	var networkError *NetworkError
	if !errors.As(err, &networkError) {
		t.Errorf("error is %T, want *NetworkError", err)
	}
}

func TestListOrders_QueryPassthroughAndOrder(t *testing.T) {
	var receivedQuery string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedQuery = request.URL.RawQuery
		writer.Write([]byte(`{"orders":["ORDER-3","ORDER-1","ORDER-2"]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	orders, err := client.ListOrders(context.Background(), &ListTransactionsParams{
		FromTransactionDate: "2026/01/01",
		ToTransactionDate:   "2026/01/31",
	})
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}

	// Remote ordering is preserved exactly; no local sorting.
	want := []string{"ORDER-3", "ORDER-1", "ORDER-2"}
	if len(orders) != len(want) {
		t.Fatalf("got %d orders, want %d", len(orders), len(want))
	}
	for i := range want {
		if orders[i] != want[i] {
			t.Errorf("orders[%d] = %q, want %q", i, orders[i], want[i])
		}
	}

	if receivedQuery != "from_transaction_date=2026%2F01%2F01&to_transaction_date=2026%2F01%2F31" {
		t.Errorf("query = %q, want encoded date range", receivedQuery)
	}
}

func TestListOrders_NilParamsSendNoQuery(t *testing.T) {
	var receivedQuery string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedQuery = request.URL.RawQuery
		writer.Write([]byte(`{"orders":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	orders, err := client.ListOrders(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("got %d orders, want 0", len(orders))
	}
	if receivedQuery != "" {
		t.Errorf("query = %q, want none", receivedQuery)
	}
}

func TestUpdateOrder_OnlySetFieldsSent(t *testing.T) {
	var receivedBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", request.Method)
		}
		json.NewDecoder(request.Body).Decode(&receivedBody)
		writer.Write([]byte(`{"order":{"transaction_id":"ORDER-9","amount":20}}`))
	}))
	defer server.Close()

	amount := 20.0
	client := newTestClient(t, server)
	order, err := client.UpdateOrder(context.Background(), "ORDER-9", UpdateOrderParams{Amount: &amount})
	if err != nil {
		t.Fatalf("UpdateOrder: %v", err)
	}
	if order.Amount != 20 {
		t.Errorf("Amount = %v, want 20", order.Amount)
	}

	if len(receivedBody) != 2 {
		t.Errorf("body has %d fields, want transaction_id and amount only: %v", len(receivedBody), receivedBody)
	}
	if receivedBody["transaction_id"] != "ORDER-9" {
		t.Errorf("transaction_id = %v", receivedBody["transaction_id"])
	}
	if receivedBody["amount"] != float64(20) {
		t.Errorf("amount = %v, want 20", receivedBody["amount"])
	}
}

func TestDeleteOrder_EchoesDeletedOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Method != http.MethodDelete || request.URL.Path != "/transactions/orders/ORDER-123" {
			t.Errorf("unexpected request: %s %s", request.Method, request.URL.Path)
		}
		writer.Write([]byte(`{"order":{"transaction_id":"ORDER-123","amount":16.5}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	order, err := client.DeleteOrder(context.Background(), "ORDER-123")
	if err != nil {
		t.Fatalf("DeleteOrder: %v", err)
	}
	if order.TransactionID != "ORDER-123" {
		t.Errorf("TransactionID = %q", order.TransactionID)
	}
}

func TestValidateVAT_QueryEncoding(t *testing.T) {
	var receivedQuery string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/validation" {
			t.Errorf("path = %s, want /validation", request.URL.Path)
		}
		receivedQuery = request.URL.RawQuery
		writer.Write([]byte(`{"validation":{"valid":true,"exists":true,"vies_available":true,"vies_response":{"country_code":"FR","vat_number":"40303265045","valid":true,"name":"SA SODIMAS"}}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	validation, err := client.ValidateVAT(context.Background(), "FR40303265045")
	if err != nil {
		t.Fatalf("ValidateVAT: %v", err)
	}
	if !validation.Valid {
		t.Error("Valid = false, want true")
	}
	if validation.ViesResponse == nil || validation.ViesResponse.Name != "SA SODIMAS" {
		t.Errorf("ViesResponse = %+v, want registered name", validation.ViesResponse)
	}
	if receivedQuery != "vat=FR40303265045" {
		t.Errorf("query = %q, want vat parameter", receivedQuery)
	}
}

func TestRatesForLocation_PathAndParams(t *testing.T) {
	var receivedPath, receivedQuery string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedPath = request.URL.Path
		receivedQuery = request.URL.RawQuery
		writer.Write([]byte(`{"rate":{"zip":"90404","state":"CA","state_rate":"0.0625","combined_rate":"0.1025","freight_taxable":false}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	rate, err := client.RatesForLocation(context.Background(), "90404", &RateParams{City: "Santa Monica", State: "CA"})
	if err != nil {
		t.Fatalf("RatesForLocation: %v", err)
	}
	if rate.CombinedRate != "0.1025" {
		t.Errorf("CombinedRate = %q, want 0.1025", rate.CombinedRate)
	}
	if receivedPath != "/rates/90404" {
		t.Errorf("path = %q, want /rates/90404", receivedPath)
	}
	if receivedQuery != "city=Santa+Monica&state=CA" {
		t.Errorf("query = %q", receivedQuery)
	}
}

func TestNexusRegions_PreservesOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`{"regions":[{"country_code":"US","country":"United States","region_code":"CA","region":"California"},{"country_code":"US","country":"United States","region_code":"NY","region":"New York"}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	regions, err := client.NexusRegions(context.Background())
	if err != nil {
		t.Fatalf("NexusRegions: %v", err)
	}
	if len(regions) != 2 {
		t.Fatalf("got %d regions, want 2", len(regions))
	}
	if regions[0].RegionCode != "CA" || regions[1].RegionCode != "NY" {
		t.Errorf("region order = %s, %s; want CA, NY", regions[0].RegionCode, regions[1].RegionCode)
	}
}

func TestCreateRefund_PassesAmountsThrough(t *testing.T) {
	var receivedBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		json.NewDecoder(request.Body).Decode(&receivedBody)
		writer.Write([]byte(`{"refund":{"transaction_id":"REFUND-1","transaction_reference_id":"ORDER-1","amount":-16.5}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	refund, err := client.CreateRefund(context.Background(), RefundParams{
		TransactionID:          "REFUND-1",
		TransactionReferenceID: "ORDER-1",
		TransactionDate:        "2026/08/01",
		ToCountry:              "US",
		ToZip:                  "10001",
		ToState:                "NY",
		Amount:                 -16.5,
		Shipping:               -1.5,
		SalesTax:               -0.95,
	})
	if err != nil {
		t.Fatalf("CreateRefund: %v", err)
	}
	if refund.Amount != -16.5 {
		t.Errorf("Amount = %v, want -16.5", refund.Amount)
	}
	// Negative amounts are a service-side convention, passed through
	// without local validation.
	if receivedBody["amount"] != float64(-16.5) {
		t.Errorf("body amount = %v, want -16.5", receivedBody["amount"])
	}
}
