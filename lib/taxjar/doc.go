// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package taxjar is a typed client for the TaxJar sales-tax REST API
// (v2): tax calculation, rate lookup, nexus regions, product
// categories, order and refund transactions, address validation, and
// VAT validation.
//
// Every method performs exactly one HTTP request and translates the
// outcome into one of three terminal error kinds: APIError (the
// service rejected the request), NetworkError (no response received),
// or RequestError (the request could not be built or sent). There is
// no retry, caching, or pagination — the API returns complete result
// sets and the caller owns any higher-level workflow.
package taxjar
